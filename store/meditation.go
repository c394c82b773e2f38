package store

import "time"

// MeditationSession records one guided or unguided practice session.
type MeditationSession struct {
	ID     int64
	UID    string
	UserID string
	Date   time.Time
	// Technique is the practice type (breathing, body-scan, mindfulness...).
	Technique       string
	DurationMinutes int32
	// Completion is the fraction of the session finished, 0-1.
	Completion float64
	MoodBefore int32
	MoodAfter  int32
	// Effectiveness is derived at insertion time, 0-1.
	Effectiveness float64
	CreatedTs     int64
}

// FindMeditationSession specifies the conditions for finding sessions.
type FindMeditationSession struct {
	ID      *int64
	UserID  *string
	SinceTs *int64
	Limit   int
	Offset  int
}

// DeleteMeditationSession specifies the conditions for deleting sessions.
type DeleteMeditationSession struct {
	ID     *int64
	UserID *string
}
