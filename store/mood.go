package store

import "time"

// MoodSample is a point-in-time mood reading. Samples are windowed to the
// trailing 30 days; DeleteMoodSamplesBefore enforces the retention trim.
type MoodSample struct {
	ID        int64
	UserID    string
	Date      time.Time
	Mood      int32 // bounded 1-6
	Triggers  []string
	CreatedTs int64
}

// FindMoodSample specifies the conditions for finding mood samples.
type FindMoodSample struct {
	ID      *int64
	UserID  *string
	SinceTs *int64
	Limit   int
	Offset  int
}

// DeleteMoodSample specifies the conditions for deleting mood samples.
// BeforeTs removes samples older than the given timestamp (retention trim).
type DeleteMoodSample struct {
	ID       *int64
	UserID   *string
	BeforeTs *int64
}
