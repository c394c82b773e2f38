package store

import "time"

// Emotion is a named emotion with an intensity rating.
type Emotion struct {
	Name      string `json:"name"`
	Intensity int32  `json:"intensity"` // 0-100
}

// ThoughtRecord is a CBT thought-challenging worksheet entry.
type ThoughtRecord struct {
	ID               int64
	UID              string
	UserID           string
	Date             time.Time
	Situation        string
	AutomaticThought string
	Emotions         []Emotion
	EvidenceFor      []string
	EvidenceAgainst  []string
	BalancedThought  string
	// Distortions holds detected cognitive-distortion labels from the fixed
	// 12-item taxonomy.
	Distortions []string
	CreatedTs   int64
}

// FindThoughtRecord specifies the conditions for finding thought records.
type FindThoughtRecord struct {
	ID      *int64
	UID     *string
	UserID  *string
	SinceTs *int64
	Limit   int
	Offset  int
}

// DeleteThoughtRecord specifies the conditions for deleting thought records.
type DeleteThoughtRecord struct {
	ID     *int64
	UserID *string
}

// CBTMoodEntry is a mood reading taken in the CBT flow; Insights carries the
// CBT observations attached to the reading, which also count toward the
// practice streak.
type CBTMoodEntry struct {
	ID        int64
	UserID    string
	Date      time.Time
	Mood      int32
	Insights  []string
	Notes     string
	CreatedTs int64
}

// FindCBTMoodEntry specifies the conditions for finding CBT mood entries.
type FindCBTMoodEntry struct {
	ID      *int64
	UserID  *string
	SinceTs *int64
	Limit   int
	Offset  int
}

// DeleteCBTMoodEntry specifies the conditions for deleting CBT mood entries.
type DeleteCBTMoodEntry struct {
	ID     *int64
	UserID *string
}
