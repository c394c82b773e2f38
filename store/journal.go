package store

import "time"

// JournalEntry is an immutable journal record. Derived fields (themes,
// emotional state, concerns, achievements, insights) are computed at
// insertion time from the content and mood; edits elsewhere in the app
// produce new records, never updates here.
type JournalEntry struct {
	ID      int64
	UID     string
	UserID  string
	Date    time.Time
	Mood    int32 // bounded 1-6
	Content string
	Tags    []string

	// Derived at insertion time.
	Themes         []string
	EmotionalState string
	Concerns       []string
	Achievements   []string
	Insights       []string

	CreatedTs int64
}

// FindJournalEntry specifies the conditions for finding journal entries.
type FindJournalEntry struct {
	ID       *int64
	UID      *string
	UserID   *string
	SinceTs  *int64
	BeforeTs *int64
	Limit    int
	Offset   int
}

// DeleteJournalEntry specifies the conditions for deleting journal entries.
type DeleteJournalEntry struct {
	ID     *int64
	UID    *string
	UserID *string
}
