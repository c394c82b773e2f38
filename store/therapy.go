package store

import "time"

// TherapyMessage is a single turn in an embedded session transcript.
type TherapyMessage struct {
	Role    string `json:"role"` // user/assistant
	Content string `json:"content"`
	Ts      int64  `json:"ts"`
}

// TherapySession records one therapy-chat session with an optional transcript.
type TherapySession struct {
	ID         int64
	UID        string
	UserID     string
	Date       time.Time
	Topics     []string
	Techniques []string
	Concerns   []string
	Mood       int32
	Transcript []TherapyMessage
	CreatedTs  int64
}

// FindTherapySession specifies the conditions for finding therapy sessions.
type FindTherapySession struct {
	ID      *int64
	UserID  *string
	SinceTs *int64
	Limit   int
	Offset  int
}

// DeleteTherapySession specifies the conditions for deleting therapy sessions.
type DeleteTherapySession struct {
	ID     *int64
	UserID *string
}
