package store

// CommunicationStyle is the user's preferred assistant tone.
type CommunicationStyle string

const (
	StyleSupportive CommunicationStyle = "supportive"
	StyleDirect     CommunicationStyle = "direct"
	StyleGentle     CommunicationStyle = "gentle"
)

// UserMemory is the per-user preference profile at the root of the memory
// aggregate. Exactly one row per user id; the ordered collections hang off it
// in their own tables.
type UserMemory struct {
	UserID              string
	CommunicationStyle  CommunicationStyle
	AvoidedTopics       []string
	PreferredTechniques []string
	Goals               []string
	Challenges          []string
	LastUpdatedTs       int64
}

// FindUserMemory specifies the conditions for finding a user memory profile.
type FindUserMemory struct {
	UserID *string
}

// UpsertUserMemory specifies a create-or-replace of the profile row.
type UpsertUserMemory struct {
	UserID              string
	CommunicationStyle  CommunicationStyle
	AvoidedTopics       []string
	PreferredTechniques []string
	Goals               []string
	Challenges          []string
	LastUpdatedTs       int64
}

// DeleteUserMemory specifies the conditions for deleting a profile.
type DeleteUserMemory struct {
	UserID *string
}
