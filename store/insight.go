package store

// InsightKind is the tagged variant of a derived insight.
type InsightKind string

const (
	InsightPattern      InsightKind = "pattern"
	InsightBreakthrough InsightKind = "breakthrough"
	InsightConcern      InsightKind = "concern"
	InsightAchievement  InsightKind = "achievement"
)

// InsightSource names the collection an insight was derived from.
type InsightSource string

const (
	SourceJournal    InsightSource = "journal"
	SourceMeditation InsightSource = "meditation"
	SourceTherapy    InsightSource = "therapy"
	SourceMood       InsightSource = "mood"
)

// Insight is a short derived observation over a user's history. Append-only;
// the collection is capped at the 20 most recent, oldest evicted first.
type Insight struct {
	ID         int64
	UserID     string
	Kind       InsightKind
	Content    string
	Confidence float64 // 0-1
	Source     InsightSource
	CreatedTs  int64
}

// FindInsight specifies the conditions for finding insights.
type FindInsight struct {
	ID     *int64
	UserID *string
	Kind   *InsightKind
	Limit  int
	Offset int
}

// DeleteInsight specifies the conditions for deleting insights.
// KeepLatest trims a user's insights to the N most recent.
type DeleteInsight struct {
	ID         *int64
	UserID     *string
	KeepLatest *int
}
