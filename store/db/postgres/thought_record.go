package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) CreateThoughtRecord(ctx context.Context, create *store.ThoughtRecord) (*store.ThoughtRecord, error) {
	if create.Date.IsZero() {
		create.Date = time.Now()
	}

	fields := []string{"uid", "user_id", "date_ts", "situation", "automatic_thought", "emotions", "evidence_for", "evidence_against", "balanced_thought", "distortions"}
	args := []any{
		create.UID, create.UserID, create.Date.Unix(), create.Situation, create.AutomaticThought,
		marshalJSON(create.Emotions), marshalJSON(create.EvidenceFor), marshalJSON(create.EvidenceAgainst),
		create.BalancedThought, marshalJSON(create.Distortions),
	}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO thought_record (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create thought_record: %w", err)
	}
	return create, nil
}

func (d *DB) ListThoughtRecords(ctx context.Context, find *store.FindThoughtRecord) ([]*store.ThoughtRecord, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.SinceTs; v != nil {
		where, args = append(where, "date_ts >= "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT id, uid, user_id, date_ts, situation, automatic_thought, emotions, evidence_for, evidence_against, balanced_thought, distortions, created_ts
		FROM thought_record WHERE ` + strings.Join(where, " AND ") + ` ORDER BY date_ts ASC, id ASC`
	if find.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, find.Limit)
		if find.Offset > 0 {
			query = fmt.Sprintf("%s OFFSET %d", query, find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list thought_records: %w", err)
	}
	defer rows.Close()

	list := make([]*store.ThoughtRecord, 0)
	for rows.Next() {
		record := &store.ThoughtRecord{}
		var dateTs int64
		var emotions, evidenceFor, evidenceAgainst, distortions string
		if err := rows.Scan(
			&record.ID, &record.UID, &record.UserID, &dateTs, &record.Situation, &record.AutomaticThought,
			&emotions, &evidenceFor, &evidenceAgainst, &record.BalancedThought, &distortions, &record.CreatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thought_record: %w", err)
		}
		record.Date = time.Unix(dateTs, 0)
		if err := unmarshalJSON(emotions, &record.Emotions); err != nil {
			return nil, fmt.Errorf("failed to decode thought_record emotions: %w", err)
		}
		if err := unmarshalJSON(evidenceFor, &record.EvidenceFor); err != nil {
			return nil, fmt.Errorf("failed to decode thought_record evidence_for: %w", err)
		}
		if err := unmarshalJSON(evidenceAgainst, &record.EvidenceAgainst); err != nil {
			return nil, fmt.Errorf("failed to decode thought_record evidence_against: %w", err)
		}
		if err := unmarshalJSON(distortions, &record.Distortions); err != nil {
			return nil, fmt.Errorf("failed to decode thought_record distortions: %w", err)
		}
		list = append(list, record)
	}
	return list, rows.Err()
}

func (d *DB) DeleteThoughtRecord(ctx context.Context, delete *store.DeleteThoughtRecord) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM thought_record WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete thought_record: %w", err)
	}
	return nil
}

func (d *DB) CreateCBTMoodEntry(ctx context.Context, create *store.CBTMoodEntry) (*store.CBTMoodEntry, error) {
	if create.Date.IsZero() {
		create.Date = time.Now()
	}

	fields := []string{"user_id", "date_ts", "mood", "insights", "notes"}
	args := []any{create.UserID, create.Date.Unix(), create.Mood, marshalJSON(create.Insights), create.Notes}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO cbt_mood_entry (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create cbt_mood_entry: %w", err)
	}
	return create, nil
}

func (d *DB) ListCBTMoodEntries(ctx context.Context, find *store.FindCBTMoodEntry) ([]*store.CBTMoodEntry, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.SinceTs; v != nil {
		where, args = append(where, "date_ts >= "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT id, user_id, date_ts, mood, insights, notes, created_ts
		FROM cbt_mood_entry WHERE ` + strings.Join(where, " AND ") + ` ORDER BY date_ts ASC, id ASC`
	if find.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, find.Limit)
		if find.Offset > 0 {
			query = fmt.Sprintf("%s OFFSET %d", query, find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cbt_mood_entries: %w", err)
	}
	defer rows.Close()

	list := make([]*store.CBTMoodEntry, 0)
	for rows.Next() {
		entry := &store.CBTMoodEntry{}
		var dateTs int64
		var insights string
		if err := rows.Scan(&entry.ID, &entry.UserID, &dateTs, &entry.Mood, &insights, &entry.Notes, &entry.CreatedTs); err != nil {
			return nil, fmt.Errorf("failed to scan cbt_mood_entry: %w", err)
		}
		entry.Date = time.Unix(dateTs, 0)
		if err := unmarshalJSON(insights, &entry.Insights); err != nil {
			return nil, fmt.Errorf("failed to decode cbt_mood_entry insights: %w", err)
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}

func (d *DB) DeleteCBTMoodEntry(ctx context.Context, delete *store.DeleteCBTMoodEntry) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM cbt_mood_entry WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete cbt_mood_entry: %w", err)
	}
	return nil
}
