package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) CreateJournalEntry(ctx context.Context, create *store.JournalEntry) (*store.JournalEntry, error) {
	if create.Date.IsZero() {
		create.Date = time.Now()
	}

	fields := []string{"uid", "user_id", "date_ts", "mood", "content", "tags", "themes", "emotional_state", "concerns", "achievements", "insights"}
	args := []any{
		create.UID, create.UserID, create.Date.Unix(), create.Mood, create.Content,
		marshalJSON(create.Tags), marshalJSON(create.Themes), create.EmotionalState,
		marshalJSON(create.Concerns), marshalJSON(create.Achievements), marshalJSON(create.Insights),
	}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO journal_entry (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create journal_entry: %w", err)
	}
	return create, nil
}

func (d *DB) ListJournalEntries(ctx context.Context, find *store.FindJournalEntry) ([]*store.JournalEntry, error) {
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
	if v := find.BeforeTs; v != nil {
		where, args = append(where, "date_ts < "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT id, uid, user_id, date_ts, mood, content, tags, themes, emotional_state, concerns, achievements, insights, created_ts
		FROM journal_entry WHERE ` + strings.Join(where, " AND ") + ` ORDER BY date_ts ASC, id ASC`
	if find.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, find.Limit)
		if find.Offset > 0 {
			query = fmt.Sprintf("%s OFFSET %d", query, find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal_entries: %w", err)
	}
	defer rows.Close()

	list := make([]*store.JournalEntry, 0)
	for rows.Next() {
		entry := &store.JournalEntry{}
		var dateTs int64
		var tags, themes, concerns, achievements, insights string
		if err := rows.Scan(
			&entry.ID, &entry.UID, &entry.UserID, &dateTs, &entry.Mood, &entry.Content,
			&tags, &themes, &entry.EmotionalState, &concerns, &achievements, &insights, &entry.CreatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal_entry: %w", err)
		}
		entry.Date = time.Unix(dateTs, 0)
		if err := unmarshalJSON(tags, &entry.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode journal_entry tags: %w", err)
		}
		if err := unmarshalJSON(themes, &entry.Themes); err != nil {
			return nil, fmt.Errorf("failed to decode journal_entry themes: %w", err)
		}
		if err := unmarshalJSON(concerns, &entry.Concerns); err != nil {
			return nil, fmt.Errorf("failed to decode journal_entry concerns: %w", err)
		}
		if err := unmarshalJSON(achievements, &entry.Achievements); err != nil {
			return nil, fmt.Errorf("failed to decode journal_entry achievements: %w", err)
		}
		if err := unmarshalJSON(insights, &entry.Insights); err != nil {
			return nil, fmt.Errorf("failed to decode journal_entry insights: %w", err)
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}

func (d *DB) DeleteJournalEntry(ctx context.Context, delete *store.DeleteJournalEntry) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM journal_entry WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete journal_entry: %w", err)
	}
	return nil
}
