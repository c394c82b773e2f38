package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) CreateMoodSample(ctx context.Context, create *store.MoodSample) (*store.MoodSample, error) {
	if create.Date.IsZero() {
		create.Date = time.Now()
	}

	fields := []string{"user_id", "date_ts", "mood", "triggers"}
	args := []any{create.UserID, create.Date.Unix(), create.Mood, marshalJSON(create.Triggers)}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO mood_sample (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create mood_sample: %w", err)
	}
	return create, nil
}

func (d *DB) ListMoodSamples(ctx context.Context, find *store.FindMoodSample) ([]*store.MoodSample, error) {
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

	query := `SELECT id, user_id, date_ts, mood, triggers, created_ts
		FROM mood_sample WHERE ` + strings.Join(where, " AND ") + ` ORDER BY date_ts ASC, id ASC`
	if find.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, find.Limit)
		if find.Offset > 0 {
			query = fmt.Sprintf("%s OFFSET %d", query, find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood_samples: %w", err)
	}
	defer rows.Close()

	list := make([]*store.MoodSample, 0)
	for rows.Next() {
		sample := &store.MoodSample{}
		var dateTs int64
		var triggers string
		if err := rows.Scan(&sample.ID, &sample.UserID, &dateTs, &sample.Mood, &triggers, &sample.CreatedTs); err != nil {
			return nil, fmt.Errorf("failed to scan mood_sample: %w", err)
		}
		sample.Date = time.Unix(dateTs, 0)
		if err := unmarshalJSON(triggers, &sample.Triggers); err != nil {
			return nil, fmt.Errorf("failed to decode mood_sample triggers: %w", err)
		}
		list = append(list, sample)
	}
	return list, rows.Err()
}

func (d *DB) DeleteMoodSamples(ctx context.Context, delete *store.DeleteMoodSample) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.BeforeTs; v != nil {
		where, args = append(where, "date_ts < "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM mood_sample WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete mood_samples: %w", err)
	}
	return nil
}
