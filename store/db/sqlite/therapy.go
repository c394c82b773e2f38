package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) CreateTherapySession(ctx context.Context, create *store.TherapySession) (*store.TherapySession, error) {
	if create.Date.IsZero() {
		create.Date = time.Now()
	}

	fields := []string{"uid", "user_id", "date_ts", "topics", "techniques", "concerns", "mood", "transcript"}
	args := []any{
		create.UID, create.UserID, create.Date.Unix(),
		marshalJSON(create.Topics), marshalJSON(create.Techniques), marshalJSON(create.Concerns),
		create.Mood, marshalJSON(create.Transcript),
	}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO therapy_session (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create therapy_session: %w", err)
	}
	return create, nil
}

func (d *DB) ListTherapySessions(ctx context.Context, find *store.FindTherapySession) ([]*store.TherapySession, error) {
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

	query := `SELECT id, uid, user_id, date_ts, topics, techniques, concerns, mood, transcript, created_ts
		FROM therapy_session WHERE ` + strings.Join(where, " AND ") + ` ORDER BY date_ts ASC, id ASC`
	if find.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, find.Limit)
		if find.Offset > 0 {
			query = fmt.Sprintf("%s OFFSET %d", query, find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list therapy_sessions: %w", err)
	}
	defer rows.Close()

	list := make([]*store.TherapySession, 0)
	for rows.Next() {
		session := &store.TherapySession{}
		var dateTs int64
		var topics, techniques, concerns, transcript string
		if err := rows.Scan(
			&session.ID, &session.UID, &session.UserID, &dateTs,
			&topics, &techniques, &concerns, &session.Mood, &transcript, &session.CreatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan therapy_session: %w", err)
		}
		session.Date = time.Unix(dateTs, 0)
		if err := unmarshalJSON(topics, &session.Topics); err != nil {
			return nil, fmt.Errorf("failed to decode therapy_session topics: %w", err)
		}
		if err := unmarshalJSON(techniques, &session.Techniques); err != nil {
			return nil, fmt.Errorf("failed to decode therapy_session techniques: %w", err)
		}
		if err := unmarshalJSON(concerns, &session.Concerns); err != nil {
			return nil, fmt.Errorf("failed to decode therapy_session concerns: %w", err)
		}
		if err := unmarshalJSON(transcript, &session.Transcript); err != nil {
			return nil, fmt.Errorf("failed to decode therapy_session transcript: %w", err)
		}
		list = append(list, session)
	}
	return list, rows.Err()
}

func (d *DB) DeleteTherapySession(ctx context.Context, delete *store.DeleteTherapySession) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM therapy_session WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete therapy_session: %w", err)
	}
	return nil
}
