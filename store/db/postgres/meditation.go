package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) CreateMeditationSession(ctx context.Context, create *store.MeditationSession) (*store.MeditationSession, error) {
	if create.Date.IsZero() {
		create.Date = time.Now()
	}

	fields := []string{"uid", "user_id", "date_ts", "technique", "duration_minutes", "completion", "mood_before", "mood_after", "effectiveness"}
	args := []any{
		create.UID, create.UserID, create.Date.Unix(), create.Technique,
		create.DurationMinutes, create.Completion, create.MoodBefore, create.MoodAfter, create.Effectiveness,
	}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO meditation_session (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create meditation_session: %w", err)
	}
	return create, nil
}

func (d *DB) ListMeditationSessions(ctx context.Context, find *store.FindMeditationSession) ([]*store.MeditationSession, error) {
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

	query := `SELECT id, uid, user_id, date_ts, technique, duration_minutes, completion, mood_before, mood_after, effectiveness, created_ts
		FROM meditation_session WHERE ` + strings.Join(where, " AND ") + ` ORDER BY date_ts ASC, id ASC`
	if find.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, find.Limit)
		if find.Offset > 0 {
			query = fmt.Sprintf("%s OFFSET %d", query, find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meditation_sessions: %w", err)
	}
	defer rows.Close()

	list := make([]*store.MeditationSession, 0)
	for rows.Next() {
		session := &store.MeditationSession{}
		var dateTs int64
		if err := rows.Scan(
			&session.ID, &session.UID, &session.UserID, &dateTs, &session.Technique,
			&session.DurationMinutes, &session.Completion, &session.MoodBefore, &session.MoodAfter,
			&session.Effectiveness, &session.CreatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meditation_session: %w", err)
		}
		session.Date = time.Unix(dateTs, 0)
		list = append(list, session)
	}
	return list, rows.Err()
}

func (d *DB) DeleteMeditationSession(ctx context.Context, delete *store.DeleteMeditationSession) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM meditation_session WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete meditation_session: %w", err)
	}
	return nil
}
