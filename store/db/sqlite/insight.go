package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) CreateInsight(ctx context.Context, create *store.Insight) (*store.Insight, error) {
	fields := []string{"user_id", "kind", "content", "confidence", "source"}
	args := []any{create.UserID, create.Kind, create.Content, create.Confidence, create.Source}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO insight (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}
	return create, nil
}

func (d *DB) ListInsights(ctx context.Context, find *store.FindInsight) ([]*store.Insight, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Kind; v != nil {
		where, args = append(where, "kind = "+placeholder(len(args)+1)), append(args, string(*v))
	}

	// Insertion order: id ascending matches append order.
	query := `SELECT id, user_id, kind, content, confidence, source, created_ts
		FROM insight WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id ASC`
	if find.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, find.Limit)
		if find.Offset > 0 {
			query = fmt.Sprintf("%s OFFSET %d", query, find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Insight, 0)
	for rows.Next() {
		insight := &store.Insight{}
		if err := rows.Scan(&insight.ID, &insight.UserID, &insight.Kind, &insight.Content, &insight.Confidence, &insight.Source, &insight.CreatedTs); err != nil {
			return nil, fmt.Errorf("failed to scan insight: %w", err)
		}
		list = append(list, insight)
	}
	return list, rows.Err()
}

func (d *DB) DeleteInsights(ctx context.Context, delete *store.DeleteInsight) error {
	if delete.KeepLatest != nil {
		if delete.UserID == nil {
			return fmt.Errorf("KeepLatest requires UserID")
		}
		// Evict oldest first, keeping the N most recent appends.
		stmt := `DELETE FROM insight WHERE user_id = ? AND id NOT IN (
			SELECT id FROM insight WHERE user_id = ? ORDER BY id DESC LIMIT ?)`
		if _, err := d.db.ExecContext(ctx, stmt, *delete.UserID, *delete.UserID, *delete.KeepLatest); err != nil {
			return fmt.Errorf("failed to trim insights: %w", err)
		}
		return nil
	}

	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM insight WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete insights: %w", err)
	}
	return nil
}
