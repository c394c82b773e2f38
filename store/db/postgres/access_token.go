package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) CreateAccessToken(ctx context.Context, create *store.AccessToken) (*store.AccessToken, error) {
	fields := []string{"user_id", "description", "token_prefix", "token_hash"}
	args := []any{create.UserID, create.Description, create.TokenPrefix, create.TokenHash}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO access_token (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, fmt.Errorf("failed to create access_token: %w", err)
	}
	return create, nil
}

func (d *DB) ListAccessTokens(ctx context.Context, find *store.FindAccessToken) ([]*store.AccessToken, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.TokenPrefix; v != nil {
		where, args = append(where, "token_prefix = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT id, user_id, description, token_prefix, token_hash, created_ts
		FROM access_token WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list access_tokens: %w", err)
	}
	defer rows.Close()

	list := make([]*store.AccessToken, 0)
	for rows.Next() {
		token := &store.AccessToken{}
		if err := rows.Scan(&token.ID, &token.UserID, &token.Description, &token.TokenPrefix, &token.TokenHash, &token.CreatedTs); err != nil {
			return nil, fmt.Errorf("failed to scan access_token: %w", err)
		}
		list = append(list, token)
	}
	return list, rows.Err()
}

func (d *DB) DeleteAccessToken(ctx context.Context, delete *store.DeleteAccessToken) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM access_token WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete access_token: %w", err)
	}
	return nil
}

func (d *DB) UpsertSystemSetting(ctx context.Context, upsert *store.SystemSetting) (*store.SystemSetting, error) {
	stmt := `INSERT INTO system_setting (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`
	if _, err := d.db.ExecContext(ctx, stmt, upsert.Name, upsert.Value); err != nil {
		return nil, fmt.Errorf("failed to upsert system_setting: %w", err)
	}
	return upsert, nil
}

func (d *DB) GetSystemSetting(ctx context.Context, find *store.FindSystemSetting) (*store.SystemSetting, error) {
	where, args := []string{"1 = 1"}, []any{}
	if v := find.Name; v != nil {
		where, args = append(where, "name = "+placeholder(len(args)+1)), append(args, *v)
	}
	query := `SELECT name, value FROM system_setting WHERE ` + strings.Join(where, " AND ")

	setting := &store.SystemSetting{}
	err := d.db.QueryRowContext(ctx, query, args...).Scan(&setting.Name, &setting.Value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get system_setting: %w", err)
	}
	return setting, nil
}
