package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/mindwell/store"
)

func (d *DB) UpsertUserMemory(ctx context.Context, upsert *store.UpsertUserMemory) (*store.UserMemory, error) {
	if upsert.LastUpdatedTs == 0 {
		upsert.LastUpdatedTs = time.Now().Unix()
	}

	stmt := `INSERT INTO user_memory (user_id, communication_style, avoided_topics, preferred_techniques, goals, challenges, last_updated_ts)
		VALUES (` + placeholders(7) + `)
		ON CONFLICT (user_id) DO UPDATE SET
			communication_style = EXCLUDED.communication_style,
			avoided_topics = EXCLUDED.avoided_topics,
			preferred_techniques = EXCLUDED.preferred_techniques,
			goals = EXCLUDED.goals,
			challenges = EXCLUDED.challenges,
			last_updated_ts = EXCLUDED.last_updated_ts`

	if _, err := d.db.ExecContext(ctx, stmt,
		upsert.UserID, upsert.CommunicationStyle, marshalJSON(upsert.AvoidedTopics),
		marshalJSON(upsert.PreferredTechniques), marshalJSON(upsert.Goals), marshalJSON(upsert.Challenges),
		upsert.LastUpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert user_memory: %w", err)
	}

	userID := upsert.UserID
	return d.GetUserMemory(ctx, &store.FindUserMemory{UserID: &userID})
}

func (d *DB) GetUserMemory(ctx context.Context, find *store.FindUserMemory) (*store.UserMemory, error) {
	where, args := []string{"1 = 1"}, []any{}
	if v := find.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT user_id, communication_style, avoided_topics, preferred_techniques, goals, challenges, last_updated_ts
		FROM user_memory WHERE ` + strings.Join(where, " AND ")

	memory := &store.UserMemory{}
	var avoidedTopics, preferredTechniques, goals, challenges string
	err := d.db.QueryRowContext(ctx, query, args...).Scan(
		&memory.UserID, &memory.CommunicationStyle, &avoidedTopics, &preferredTechniques, &goals, &challenges, &memory.LastUpdatedTs,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user_memory: %w", err)
	}
	if err := unmarshalJSON(avoidedTopics, &memory.AvoidedTopics); err != nil {
		return nil, fmt.Errorf("failed to decode user_memory avoided_topics: %w", err)
	}
	if err := unmarshalJSON(preferredTechniques, &memory.PreferredTechniques); err != nil {
		return nil, fmt.Errorf("failed to decode user_memory preferred_techniques: %w", err)
	}
	if err := unmarshalJSON(goals, &memory.Goals); err != nil {
		return nil, fmt.Errorf("failed to decode user_memory goals: %w", err)
	}
	if err := unmarshalJSON(challenges, &memory.Challenges); err != nil {
		return nil, fmt.Errorf("failed to decode user_memory challenges: %w", err)
	}
	return memory, nil
}

func (d *DB) DeleteUserMemory(ctx context.Context, delete *store.DeleteUserMemory) error {
	where, args := []string{"1 = 1"}, []any{}
	if v := delete.UserID; v != nil {
		where, args = append(where, "user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	stmt := `DELETE FROM user_memory WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete user_memory: %w", err)
	}
	return nil
}
