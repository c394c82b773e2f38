package store

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

// The migration system keeps the schema version in system_setting so that a
// reload can detect what it is talking to. Fresh databases are initialized
// from migration/{driver}/LATEST.sql and stamped with the current version;
// existing databases are checked against it.

//go:embed migration
var migrationFS embed.FS

const (
	// LatestSchemaFileName is the full schema applied to fresh installations.
	LatestSchemaFileName = "LATEST.sql"

	// currentSchemaVersion is stamped into system_setting after init.
	currentSchemaVersion = "1.0.0"
)

// Migrate initializes the database if needed and verifies the schema version.
func (s *Store) Migrate(ctx context.Context) error {
	initialized, err := s.driver.IsInitialized(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check database initialization")
	}

	if !initialized {
		if err := s.applyLatestSchema(ctx); err != nil {
			return errors.Wrap(err, "failed to apply latest schema")
		}
		if _, err := s.UpsertSystemSetting(ctx, &SystemSetting{
			Name:  SystemSettingSchemaVersion,
			Value: currentSchemaVersion,
		}); err != nil {
			return errors.Wrap(err, "failed to stamp schema version")
		}
		slog.Info("database initialized", "driver", s.profile.Driver, "schema_version", currentSchemaVersion)
		return nil
	}

	name := SystemSettingSchemaVersion
	setting, err := s.GetSystemSetting(ctx, &FindSystemSetting{Name: &name})
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}
	if setting == nil || setting.Value == "" {
		return errors.New("database is initialized but has no schema version; refusing to start")
	}
	if setting.Value != currentSchemaVersion {
		return errors.Errorf("schema version mismatch: database has %s, server expects %s", setting.Value, currentSchemaVersion)
	}
	return nil
}

func (s *Store) applyLatestSchema(ctx context.Context) error {
	filePath := fmt.Sprintf("migration/%s/%s", s.profile.Driver, LatestSchemaFileName)
	buf, err := migrationFS.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to read latest schema %q", filePath)
	}
	if _, err := s.driver.GetDB().ExecContext(ctx, string(buf)); err != nil {
		return errors.Wrapf(err, "failed to execute statement in %q", filePath)
	}
	return nil
}
