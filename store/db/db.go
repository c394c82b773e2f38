package db

import (
	"github.com/pkg/errors"

	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/store"
	"github.com/mindwell/mindwell/store/db/postgres"
	"github.com/mindwell/mindwell/store/db/sqlite"
)

// NewDBDriver creates a new db driver based on profile. SQLite serves the
// on-device store; PostgreSQL serves shared deployments.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	default:
		return nil, errors.New("unknown db driver: only 'sqlite' and 'postgres' are supported")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
