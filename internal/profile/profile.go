package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory
	Data string
	// DSN points to where mindwell stores its own data
	DSN string
	// Driver is the database driver (sqlite or postgres)
	Driver string
	// Version is the current version of server
	Version string

	// RemoteBaseURL is the upstream backend the memory service syncs against.
	// Empty disables remote sync; the local store is always the source of truth.
	RemoteBaseURL string
	// RemoteToken is the bearer token presented to the upstream backend.
	RemoteToken string

	// AI configuration. Rule-based insights never depend on these; the LLM
	// only rephrases already-computed insights.
	AIEnabled bool   // MINDWELL_AI_ENABLED
	AIAPIKey  string // MINDWELL_AI_API_KEY
	AIBaseURL string // MINDWELL_AI_BASE_URL (default: https://api.openai.com/v1)
	AIModel   string // MINDWELL_AI_MODEL (default: gpt-4o-mini)

	// DemoJitter enables the randomized technique-effectiveness estimator.
	// Off by default so analytics stay reproducible.
	DemoJitter bool

	// RateLimitRPS and RateLimitBurst bound per-user API request rates.
	RateLimitRPS   float64 // MINDWELL_RATE_LIMIT_RPS
	RateLimitBurst int     // MINDWELL_RATE_LIMIT_BURST
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if AI is enabled and an API key is configured.
func (p *Profile) IsAIEnabled() bool {
	return p.AIEnabled && p.AIAPIKey != ""
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}
	// Trim trailing "/" in case user supplies
	dataDir = strings.TrimRight(dataDir, "/")

	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

// Validate normalizes the profile and fills driver-dependent defaults.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}
	if p.Mode == "prod" && p.Data == "" {
		p.Data = "/var/opt/mindwell"
	}
	if p.Driver == "" {
		p.Driver = "sqlite"
	}
	if p.Driver != "sqlite" && p.Driver != "postgres" {
		return errors.Errorf("unsupported database driver %q", p.Driver)
	}

	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		return err
	}
	p.Data = dataDir

	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("mindwell_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}
	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("DSN is required for postgres driver")
	}

	if p.AIBaseURL == "" {
		p.AIBaseURL = "https://api.openai.com/v1"
	}
	if p.AIModel == "" {
		p.AIModel = "gpt-4o-mini"
	}
	if p.RateLimitRPS <= 0 {
		p.RateLimitRPS = 10
	}
	if p.RateLimitBurst <= 0 {
		p.RateLimitBurst = 20
	}
	return nil
}
