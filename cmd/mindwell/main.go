// Package main implements the mindwell server and its operational commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindwell/mindwell/internal/memory"
	"github.com/mindwell/mindwell/internal/observability"
	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/internal/sync"
	"github.com/mindwell/mindwell/server"
	apiv1 "github.com/mindwell/mindwell/server/router/api/v1"
	"github.com/mindwell/mindwell/store"
	"github.com/mindwell/mindwell/store/db"
)

const greetingBanner = `mindwell - personal wellness memory service`

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "mindwell",
	Short:   "The wellness memory and analytics server",
	Version: version,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runServer()
	},
}

var backfillCmd = &cobra.Command{
	Use:   "backfill <user-id>",
	Short: "Pull a user's journal history from the remote backend into the local store",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBackfill(args[0])
	},
}

var tokenCreateCmd = &cobra.Command{
	Use:   "token-create <user-id>",
	Short: "Create an API access token for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		return runTokenCreate(args[0], description)
	},
}

var tokenRevokeCmd = &cobra.Command{
	Use:   "token-revoke <user-id>",
	Short: "Revoke all API access tokens of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runTokenRevoke(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server: "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver: "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetDefault("mode", "demo")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("port", 8081)
	viper.SetEnvPrefix("mindwell")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	tokenCreateCmd.Flags().String("description", "", "description stored with the token")
	rootCmd.AddCommand(tokenCreateCmd)
	rootCmd.AddCommand(tokenRevokeCmd)
	rootCmd.AddCommand(backfillCmd)
}

func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:          viper.GetString("mode"),
		Addr:          viper.GetString("addr"),
		Port:          viper.GetInt("port"),
		Data:          viper.GetString("data"),
		Driver:        viper.GetString("driver"),
		DSN:           viper.GetString("dsn"),
		Version:       version,
		RemoteBaseURL: viper.GetString("remote_base_url"),
		RemoteToken:   viper.GetString("remote_token"),
		AIEnabled:     viper.GetBool("ai_enabled"),
		AIAPIKey:      viper.GetString("ai_api_key"),
		AIBaseURL:     viper.GetString("ai_base_url"),
		AIModel:       viper.GetString("ai_model"),
		DemoJitter:    viper.GetBool("demo_jitter"),

		RateLimitRPS:   viper.GetFloat64("rate_limit_rps"),
		RateLimitBurst: viper.GetInt("rate_limit_burst"),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func openStore(ctx context.Context, p *profile.Profile) (*store.Store, error) {
	driver, err := db.NewDBDriver(p)
	if err != nil {
		return nil, err
	}
	st := store.New(driver, p)
	if err := st.Migrate(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

func runServer() error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(p.IsDev())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStore(ctx, p)
	if err != nil {
		return err
	}

	s, err := server.NewServer(ctx, p, st, logger)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		s.Shutdown(ctx)
		cancel()
	}()

	fmt.Println(greetingBanner)
	fmt.Printf("version %s, mode %s, listening on %s:%d\n", p.Version, p.Mode, p.Addr, p.Port)
	if err := s.Start(ctx); err != nil && !strings.Contains(err.Error(), "Server closed") {
		return err
	}
	<-ctx.Done()
	return nil
}

// runTokenCreate mints a bearer token, stores its bcrypt hash and prints the
// plaintext once. The plaintext is not recoverable afterwards.
func runTokenCreate(userID, description string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, p)
	if err != nil {
		return err
	}
	defer st.Close()

	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := st.CreateAccessToken(ctx, &store.AccessToken{
		UserID:      userID,
		Description: description,
		TokenPrefix: token[:apiv1.TokenPrefixLen],
		TokenHash:   string(hash),
	}); err != nil {
		return err
	}

	fmt.Printf("token for %s (store it now, it will not be shown again):\n%s\n", userID, token)
	return nil
}

// runTokenRevoke deletes every access token of a user. In-flight requests
// already past the auth middleware finish; new ones are rejected.
func runTokenRevoke(userID string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, p)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteAccessToken(ctx, &store.DeleteAccessToken{UserID: &userID}); err != nil {
		return err
	}
	fmt.Printf("revoked all tokens for %s\n", userID)
	return nil
}

// runBackfill pulls the user's journal collection from the remote backend and
// inserts whatever the local store is missing.
func runBackfill(userID string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	if p.RemoteBaseURL == "" {
		return fmt.Errorf("remote_base_url is not configured, nothing to backfill from")
	}

	ctx := context.Background()
	st, err := openStore(ctx, p)
	if err != nil {
		return err
	}
	defer st.Close()

	mem := memory.NewService(st, sync.NewClient(p.RemoteBaseURL, p.RemoteToken), observability.NewLogger(p.IsDev()))
	inserted, err := mem.BackfillJournal(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Printf("backfilled %d journal entries for %s\n", inserted, userID)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
