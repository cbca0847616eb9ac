package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultPort    = 8000
	DefaultEnvFile = ".env"
)

var (
	ErrInvalidPort         = errors.New("port must be between 0 and 65535")
	ErrConflictingSources  = errors.New("polls file and database URL are mutually exclusive")
	ErrUnknownDatabaseType = errors.New("database type must be sqlite or postgres")
)

type Config struct {
	Host         string
	Port         int
	PollsFile    string
	DatabaseURL  string
	DatabaseType string
	CORSOrigins  []string
	LogLevel     slog.Level
}

// Addr is the host:port the server binds to
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ParseFlags reads flags, then .env, then environment variables.
// Flags take precedence over the environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, logLevel string

	flags := pflag.NewFlagSet("pollserver", pflag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVarP(&cfg.Port, "port", "p", DefaultPort, "Server port")
	flags.StringVar(&cfg.Host, "host", "", "Bind address (empty for all interfaces)")

	// Poll source, at most one of these
	flags.StringVarP(&cfg.PollsFile, "polls-file", "f", "", "YAML or JSON polls file")
	flags.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL to read polls from")
	flags.StringVarP(&cfg.DatabaseType, "database-type", "t", "sqlite", "Database type (sqlite or postgres)")

	flags.StringSliceVar(&cfg.CORSOrigins, "cors-origin", nil, "Allowed CORS origin (repeatable)")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&envFile, "env-file", DefaultEnvFile, "Path to .env file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile, flags.Changed("env-file")); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if !flags.Changed("port") {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if !flags.Changed("host") {
		cfg.Host = os.Getenv("HOST")
	}
	if !flags.Changed("polls-file") {
		cfg.PollsFile = os.Getenv("POLLS_FILE")
	}
	if !flags.Changed("database-url") {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if !flags.Changed("database-type") {
		if dbType := os.Getenv("DATABASE_TYPE"); dbType != "" {
			cfg.DatabaseType = dbType
		}
	}
	if !flags.Changed("cors-origin") {
		cfg.CORSOrigins = splitList(os.Getenv("CORS_ORIGINS"))
	}
	if !flags.Changed("log-level") {
		if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
			logLevel = lvl
		}
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidPort, cfg.Port)
	}
	if cfg.PollsFile != "" && cfg.DatabaseURL != "" {
		return Config{}, ErrConflictingSources
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("%w: got %q", ErrUnknownDatabaseType, cfg.DatabaseType)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	return cfg, nil
}

// loadEnvFile applies a .env file without overriding variables already set.
// A missing file is only an error when it was asked for explicitly.
func loadEnvFile(path string, explicit bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
