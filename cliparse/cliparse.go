package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	AdminAddress string
	SingleCast   bool
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("titan-sentara", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Contest config
	fs.StringVar(&cfg.AdminAddress, "admin", "", "Contest admin address (prefer env)")
	fs.BoolVar(&cfg.SingleCast, "single-cast", false, "Reject repeat casts per voter per position")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Admin identity - MUST be provided
	if cfg.AdminAddress == "" {
		cfg.AdminAddress = os.Getenv("ADMIN_ADDRESS")
	}
	if cfg.AdminAddress == "" {
		return Config{}, errors.New("ADMIN_ADDRESS required")
	}

	if !cfg.SingleCast {
		if v := os.Getenv("SINGLE_CAST"); v != "" {
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SINGLE_CAST env variable")
			}
			cfg.SingleCast = enabled
		}
	}

	return cfg, nil
}
