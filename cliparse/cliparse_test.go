// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
)

const testAdminAddr = "0x00000000000000000000000000000000000000aa"

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_ADDRESS", "")
	t.Setenv("SINGLE_CAST", "")
}

func TestParseFlags(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-p", "8080", "-d", "postgres://test", "-admin", testAdminAddr, "-single-cast"},
			want: Config{Port: 8080, DatabaseURL: "postgres://test", AdminAddress: testAdminAddr, SingleCast: true},
		},
		{
			name: "default port and policy",
			args: []string{"-d", "postgres://test", "-admin", testAdminAddr},
			want: Config{Port: 3319, DatabaseURL: "postgres://test", AdminAddress: testAdminAddr},
		},
		{
			name:    "missing database URL",
			args:    []string{"-admin", testAdminAddr},
			wantErr: true,
		},
		{
			name:    "missing admin address",
			args:    []string{"-d", "postgres://test"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFlags(%v) = %+v, want error", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags(%v) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("ParseFlags(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://from-env")
	t.Setenv("ADMIN_ADDRESS", testAdminAddr)
	t.Setenv("SINGLE_CAST", "true")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	want := Config{Port: 9000, DatabaseURL: "postgres://from-env", AdminAddress: testAdminAddr, SingleCast: true}
	if cfg != want {
		t.Errorf("ParseFlags() = %+v, want %+v", cfg, want)
	}
}

func TestParseFlagsFlagsBeatEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://from-env")
	t.Setenv("ADMIN_ADDRESS", "0x00000000000000000000000000000000000000bb")

	cfg, err := ParseFlags([]string{"-p", "8123", "-d", "postgres://from-flag", "-admin", testAdminAddr})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 8123 || cfg.DatabaseURL != "postgres://from-flag" || cfg.AdminAddress != testAdminAddr {
		t.Errorf("flags should take precedence over env, got %+v", cfg)
	}
}

func TestParseFlagsInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("ADMIN_ADDRESS", testAdminAddr)

	if _, err := ParseFlags(nil); err == nil {
		t.Error("ParseFlags() should fail on invalid PORT")
	}

	t.Setenv("PORT", "9000")
	t.Setenv("SINGLE_CAST", "maybe")
	if _, err := ParseFlags(nil); err == nil {
		t.Error("ParseFlags() should fail on invalid SINGLE_CAST")
	}
}
