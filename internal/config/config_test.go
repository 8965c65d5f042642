package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_TTL_SECONDS", "")
	t.Setenv("DEMO_PASSWORD", "")

	c := Load()
	if c.AppPort != "8080" || c.DBDriver != "mysql" {
		t.Fatalf("defaults: %+v", c)
	}
	if c.SessionTTL() != 2*time.Hour {
		t.Fatalf("session ttl=%v", c.SessionTTL())
	}
	if c.DemoPassword != "123456" {
		t.Fatalf("demo password default=%q", c.DemoPassword)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL_SECONDS", "600")
	t.Setenv("ASSISTANT_RATE_PER_MINUTE", "not-a-number")

	c := Load()
	if c.DSN() != "/tmp/x.db" {
		t.Fatalf("dsn=%q", c.DSN())
	}
	if c.RedisDB != 3 || c.SessionTTL() != 10*time.Minute {
		t.Fatalf("ints not parsed: %+v", c)
	}
	if c.AssistantRatePerMin != 10 {
		t.Fatalf("bad int should fall back to default, got %d", c.AssistantRatePerMin)
	}
}

func validConfig() *Config {
	c := Load()
	c.DBDriver = "mysql"
	c.MySQLHost, c.MySQLPort, c.MySQLDB, c.MySQLUser = "db", "3306", "masar", "masar"
	c.SessionSecret = strings.Repeat("s", 32)
	c.DemoPassword = "123456"
	c.SessionTTLSecs = 7200
	c.AssistantTimeoutSecs, c.AssistantRatePerMin = 20, 10
	return c
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"short secret", func(c *Config) { c.SessionSecret = "short" }, "SESSION_SECRET"},
		{"bad port", func(c *Config) { c.MySQLPort = "notaport" }, "MYSQL_PORT"},
		{"unknown driver", func(c *Config) { c.DBDriver = "postgres" }, "DB_DRIVER"},
		{"sqlite without path", func(c *Config) { c.DBDriver = "sqlite"; c.SQLitePath = "" }, "SQLITE_PATH"},
		{"no password", func(c *Config) { c.DemoPassword = "" }, "DEMO_PASSWORD"},
		{"zero ttl", func(c *Config) { c.SessionTTLSecs = 0 }, "SESSION_TTL_SECONDS"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("want error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := validConfig()
	got := c.DSN()
	want := "masar:" + c.MySQLPass + "@tcp(db:3306)/masar?parseTime=true&charset=utf8mb4,utf8"
	if got != want {
		t.Fatalf("dsn=%q, want %q", got, want)
	}
}
