package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string

	// mysql or sqlite
	DBDriver   string
	SQLitePath string
	MySQLHost  string
	MySQLPort  string
	MySQLDB    string
	MySQLUser  string
	MySQLPass  string

	RedisAddr string
	RedisDB   int

	SessionTTLSecs int
	SessionSecret  string
	DemoPassword   string

	BankCatalogPath string

	GeminiAPIKey   string
	GeminiModel    string
	DeepSeekAPIKey string
	DeepSeekModel  string
	OllamaURL      string
	OllamaModel    string

	AssistantTimeoutSecs int
	AssistantRatePerMin  int

	LogLevel     string
	LogFormat    string
	GormLogLevel string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBDriver:   getenv("DB_DRIVER", "mysql"),
		SQLitePath: getenv("SQLITE_PATH", "masar.db"),
		MySQLHost:  getenv("MYSQL_HOST", "mysql"),
		MySQLPort:  getenv("MYSQL_PORT", "3306"),
		MySQLDB:    getenv("MYSQL_DB", "masar"),
		MySQLUser:  getenv("MYSQL_USER", "masar"),
		MySQLPass:  getenv("MYSQL_PASS", "masar"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		SessionTTLSecs: getenvInt("SESSION_TTL_SECONDS", 2*60*60),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DemoPassword:   getenv("DEMO_PASSWORD", "123456"),

		BankCatalogPath: os.Getenv("BANK_CATALOG_PATH"),

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		DeepSeekAPIKey: os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekModel:  getenv("DEEPSEEK_MODEL", "deepseek-chat"),
		OllamaURL:      os.Getenv("OLLAMA_URL"),
		OllamaModel:    getenv("OLLAMA_MODEL", "llama3"),

		AssistantTimeoutSecs: getenvInt("ASSISTANT_TIMEOUT_SECONDS", 20),
		AssistantRatePerMin:  getenvInt("ASSISTANT_RATE_PER_MINUTE", 10),

		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "json"),
		GormLogLevel: getenv("GORM_LOG_LEVEL", "warn"),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (mysql|sqlite)", c.DBDriver)
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 bytes")
	}
	if c.DemoPassword == "" {
		return errors.New("missing DEMO_PASSWORD")
	}
	if c.SessionTTLSecs <= 0 {
		return fmt.Errorf("invalid SESSION_TTL_SECONDS %d", c.SessionTTLSecs)
	}
	if c.AssistantTimeoutSecs <= 0 || c.AssistantRatePerMin <= 0 {
		return errors.New("ASSISTANT_TIMEOUT_SECONDS and ASSISTANT_RATE_PER_MINUTE must be positive")
	}
	return nil
}

func (c *Config) SessionTTL() time.Duration { return time.Duration(c.SessionTTLSecs) * time.Second }

func (c *Config) AssistantTimeout() time.Duration {
	return time.Duration(c.AssistantTimeoutSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

// DSN returns the connection string for DBDriver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
