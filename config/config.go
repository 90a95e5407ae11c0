package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Report   ReportConfig
	Export   ExportConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
	ShopName string
	Currency string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type DatabaseConfig struct {
	// URL selects the networked backend when set; empty means the
	// embedded SQLite file at SQLitePath.
	URL            string
	SQLitePath     string
	BusyTimeoutMS  int
	MaxOpenConns   int
	MaxIdleConns   int
	ConnMaxLifeSec int
}

type ReportConfig struct {
	TopN              int
	TrendDays         int
	RecentSalesLimit  int
	LowStockThreshold int
	ExpiryWindowDays  int
}

type ExportConfig struct {
	Dir string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPPort: getEnv("HTTP_PORT", ":8090"),
			ShopName: getEnv("SHOP_NAME", "HORN ERP"),
			Currency: getEnv("CURRENCY", "$"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			SQLitePath:     getEnv("SQLITE_PATH", "horn.db"),
			BusyTimeoutMS:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 30000),
			MaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeSec: getEnvInt("DB_CONN_MAX_LIFETIME", 300),
		},
		Report: ReportConfig{
			TopN:              getEnvInt("REPORT_TOP_N", 5),
			TrendDays:         getEnvInt("REPORT_TREND_DAYS", 7),
			RecentSalesLimit:  getEnvInt("REPORT_RECENT_SALES_LIMIT", 50),
			LowStockThreshold: getEnvInt("REPORT_LOW_STOCK_THRESHOLD", 10),
			ExpiryWindowDays:  getEnvInt("REPORT_EXPIRY_WINDOW_DAYS", 7),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "reports"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
