package statsrecording

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// RecorderConfig selects and configures a recorder backend. Type is
// "sqlite" (default) or "clickhouse". ClickHouse settings come from ConnStr
// when set, otherwise from the individual fields.
type RecorderConfig struct {
	Type string

	// Path is the SQLite file name, without extension. Empty generates a
	// unique name.
	Path string

	// ConnStr is a clickhouse://host:port/database?username=u&password=p URL.
	ConnStr string

	Host     string
	Port     int
	Database string
	Username string
	Password string

	BatchSize int
}

// NewRecorderWithConfig creates a recorder for the configured backend. It
// panics on an unknown backend type or a malformed connection string.
func NewRecorderWithConfig(cfg RecorderConfig) StatsRecorder {
	switch strings.ToLower(cfg.Type) {
	case "", "sqlite":
		w := NewSQLiteWriter(cfg.Path)
		if cfg.BatchSize > 0 {
			w.batchSize = cfg.BatchSize
		}
		return w

	case "clickhouse":
		opts := ClickHouseOptions{
			Host:      cfg.Host,
			Port:      cfg.Port,
			Database:  cfg.Database,
			Username:  cfg.Username,
			Password:  cfg.Password,
			BatchSize: cfg.BatchSize,
		}
		if cfg.ConnStr != "" {
			opts = parseClickHouseURL(cfg.ConnStr, cfg.BatchSize)
		}
		return NewClickHouseRecorder(opts)
	}

	panic(fmt.Errorf("unknown recorder type %q", cfg.Type))
}

func parseClickHouseURL(connStr string, batchSize int) ClickHouseOptions {
	u, err := url.Parse(connStr)
	if err != nil {
		panic(fmt.Errorf("malformed ClickHouse connection string: %w", err))
	}
	if u.Scheme != "clickhouse" {
		panic(fmt.Errorf("connection string scheme must be clickhouse, got %q", u.Scheme))
	}

	port := 9000
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			panic(fmt.Errorf("malformed ClickHouse port: %w", err))
		}
	}

	q := u.Query()
	return ClickHouseOptions{
		Host:      u.Hostname(),
		Port:      port,
		Database:  strings.TrimPrefix(u.Path, "/"),
		Username:  q.Get("username"),
		Password:  q.Get("password"),
		BatchSize: batchSize,
	}
}
