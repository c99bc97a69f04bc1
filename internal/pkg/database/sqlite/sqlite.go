package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path          string
	InMemory      bool // Path is used as the shared-cache name
	BusyTimeoutMS int
	MaxOpenConns  int
}

// DSN builds the go-sqlite3 connection string. Transactions start with
// BEGIN IMMEDIATE so a unit of work holds the write lock from its first read.
func (c *Config) DSN() string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")
	busy := c.BusyTimeoutMS
	if busy <= 0 {
		busy = 5000
	}
	params.Set("_busy_timeout", fmt.Sprint(busy))

	if c.InMemory {
		params.Set("mode", "memory")
		params.Set("cache", "shared")
		name := strings.NewReplacer("/", "_", " ", "_").Replace(c.Path)
		return "file:" + name + "?" + params.Encode()
	}
	return "file:" + c.Path + "?" + params.Encode()
}

func NewSQLite(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, err
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	// Shared-cache memory databases vanish when the last connection closes.
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
