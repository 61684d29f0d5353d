// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/kmizuta/wordbook/internal/config"
	"github.com/kmizuta/wordbook/schemas"
)

// Open opens a MySQL connection using the provided config.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}

	db, err := sqlx.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Migrate applies all embedded schema migrations in file name order. The
// statements are idempotent, so running them on every start is safe.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	files, err := fs.ReadDir(schemas.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("fs.ReadDir(migrations) > %w", err)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	for _, file := range files {
		contents, err := fs.ReadFile(schemas.Migrations, "migrations/"+file.Name())
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", file.Name(), err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", file.Name(), err)
		}
	}
	return nil
}
