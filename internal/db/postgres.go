package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgresORM opens the GORM handle used by the repositories. The handle
// is returned, not stored in a package global, so the caller owns its
// lifecycle.
func OpenPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// OpenPostgresSqlx opens the raw sqlx handle used by the analytics
// repository. Retries briefly so a cold-starting database container does not
// kill the process.
func OpenPostgresSqlx(dsn string) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return db, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, err
}
