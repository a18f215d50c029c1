package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"ms-booking-client/internal/models"
)

// SQLiteStore keeps the token in a single-row-per-key credentials table.
type SQLiteStore struct {
	Bun *bun.DB
	Key string
}

// OpenSQLite opens the database at dsn and ensures the credentials table exists.
func OpenSQLite(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", dsn, err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*models.StoredCredential)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create credentials table: %w", err)
	}
	return nil
}

func NewSQLiteStore(db *bun.DB, key string) *SQLiteStore {
	return &SQLiteStore{Bun: db, Key: key}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var row models.StoredCredential
	err := s.Bun.NewSelect().
		Model(&row).
		Where("name = ?", s.Key).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return row.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	row := models.StoredCredential{
		Name:      s.Key,
		Value:     token,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.Bun.NewInsert().
		Model(&row).
		On("CONFLICT (name) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context) error {
	_, err := s.Bun.NewDelete().
		Model((*models.StoredCredential)(nil)).
		Where("name = ?", s.Key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
