// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get implements [Repository].
func (repository *PostgresRepository) Get(context context.Context, key string) (*Record, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.SystemSetting.Key, schema.SystemSetting.Value, schema.SystemSetting.UpdatedAt, schema.SystemSetting.UpdatedBy,
		schema.SystemSetting.Table, schema.SystemSetting.Key,
	)

	record := &Record{}
	err := repository.db.QueryRow(context, query, key).Scan(&record.Key, &record.Value, &record.UpdatedAt, &record.UpdatedBy)
	if err != nil {
		return nil, dberr.Wrap(err, "get_setting")
	}
	return record, nil
}

// Put implements [Repository].
func (repository *PostgresRepository) Put(context context.Context, key string, value []byte, updatedBy string) (*Record, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s)
		VALUES ($1, $2::jsonb, NOW(), $3)
		ON CONFLICT (%[2]s) DO UPDATE
		SET %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s, %[5]s = EXCLUDED.%[5]s
		RETURNING %[2]s, %[3]s, %[4]s, %[5]s
	`,
		schema.SystemSetting.Table, schema.SystemSetting.Key, schema.SystemSetting.Value,
		schema.SystemSetting.UpdatedAt, schema.SystemSetting.UpdatedBy,
	)

	record := &Record{}
	err := repository.db.QueryRow(context, query, key, string(value), updatedBy).
		Scan(&record.Key, &record.Value, &record.UpdatedAt, &record.UpdatedBy)
	if err != nil {
		return nil, dberr.Wrap(err, "put_setting")
	}
	return record, nil
}
