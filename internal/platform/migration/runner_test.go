// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/folio":   "pgx5://u:p@db:5432/folio",
		"postgresql://u:p@db:5432/folio": "pgx5://u:p@db:5432/folio",
		"pgx5://u:p@db:5432/folio":       "pgx5://u:p@db:5432/folio",
		"host=db dbname=folio":           "host=db dbname=folio",
	}

	for in, want := range tests {
		assert.Equal(t, want, convertToPgx5DSN(in), in)
	}
}

/*
TestCatalogMigration_ReferenceSequences checks that every reference table
declares its own SERIAL id, so publisher and binder ids are not drawn from
the author sequence.
*/
func TestCatalogMigration_ReferenceSequences(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "data", "migrations", "000001_catalog.up.sql"))
	require.NoError(t, err)
	sql := string(raw)

	assert.NotRegexp(t, `LIKE\s+catalog\.`, sql)

	for _, table := range []string{"author", "publisher", "binder"} {
		pattern := regexp.MustCompile(`CREATE TABLE catalog\.` + table + `\s*\(\s*id\s+SERIAL PRIMARY KEY`)
		assert.Regexp(t, pattern, sql, table)
	}
}
