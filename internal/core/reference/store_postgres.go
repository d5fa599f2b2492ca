// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/slice"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List implements [Repository].
func (repository *PostgresRepository) List(context context.Context, kind Kind, filter Filter, limit, offset int) ([]*Entity, int, error) {
	table := kind.table()

	var conditions []string
	var args []any

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", table.Name, len(args)))
	}
	if len(filter.Tiers) > 0 {
		args = append(args, slice.Map(filter.Tiers, func(t scoring.Tier) string { return string(t) }))
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", table.Tier, len(args)))
	}
	if filter.PreferredOnly {
		conditions = append(conditions, table.Preferred)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, table.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_"+string(kind))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s ASC, %s ASC LIMIT $%s OFFSET $%s`,
		strings.Join(table.Columns(), ", "), table.Table, where, table.Name, table.ID,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2),
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_"+string(kind))
	}
	defer rows.Close()

	var entities []*Entity
	for rows.Next() {
		entity, err := scanEntity(rows, kind)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_"+string(kind))
		}
		entities = append(entities, entity)
	}

	return entities, total, dberr.Wrap(rows.Err(), "list_"+string(kind))
}

// Get implements [Repository].
func (repository *PostgresRepository) Get(context context.Context, kind Kind, id int) (*Entity, error) {
	table := kind.table()
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(table.Columns(), ", "), table.Table, table.ID,
	)

	entity, err := scanEntity(repository.db.QueryRow(context, query, id), kind)
	if err != nil {
		return nil, dberr.Wrap(err, "get_"+string(kind))
	}
	return entity, nil
}

// Create implements [Repository].
func (repository *PostgresRepository) Create(context context.Context, entity *Entity) error {
	table := entity.Kind.table()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		table.Table, table.Name, table.Tier, table.Preferred, table.CreatedAt, table.UpdatedAt,
		table.ID, table.CreatedAt, table.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, entity.Name, tierArg(entity.Tier), entity.Preferred).
		Scan(&entity.ID, &entity.CreatedAt, &entity.UpdatedAt)
	return dberr.Wrap(err, "create_"+string(entity.Kind))
}

// Update implements [Repository].
func (repository *PostgresRepository) Update(context context.Context, entity *Entity) error {
	table := entity.Kind.table()
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table, table.Name, table.Tier, table.Preferred, table.UpdatedAt,
		table.ID, table.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, entity.ID, entity.Name, tierArg(entity.Tier), entity.Preferred).
		Scan(&entity.UpdatedAt)
	return dberr.Wrap(err, "update_"+string(entity.Kind))
}

// scanEntity reads one row in [schema.CatalogReferenceTable.Columns] order.
func scanEntity(row pgx.Row, kind Kind) (*Entity, error) {
	entity := &Entity{Kind: kind}
	var tier *string

	if err := row.Scan(&entity.ID, &entity.Name, &tier, &entity.Preferred, &entity.CreatedAt, &entity.UpdatedAt); err != nil {
		return nil, err
	}

	if tier != nil {
		value := scoring.Tier(*tier)
		entity.Tier = &value
	}
	return entity, nil
}

func tierArg(tier *scoring.Tier) *string {
	if tier == nil {
		return nil
	}
	value := string(*tier)
	return &value
}
