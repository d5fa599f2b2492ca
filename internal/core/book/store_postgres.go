// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/database/schema"
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

var bookColumns = strings.Join(schema.CatalogBook.Columns(), ", ")

// List implements [Repository].
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	table := schema.CatalogBook

	var conditions []string
	var args []any

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", table.Title, len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, slice.Map(filter.Statuses, func(s Status) string { return string(s) }))
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", table.Status, len(args)))
	}
	if len(filter.AuthorIDs) > 0 {
		args = append(args, filter.AuthorIDs)
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", table.AuthorID, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, table.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_books")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s DESC LIMIT $%d OFFSET $%d`,
		bookColumns, table.Table, where, table.CreatedAt, table.ID, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		books = append(books, book)
	}

	return books, total, dberr.Wrap(rows.Err(), "list_books")
}

// Get implements [Repository].
func (repository *PostgresRepository) Get(context context.Context, id int) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, bookColumns, schema.CatalogBook.Table, schema.CatalogBook.ID)

	book, err := scanBook(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}
	return book, nil
}

// Create implements [Repository].
func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	table := schema.CatalogBook
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		table.Table, table.Title, table.AuthorID, table.PublisherID, table.BinderID,
		table.PurchasePrice, table.PurchaseCurrency, table.ValueMid, table.PublicationYear,
		table.ConditionGrade, table.CompleteSet, table.Status, table.CreatedAt, table.UpdatedAt,
		table.ID, table.CreatedAt, table.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		book.Title, book.AuthorID, book.PublisherID, book.BinderID,
		book.PurchasePrice, book.PurchaseCurrency, book.ValueMid, book.PublicationYear,
		book.ConditionGrade, book.CompleteSet, string(book.Status),
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)

	return dberr.Wrap(err, "create_book")
}

// UpdateStatus implements [Repository].
func (repository *PostgresRepository) UpdateStatus(context context.Context, id int, status Status) error {
	table := schema.CatalogBook
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		table.Table, table.Status, table.UpdatedAt, table.ID,
	)

	command, err := repository.db.Exec(context, query, id, string(status))
	if err != nil {
		return dberr.Wrap(err, "update_book_status")
	}
	if command.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ListOwned implements [Repository].
func (repository *PostgresRepository) ListOwned(context context.Context) (scoring.Collection, error) {
	table := schema.CatalogBook
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s`,
		table.ID, table.Title, table.AuthorID, table.Table, table.Status, table.ID,
	)

	statuses := slice.Map(OwnedStatuses, func(s Status) string { return string(s) })
	rows, err := repository.db.Query(context, query, statuses)
	if err != nil {
		return nil, dberr.Wrap(err, "list_owned_books")
	}

	owned, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (scoring.OwnedBook, error) {
		var book scoring.OwnedBook
		err := row.Scan(&book.ID, &book.Title, &book.AuthorID)
		return book, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_owned_book")
	}

	return scoring.Collection(owned), nil
}

// SaveScores implements [Repository].
func (repository *PostgresRepository) SaveScores(context context.Context, id int, scores Scores) error {
	table := schema.CatalogBook
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		table.Table, table.InvestmentGrade, table.StrategicFit, table.CollectionImpact, table.ScoredAt, table.ID,
	)

	command, err := repository.db.Exec(context, query,
		id, scores.InvestmentGrade, scores.StrategicFit, scores.CollectionImpact, scores.ScoredAt,
	)
	if err != nil {
		return dberr.Wrap(err, "save_book_scores")
	}
	if command.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanBook reads one row in [schema.CatalogBookTable.Columns] order.
func scanBook(row pgx.Row) (*Book, error) {
	book := &Book{}
	var price, valueMid decimal.NullDecimal
	var status string

	err := row.Scan(
		&book.ID, &book.Title, &book.AuthorID, &book.PublisherID, &book.BinderID,
		&price, &book.PurchaseCurrency, &valueMid, &book.PublicationYear,
		&book.ConditionGrade, &book.CompleteSet, &status,
		&book.InvestmentGrade, &book.StrategicFit, &book.CollectionImpact, &book.ScoredAt,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	book.Status = Status(status)
	book.PurchasePrice = nullableDecimal(price)
	book.ValueMid = nullableDecimal(valueMid)
	return book, nil
}

func nullableDecimal(value decimal.NullDecimal) *decimal.Decimal {
	if !value.Valid {
		return nil
	}
	return &value.Decimal
}
