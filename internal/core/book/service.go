// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/folio/internal/core/reference"
	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/currency"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pointer"
)

// # Contracts

// ReferenceResolver loads tiered references for scoring. Satisfied by [*reference.Service].
type ReferenceResolver interface {
	Resolve(context context.Context, kind reference.Kind, id *int) (*scoring.Reference, error)
}

// ConfigSource yields the effective scoring configuration. Satisfied by [*settings.Service].
type ConfigSource interface {
	ScoringConfig(context context.Context) (scoring.Config, error)
}

// Converter normalises money into the base currency. Satisfied by [*currency.Converter].
type Converter interface {
	Base() string
	Supports(code string) bool
	Codes() []string
	ToBase(amount decimal.Decimal, code string) (decimal.Decimal, error)
}

// # Service Layer

// Service implements catalogue and score use cases.
type Service struct {
	repo       Repository
	references ReferenceResolver
	settings   ConfigSource
	converter  Converter
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a book [Service].
func NewService(repo Repository, references ReferenceResolver, settings ConfigSource, converter Converter, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		references: references,
		settings:   settings,
		converter:  converter,
		logger:     logger,
		now:        time.Now,
	}
}

// # Catalogue

// List returns a page of books with their stored dimension totals.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, 0, validate.RequiredError(FieldStatus, "Unknown status "+string(status))
		}
	}
	return service.repo.List(context, filter, limit, offset)
}

// Get retrieves one book.
func (service *Service) Get(context context.Context, id int) (*Book, error) {
	book, err := service.repo.Get(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound("Book")
	}
	return book, err
}

/*
Create validates and stores a new book.

Parameters:
  - context: context.Context
  - input: CreateInput (status defaults to EVALUATING)

Returns:
  - *Book: Stored row
  - error: ValidationError (400), Unprocessable for unknown references (422), storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Book, error) {
	draft := service.normalizeDraft(input.Draft)

	status := input.Status
	if status == "" {
		status = StatusEvaluating
	}

	validator := service.validateDraft(draft)
	if draft.ValueMid != nil {
		validator.Positive(FieldValueMid, *draft.ValueMid)
	}
	validator.Custom(FieldStatus, !status.IsValid(), "Must be one of: EVALUATING, IN_TRANSIT, ON_HAND, REMOVED")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	book := &Book{
		Title:            draft.Title,
		AuthorID:         draft.AuthorID,
		PublisherID:      draft.PublisherID,
		BinderID:         draft.BinderID,
		PurchasePrice:    draft.PurchasePrice,
		PurchaseCurrency: draft.PurchaseCurrency,
		ValueMid:         draft.ValueMid,
		PublicationYear:  draft.PublicationYear,
		ConditionGrade:   draft.ConditionGrade,
		CompleteSet:      draft.CompleteSet,
		Status:           status,
	}

	if err := service.repo.Create(context, book); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "book_created",
		slog.Int("book_id", book.ID),
		slog.String("status", string(book.Status)),
	)
	return book, nil
}

// UpdateStatus moves a book through its lifecycle. Any transition is allowed.
func (service *Service) UpdateStatus(context context.Context, id int, status Status) error {
	if !status.IsValid() {
		return validate.RequiredError(FieldStatus, "Must be one of: EVALUATING, IN_TRANSIT, ON_HAND, REMOVED")
	}

	err := service.repo.UpdateStatus(context, id, status)
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound("Book")
	}
	if err != nil {
		return err
	}

	service.logger.InfoContext(context, "book_status_changed",
		slog.Int("book_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

// # Score Actions

/*
CalculateScores scores a stored book and returns the full breakdown.

Nothing is persisted; repeated calls with unchanged data return identical results.

Parameters:
  - context: context.Context
  - id: int (Book ID)

Returns:
  - *ScoreResult: Breakdown in the base currency
  - error: NotFound, ValidationError, Unprocessable or storage errors
*/
func (service *Service) CalculateScores(context context.Context, id int) (*ScoreResult, error) {
	book, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}
	return service.score(context, book.ID, book.Draft())
}

/*
RefreshScores scores a stored book and persists the three dimension totals.

Parameters:
  - context: context.Context
  - id: int (Book ID)

Returns:
  - *ScoreResult: Breakdown with Persisted set
  - error: Same as [Service.CalculateScores], plus storage errors on save
*/
func (service *Service) RefreshScores(context context.Context, id int) (*ScoreResult, error) {
	result, err := service.CalculateScores(context, id)
	if err != nil {
		return nil, err
	}

	scores := Scores{
		InvestmentGrade:  result.InvestmentGrade,
		StrategicFit:     result.StrategicFit,
		CollectionImpact: result.CollectionImpact,
		ScoredAt:         service.now().UTC(),
	}
	if err := service.repo.SaveScores(context, id, scores); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}

	result.Persisted = true
	service.logger.InfoContext(context, "book_scores_refreshed",
		slog.Int("book_id", id),
		slog.Int("overall_score", result.OverallScore),
	)
	return result, nil
}

/*
PreviewScores scores an unsaved candidate against the current collection.

Unlike [Service.Create], a non-positive value_mid is accepted and reported as a
missing valuation in the breakdown.

Parameters:
  - context: context.Context
  - draft: Draft

Returns:
  - *ScoreResult: Breakdown without a book ID
  - error: ValidationError, Unprocessable or storage errors
*/
func (service *Service) PreviewScores(context context.Context, draft Draft) (*ScoreResult, error) {
	draft = service.normalizeDraft(draft)

	if err := service.validateDraft(draft).Err(); err != nil {
		return nil, err
	}
	return service.score(context, 0, draft)
}

// score is shared by every score action.
func (service *Service) score(context context.Context, id int, draft Draft) (*ScoreResult, error) {

	// 1. Candidate (references resolved, money converted)
	candidate, err := service.candidate(context, id, draft)
	if err != nil {
		return nil, err
	}

	// 2. Configuration and owned snapshot, each read once
	cfg, err := service.settings.ScoringConfig(context)
	if err != nil {
		return nil, err
	}

	owned, err := service.repo.ListOwned(context)
	if err != nil {
		return nil, err
	}

	// 3. Engine
	breakdown, err := scoring.Calculate(cfg, candidate, owned)
	if err != nil {
		return nil, engineError(err)
	}

	service.logger.InfoContext(context, "book_score_calculated",
		slog.Int("book_id", id),
		slog.Int("investment_grade", breakdown.InvestmentGrade),
		slog.Int("strategic_fit", breakdown.StrategicFit),
		slog.Int("collection_impact", breakdown.CollectionImpact),
		slog.Int("overall_score", breakdown.OverallScore),
		slog.String("disposition", breakdown.Disposition),
		slog.Int("owned_books", len(owned)),
	)

	return &ScoreResult{
		BookID:        id,
		BaseCurrency:  service.converter.Base(),
		PurchasePrice: candidate.PurchasePrice,
		Breakdown:     breakdown,
	}, nil
}

// candidate assembles the engine input for a draft.
func (service *Service) candidate(context context.Context, id int, draft Draft) (scoring.Candidate, error) {
	if draft.PurchasePrice == nil {
		return scoring.Candidate{}, apperr.Unprocessable("A purchase price is required to score a book", apperr.FieldError{
			Field:   FieldPurchasePrice,
			Message: "This field is required",
		})
	}

	price, err := service.toBase(*draft.PurchasePrice, draft.PurchaseCurrency)
	if err != nil {
		return scoring.Candidate{}, err
	}

	var valueMid *decimal.Decimal
	if draft.ValueMid != nil {
		converted, err := service.toBase(*draft.ValueMid, draft.PurchaseCurrency)
		if err != nil {
			return scoring.Candidate{}, err
		}
		valueMid = &converted
	}

	author, err := service.references.Resolve(context, reference.KindAuthor, draft.AuthorID)
	if err != nil {
		return scoring.Candidate{}, err
	}

	publisher, err := service.references.Resolve(context, reference.KindPublisher, draft.PublisherID)
	if err != nil {
		return scoring.Candidate{}, err
	}

	var grade *scoring.ConditionGrade
	if draft.ConditionGrade != nil {
		grade = pointer.To(scoring.ConditionGrade(*draft.ConditionGrade))
	}

	return scoring.Candidate{
		ID:              id,
		Title:           draft.Title,
		PurchasePrice:   price,
		ValueMid:        valueMid,
		PublicationYear: draft.PublicationYear,
		ConditionGrade:  grade,
		CompleteSet:     draft.CompleteSet,
		Author:          author,
		Publisher:       publisher,
	}, nil
}

func (service *Service) toBase(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	converted, err := service.converter.ToBase(amount, code)

	var unknown *currency.UnknownCurrencyError
	if errors.As(err, &unknown) {
		return decimal.Zero, validate.RequiredError(FieldPurchaseCurrency, "No exchange rate for "+unknown.Code)
	}
	return converted, err
}

// normalizeDraft trims text and defaults the currency to the base currency.
func (service *Service) normalizeDraft(draft Draft) Draft {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.PurchaseCurrency = strings.ToUpper(strings.TrimSpace(draft.PurchaseCurrency))
	if draft.PurchaseCurrency == "" {
		draft.PurchaseCurrency = service.converter.Base()
	}
	return draft
}

// validateDraft checks the fields the catalogue constrains.
func (service *Service) validateDraft(draft Draft) *validate.Validator {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, draft.Title).MaxLen(FieldTitle, draft.Title, maxTitleLength)
	validator.CurrencyCode(FieldPurchaseCurrency, draft.PurchaseCurrency)
	if len(draft.PurchaseCurrency) == 3 {
		validator.Custom(FieldPurchaseCurrency, !service.converter.Supports(draft.PurchaseCurrency),
			"Must be one of: "+strings.Join(service.converter.Codes(), ", "))
	}

	if draft.PurchasePrice != nil {
		validator.NonNegative(FieldPurchasePrice, *draft.PurchasePrice)
	}
	if draft.PublicationYear != nil {
		validator.Range(FieldPublicationYear, *draft.PublicationYear, minYear, maxYear)
	}
	if draft.ConditionGrade != nil {
		validator.Custom(FieldConditionGrade, !scoring.ConditionGrade(*draft.ConditionGrade).IsValid(),
			"Must be one of: Fine, Near Fine, Very Good, Good, Fair, Poor, Ungraded")
	}

	return validator
}

// engineError maps engine failures onto application errors.
func engineError(err error) error {
	var validation *scoring.ValidationError
	if errors.As(err, &validation) {
		details := make([]apperr.FieldError, 0, len(validation.Problems))
		for _, problem := range validation.Problems {
			details = append(details, apperr.FieldError{Field: problem.Field, Message: problem.Message})
		}
		return apperr.ValidationError("Invalid scoring input", details...)
	}

	// A config that passed settings validation should never fail here.
	return apperr.Internal(err)
}
