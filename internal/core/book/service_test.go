// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/book"
	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/currency"
	"github.com/taibuivan/folio/pkg/pointer"
)

func money(s string) *decimal.Decimal {
	return pointer.To(decimal.RequireFromString(s))
}

// strongCandidate scores 45 + 115 + 30 = 190 on the default tables with an empty collection.
func strongCandidate() book.Draft {
	return book.Draft{
		Title:           "Tess of the d'Urbervilles",
		AuthorID:        pointer.To(authorHardy),
		PublisherID:     pointer.To(publisherMacm),
		PurchasePrice:   money("60"),
		ValueMid:        money("100"),
		PublicationYear: pointer.To(1891),
		ConditionGrade:  pointer.To("Fine"),
		CompleteSet:     pointer.To(true),
	}
}

/*
TestService_PreviewScores verifies the end-to-end assembly of an unsaved candidate.
*/
func TestService_PreviewScores(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.PreviewScores(context.Background(), strongCandidate())
	require.NoError(t, err)

	assert.Zero(t, result.BookID)
	assert.Equal(t, "USD", result.BaseCurrency)
	assert.Equal(t, 45, result.InvestmentGrade)
	assert.Equal(t, 115, result.StrategicFit)
	assert.Equal(t, 30, result.CollectionImpact)
	assert.Equal(t, 190, result.OverallScore)
	assert.Equal(t, "STRONG", result.Disposition)
	assert.False(t, result.Persisted)
}

/*
TestService_CurrencyConversion verifies both money fields are converted before scoring.
*/
func TestService_CurrencyConversion(t *testing.T) {
	f := newFixture(t)

	draft := strongCandidate()
	draft.PurchaseCurrency = "gbp"
	draft.PurchasePrice = money("50")
	draft.ValueMid = money("100")

	result, err := f.service.PreviewScores(context.Background(), draft)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("63.5").Equal(result.PurchasePrice))
	assert.Equal(t, 50, result.InvestmentGrade)
	require.NotNil(t, result.Details.Investment.DiscountPercent)
	assert.InDelta(t, 50.0, *result.Details.Investment.DiscountPercent, 0.001)
}

/*
TestService_CalculateScores_Collection verifies the owned snapshot drives collection impact.
*/
func TestService_CalculateScores_Collection(t *testing.T) {
	f := newFixture(t)

	ownedID := f.repo.insert(t, book.Book{Title: "The Mayor of Casterbridge", AuthorID: pointer.To(authorHardy), Status: book.StatusOnHand})
	f.repo.insert(t, book.Book{Title: "Far from the Madding Crowd", AuthorID: pointer.To(authorHardy), Status: book.StatusRemoved})

	candidate := strongCandidate()
	candidate.Title = "Mayor of Casterbridge (2 vols)"
	id := f.repo.insert(t, book.Book{
		Title: candidate.Title, AuthorID: candidate.AuthorID, PublisherID: candidate.PublisherID,
		PurchasePrice: candidate.PurchasePrice, PurchaseCurrency: "USD", ValueMid: candidate.ValueMid,
		PublicationYear: candidate.PublicationYear, ConditionGrade: candidate.ConditionGrade,
		CompleteSet: candidate.CompleteSet, Status: book.StatusEvaluating,
	})

	result, err := f.service.CalculateScores(context.Background(), id)
	require.NoError(t, err)

	// +15 gap (one owned, the removed copy ignored) - 40 duplicate
	assert.Equal(t, -25, result.CollectionImpact)
	assert.Equal(t, &ownedID, result.Details.Collection.DuplicateBookID)
	assert.Contains(t, result.Warnings(), scoring.WarningDuplicate)
	assert.Equal(t, 1, f.repo.ownedRead)
	assert.Empty(t, f.repo.saved)
}

/*
TestService_CalculateScores_Deterministic verifies repeated calls agree.
*/
func TestService_CalculateScores_Deterministic(t *testing.T) {
	f := newFixture(t)

	draft := strongCandidate()
	id := f.repo.insert(t, book.Book{
		Title: draft.Title, AuthorID: draft.AuthorID, PurchasePrice: draft.PurchasePrice,
		PurchaseCurrency: "USD", Status: book.StatusEvaluating,
	})

	first, err := f.service.CalculateScores(context.Background(), id)
	require.NoError(t, err)
	second, err := f.service.CalculateScores(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first.Warnings(), scoring.WarningMissingValuation)
	assert.Contains(t, first.Warnings(), scoring.WarningMissingCondition)
}

/*
TestService_RefreshScores verifies only the three totals are persisted.
*/
func TestService_RefreshScores(t *testing.T) {
	f := newFixture(t)

	draft := strongCandidate()
	id := f.repo.insert(t, book.Book{
		Title: draft.Title, AuthorID: draft.AuthorID, PublisherID: draft.PublisherID,
		PurchasePrice: draft.PurchasePrice, PurchaseCurrency: "USD", ValueMid: draft.ValueMid,
		PublicationYear: draft.PublicationYear, ConditionGrade: draft.ConditionGrade,
		CompleteSet: draft.CompleteSet, Status: book.StatusEvaluating,
	})

	result, err := f.service.RefreshScores(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, result.Persisted)

	saved := f.repo.saved[id]
	assert.Equal(t, 45, saved.InvestmentGrade)
	assert.Equal(t, 115, saved.StrategicFit)
	assert.Equal(t, 30, saved.CollectionImpact)
	assert.False(t, saved.ScoredAt.IsZero())

	stored, err := f.service.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 45, *stored.InvestmentGrade)
}

/*
TestService_ScoreErrors verifies each failure class maps to its HTTP-facing code.
*/
func TestService_ScoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*book.Draft)
		wantCode string
	}{
		{"missing_price", func(d *book.Draft) { d.PurchasePrice = nil }, "UNPROCESSABLE"},
		{"negative_price", func(d *book.Draft) { d.PurchasePrice = money("-1") }, "VALIDATION_ERROR"},
		{"unknown_grade", func(d *book.Draft) { d.ConditionGrade = pointer.To("Mint") }, "VALIDATION_ERROR"},
		{"unknown_currency", func(d *book.Draft) { d.PurchaseCurrency = "JPY" }, "VALIDATION_ERROR"},
		{"unknown_author", func(d *book.Draft) { d.AuthorID = pointer.To(99) }, "UNPROCESSABLE"},
		{"missing_title", func(d *book.Draft) { d.Title = " " }, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			draft := strongCandidate()
			tt.mutate(&draft)

			_, err := f.service.PreviewScores(context.Background(), draft)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperr.As(err).Code)
		})
	}

	t.Run("unknown_book", func(t *testing.T) {
		_, err := newFixture(t).service.CalculateScores(context.Background(), 404)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("config_source_failure", func(t *testing.T) {
		converter, err := currency.NewConverter("USD", nil)
		require.NoError(t, err)

		failing := staticConfig{err: apperr.Internal(errors.New("settings down"))}
		service := book.NewService(newMemoryRepository(), staticReferences{}, failing, converter, slog.New(slog.NewTextHandler(io.Discard, nil)))

		draft := strongCandidate()
		draft.AuthorID, draft.PublisherID = nil, nil

		_, err = service.PreviewScores(context.Background(), draft)
		require.Error(t, err)
		assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_Create verifies defaults and catalogue validation.
*/
func TestService_Create(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.Create(context.Background(), book.CreateInput{Draft: strongCandidate()})
	require.NoError(t, err)
	assert.Equal(t, book.StatusEvaluating, created.Status)
	assert.Equal(t, "USD", created.PurchaseCurrency)

	draft := strongCandidate()
	draft.ValueMid = money("0")
	_, err = f.service.Create(context.Background(), book.CreateInput{Draft: draft, Status: "LOST"})
	require.Error(t, err)

	appError := apperr.As(err)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 2)
}

/*
TestService_UpdateStatus verifies lifecycle moves feed the owned snapshot.
*/
func TestService_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owned := f.repo.insert(t, book.Book{Title: "Adam Bede", AuthorID: pointer.To(authorEliot), Status: book.StatusEvaluating})

	draft := strongCandidate()
	draft.AuthorID = pointer.To(authorEliot)
	draft.Title = "Middlemarch"

	before, err := f.service.PreviewScores(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, 30, before.CollectionImpact)

	require.NoError(t, f.service.UpdateStatus(ctx, owned, book.StatusInTransit))

	after, err := f.service.PreviewScores(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, 15, after.CollectionImpact)

	assert.Error(t, f.service.UpdateStatus(ctx, owned, "SOLD"))
	assert.Equal(t, "NOT_FOUND", apperr.As(f.service.UpdateStatus(ctx, 404, book.StatusOnHand)).Code)
}
