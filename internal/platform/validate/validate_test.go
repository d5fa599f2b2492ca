// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Middlemarch", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Money checks the decimal amount rules.
*/
func TestValidator_Money(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		nonNegative bool
		positive    bool
	}{
		{"positive", "12.50", true, true},
		{"zero", "0", true, false},
		{"negative", "-0.01", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.value)

			v := &validate.Validator{}
			assert.Equal(t, !tt.nonNegative, v.NonNegative("purchase_price", amount).HasErrors())

			v = &validate.Validator{}
			assert.Equal(t, !tt.positive, v.Positive("value_mid", amount).HasErrors())
		})
	}
}

/*
TestValidator_CurrencyCode checks the currency code format.
*/
func TestValidator_CurrencyCode(t *testing.T) {
	for code, valid := range map[string]bool{"USD": true, "GBP": true, "usd": false, "EURO": false, "": false} {
		v := &validate.Validator{}
		v.CurrencyCode("currency", code)
		assert.Equal(t, !valid, v.HasErrors(), code)
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("title", "Middlemarch").
		MaxLen("title", "Middlemarch", 500).
		Range("publication_year", 1871, 1400, 2100).
		OneOf("tier", "TIER_2", "TIER_1", "TIER_2", "TIER_3").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").                                 // Fails
		NonNegative("purchase_price", decimal.NewFromInt(-1)). // Fails
		CurrencyCode("currency", "usd").                       // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
