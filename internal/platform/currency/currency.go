// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package currency normalises money amounts into the base currency before scoring.

Dealers quote in their own currency; the discount calculation needs purchase
price and mid valuation in the same unit. Rates are static process configuration
(BASE_CURRENCY, CURRENCY_RATES) and are applied with decimal arithmetic.
*/
package currency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Converter maps amounts in a known currency into the base currency.
// It is immutable after construction and safe for concurrent use.
type Converter struct {
	base  string
	rates map[string]decimal.Decimal
}

// UnknownCurrencyError is returned for codes that have no configured rate.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("currency: no rate configured for %q", e.Code)
}

/*
NewConverter builds a Converter from the base code and a rate table.

Each rate converts one unit of the keyed currency into the base currency.
The base currency always converts at 1 and need not be listed.

Returns:
  - *Converter: The converter
  - error: If a code is malformed or a rate is not positive
*/
func NewConverter(base string, rates map[string]float64) (*Converter, error) {
	base = normalizeCode(base)
	if len(base) != 3 {
		return nil, fmt.Errorf("currency: invalid base currency %q", base)
	}

	converter := &Converter{
		base:  base,
		rates: map[string]decimal.Decimal{base: decimal.NewFromInt(1)},
	}

	for code, rate := range rates {
		code = normalizeCode(code)
		if len(code) != 3 {
			return nil, fmt.Errorf("currency: invalid currency code %q", code)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("currency: rate for %s must be positive, got %v", code, rate)
		}
		if code == base {
			continue
		}
		converter.rates[code] = decimal.NewFromFloat(rate)
	}

	return converter, nil
}

// Base returns the base currency code.
func (c *Converter) Base() string {
	return c.base
}

// Supports reports whether code has a configured rate.
func (c *Converter) Supports(code string) bool {
	_, ok := c.rates[normalizeCode(code)]
	return ok
}

// Codes lists every supported code in alphabetical order.
func (c *Converter) Codes() []string {
	codes := make([]string, 0, len(c.rates))
	for code := range c.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ToBase converts amount from code into the base currency, rounded to cents.
func (c *Converter) ToBase(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	code = normalizeCode(code)
	if code == "" {
		code = c.base
	}

	rate, ok := c.rates[code]
	if !ok {
		return decimal.Zero, &UnknownCurrencyError{Code: code}
	}

	if code == c.base {
		return amount, nil
	}
	return amount.Mul(rate).Round(2), nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
