// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// InvestmentDetail explains the investment grade.
type InvestmentDetail struct {
	Points          int       `json:"points"`
	DiscountPercent *float64  `json:"discount_percent"`
	Tier            *string   `json:"tier"`
	PurchasePrice   float64   `json:"purchase_price"`
	ValueMid        *float64  `json:"value_mid"`
	Warnings        []Warning `json:"warnings,omitempty"`
}

// calculateInvestment scores the purchase price against fair-market value.
//
// The discount is floored at zero and rounded to one decimal place before the
// band lookup, so the reported percentage and the selected band always agree.
func calculateInvestment(cfg Config, price decimal.Decimal, valueMid *decimal.Decimal) InvestmentDetail {
	detail := InvestmentDetail{PurchasePrice: price.InexactFloat64()}

	if valueMid == nil || !valueMid.IsPositive() {
		detail.Warnings = []Warning{WarningMissingValuation}
		return detail
	}

	value := valueMid.InexactFloat64()
	detail.ValueMid = &value

	discount := valueMid.Sub(price).Div(*valueMid).Mul(hundred)
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	discount = discount.Round(1)

	percent := discount.InexactFloat64()
	detail.DiscountPercent = &percent

	band := discountBand(cfg.DiscountBands, discount)
	detail.Tier = &band.Label
	detail.Points = band.Points

	return detail
}

// discountBand returns the highest band whose lower bound the discount reaches.
// Bands are validated to start at 0 and ascend, so the result is never empty.
func discountBand(bands []DiscountBand, discount decimal.Decimal) DiscountBand {
	selected := bands[0]
	for _, band := range bands[1:] {
		if discount.LessThan(decimal.NewFromInt(int64(band.Min))) {
			break
		}
		selected = band
	}
	return selected
}
