package money

import "github.com/shopspring/decimal"

// All monetary totals are quantized half-up to 2 decimal places; quantities
// keep 3. Floats appear only at the serialization boundary.

func Amount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func Quantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(3)
}

// Total computes quantity * unit price quantized to 2 decimal places.
func Total(qty, unitPrice decimal.Decimal) decimal.Decimal {
	return Amount(qty.Mul(unitPrice))
}

// Percentage returns part/total*100 rounded to 1 decimal place, or 0.0 when
// total is not positive.
func Percentage(part, total decimal.Decimal) float64 {
	if total.Sign() <= 0 {
		return 0.0
	}
	p, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return p
}

func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
