package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestAmount(t *testing.T) {
	assert.True(t, dec("10.13").Equal(Amount(dec("10.125"))))
	assert.True(t, dec("10.12").Equal(Amount(dec("10.1249"))))
	assert.True(t, dec("-3.33").Equal(Amount(dec("-3.333"))))
}

func TestQuantity(t *testing.T) {
	assert.True(t, dec("1.235").Equal(Quantity(dec("1.2345"))))
	assert.True(t, dec("0.5").Equal(Quantity(dec("0.5"))))
}

func TestTotal(t *testing.T) {
	// 1.5 * 0.99 = 1.485, quantized to 1.49
	assert.True(t, dec("1.49").Equal(Total(dec("1.5"), dec("0.99"))))
	assert.True(t, dec("0").Equal(Total(dec("0"), dec("12.34"))))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 25.0, Percentage(dec("1"), dec("4")))
	assert.Equal(t, 33.3, Percentage(dec("1"), dec("3")))

	t.Run("non positive total yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Percentage(dec("5"), dec("0")))
		assert.Equal(t, 0.0, Percentage(dec("5"), dec("-1")))
	})
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 12.34, ToFloat(dec("12.34")))
}
