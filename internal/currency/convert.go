package currency

import (
	"fmt"
	"math/big"
	"strconv"

	"golang.org/x/text/currency"
)

var (
	pln = currency.MustParseISO("PLN")
	eur = currency.MustParseISO("EUR")
)

var currencyNames = map[currency.Unit]string{
	pln: "Polish Zloty",
	eur: "Euros",
}

// Conversion is a fixed-rate conversion between two currencies.
type Conversion struct {
	From currency.Unit
	To   currency.Unit
	Rate float64
}

// Apply formats the conversion of amount, e.g.
// "100 PLN = 23.00 EUR (rate: 1 PLN = 0.23 EUR)".
func (c Conversion) Apply(amount float64) string {
	return fmt.Sprintf("%s %s = %s %s (rate: 1 %s = %s %s)",
		formatNumber(amount), c.From, round2(amount*c.Rate), c.To,
		c.From, formatNumber(c.Rate), c.To)
}

// formatNumber prints v in its shortest decimal form.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round2 rounds v half away from zero to two fraction digits, starting from
// its shortest decimal form, and always prints two digits.
func round2(v float64) string {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	neg := r.Sign() < 0
	r.Abs(r)
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	digits := cents.String()
	for len(digits) < 3 {
		digits = "0" + digits
	}
	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if neg && cents.Sign() != 0 {
		out = "-" + out
	}
	return out
}
