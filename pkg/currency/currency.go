package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ArabicSaudi is the display locale of the calculator.
var ArabicSaudi = language.MustParse("ar-SA")

// FormatSAR renders v as whole riyals with the locale's digits and
// grouping, for example "1,500,000" in English.
func FormatSAR(tag language.Tag, v float64) string {
	whole := decimal.NewFromFloat(v).Round(0).IntPart()
	return message.NewPrinter(tag).Sprint(number.Decimal(whole, number.MaxFractionDigits(0)))
}

// FormatSARCode appends the ISO code: "1,500,000 SAR".
func FormatSARCode(tag language.Tag, v float64) string {
	return FormatSAR(tag, v) + " " + currency.SAR.String()
}
