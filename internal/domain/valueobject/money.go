package valueobject

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Цены пакетов хранятся в долларах с точностью до цента.
var usPrinter = message.NewPrinter(language.English)

// RoundToCents округляет сумму до двух знаков после запятой.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatUSD форматирует сумму как "$1,750.00".
func FormatUSD(amount float64) string {
	return usPrinter.Sprintf("$%.2f", amount)
}

// FormatCount форматирует целое с разделителями тысяч: 12000 -> "12,000".
func FormatCount(n int) string {
	return usPrinter.Sprintf("%d", n)
}
