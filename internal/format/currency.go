// Package format renders amounts, dates and the session clock for a locale.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var symbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
	"BRL": "R$",
}

// Currency formats value with two fraction digits using the locale's
// separators. English locales put the symbol first ("-$306.50"); the rest
// append it ("306,50 €").
func Currency(value decimal.Decimal, locale, code string) string {
	tag := Tag(locale)
	rounded := value.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	num := localizedFixed2(message.NewPrinter(tag), rounded.Abs())

	sym := Symbol(code)
	if base, _ := tag.Base(); base.String() == "en" {
		return sign + sym + num
	}
	return sign + num + " " + sym
}

// localizedFixed2 renders a non-negative amount with the printer's grouping
// and decimal separator, exactly to two places. The integer part is formatted
// as an int64, so no digits are lost to float conversion.
func localizedFixed2(p *message.Printer, abs decimal.Decimal) string {
	fixed := abs.StringFixed(2)
	frac := fixed[len(fixed)-2:]

	whole := abs.Truncate(0).BigInt()
	if !whole.IsInt64() {
		return fixed
	}
	return p.Sprint(number.Decimal(whole.Int64())) + decimalSeparator(p) + frac
}

// decimalSeparator reads the separator the printer puts in 1.5.
func decimalSeparator(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5, number.Scale(1)))
	sep := strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
	if utf8.RuneCountInString(sep) != 1 {
		return "."
	}
	return sep
}

// Symbol returns the display symbol for an ISO 4217 code, or the code itself.
func Symbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// Tag parses a BCP 47 locale, falling back to American English.
func Tag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
