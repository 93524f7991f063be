package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeText flattens a raw cell into a comparable string.
func NormalizeText(value string) string {
	return strings.TrimSpace(value)
}

// ParseNumber reads a numeric cell in the formats order exports and
// invoices use: regular or non-breaking spaces as thousands separators
// and either comma or dot decimals. The second return is false when
// the cell holds no parseable number.
func ParseNumber(value string) (decimal.Decimal, bool) {
	text := strings.ReplaceAll(value, " ", " ")
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", ".")
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// TrimCodeSuffix cuts an order code at the first underscore occurring
// at or after the given character offset. Codes embed variant suffixes
// past that point which the invoices do not carry. The offset counts
// characters, not bytes, so accented codes trim at the same position.
func TrimCodeSuffix(value string, offset int) string {
	text := NormalizeText(value)
	if text == "" {
		return ""
	}
	if offset < 0 {
		offset = 0
	}

	runes := []rune(text)
	for i := offset; i < len(runes); i++ {
		if runes[i] == '_' {
			return string(runes[:i])
		}
	}
	return text
}

// FormatCurrency renders a decimal the way the invoices print money:
// two decimals, decimal comma, space-grouped thousands.
func FormatCurrency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPrices rewrites the price fields of each record in the printed
// currency format. Values that do not parse stay as extracted.
func FormatPrices(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if d, ok := ParseNumber(out[i].EgysegAr); ok {
			out[i].EgysegAr = FormatCurrency(d)
		}
		if d, ok := ParseNumber(out[i].NettoAr); ok {
			out[i].NettoAr = FormatCurrency(d)
		}
	}
	return out
}
