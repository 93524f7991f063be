package invoice

import (
	"encoding/csv"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

// DefaultTranslationsFile is the translation table looked up next to
// the invoice PDF. A missing file simply means no renaming.
const DefaultTranslationsFile = "translations.csv"

// Translations maps product names as printed on the invoice to the
// names used in order files.
type Translations map[string]string

// LoadTranslations reads a two-column semicolon CSV of printed;wanted
// name pairs. A missing file yields an empty table.
func LoadTranslations(path string) (Translations, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Translations{}, nil
		}
		return nil, errs.Access("open translations file", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(f, decoder))
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errs.Parse("parse translations file", path, err)
	}

	translations := make(Translations, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		from := strings.TrimSpace(row[0])
		if from == "" {
			continue
		}
		translations[from] = strings.TrimSpace(row[1])
	}
	return translations, nil
}

// Apply renames record names that have a translation entry, leaving
// everything else untouched.
func (t Translations) Apply(records []Record) []Record {
	if len(t) == 0 {
		return records
	}

	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if translated, ok := t[out[i].Megnevezes]; ok {
			out[i].Megnevezes = translated
		}
	}
	return out
}
