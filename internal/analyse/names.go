// Package analyse derives per-record metadata (funerary markers, attested
// names, gender) and aggregate statistics from resolved records.
package analyse

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// NameSet is the lookup of attested Latin personal names.
type NameSet map[string]struct{}

// commonNames are the abbreviated praenomina and frequent nomina that a
// prosopography export does not spell out.
var commonNames = []string{
	"Aulus", "Appius", "Gaius", "Gnaeus", "Decimus", "Lucius",
	"Marcus", "Manius", "Publius", "Quintus", "Sergius", "Sextus",
	"Spurius", "Titus", "Tiberius", "Aelia", "Aelius", "Aurelia",
	"Aurelius", "Claudia", "Claudius", "Flavia", "Flavius",
	"Iulia", "Iulius", "Valeria", "Valerius", "Caius", "Cnaeus",
}

// nonNames are capitalized words that look like names but never are.
var nonNames = map[string]struct{}{
	"Dis":     {},
	"Manibus": {},
}

// DefaultNameSet returns the built-in name lookup.
func DefaultNameSet() NameSet {
	set := make(NameSet, len(commonNames))
	for _, name := range commonNames {
		set[name] = struct{}{}
	}
	return set
}

// LoadNameSet extends the default set with a Prosopographia Imperii Romani
// export. The "annotated" column holds names with editorial markup which is
// stripped before indexing; abbreviations and short tokens are skipped.
func LoadNameSet(path string) (NameSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name database: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read name database header: %w", err)
	}
	annotated := -1
	for i, name := range header {
		if strings.TrimSpace(name) == "annotated" {
			annotated = i
		}
	}
	if annotated < 0 {
		return nil, fmt.Errorf("name database lacks column %q", "annotated")
	}

	set := DefaultNameSet()
	replacer := strings.NewReplacer(
		"...", "", "..", "", "(", "", ")", "", "[", "", "]", "",
		"-", "", "?", "", "vel", " ",
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read name database row: %w", err)
		}
		if annotated >= len(row) {
			continue
		}
		cleaned := replacer.Replace(stripMarkup(row[annotated]))
		for _, part := range strings.Fields(cleaned) {
			if len(part) > 3 && !strings.HasSuffix(part, ".") && isUpper(part[0]) {
				set[part] = struct{}{}
			}
		}
	}
	return set, nil
}

// stripMarkup removes angle-bracket tags from an annotated name.
func stripMarkup(s string) string {
	for {
		open := strings.IndexByte(s, '<')
		if open < 0 {
			return s
		}
		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			return s[:open]
		}
		s = s[:open] + s[open+end+1:]
	}
}

// ExtractNames collects attested names from normalized text. Candidate
// words are capitalized Latin tokens; genitive and dative endings are
// folded to the nominative before lookup. Non-Latin tokens (Greek script
// and the like) are skipped, never an error.
func ExtractNames(cleantext string, set NameSet) []string {
	var names []string
	for _, word := range strings.Fields(cleantext) {
		if !isASCII(word) {
			continue
		}
		if len(word) > 2 && isUpper(word[0]) && isLower(word[1]) {
			if _, skip := nonNames[word]; !skip {
				word = nominative(word)
			}
		}
		if _, ok := set[word]; ok {
			names = append(names, word)
		}
	}
	return names
}

// nominative folds common oblique-case endings: "-ae" to "-a", "-i" and
// "-o" to "-us".
func nominative(word string) string {
	switch {
	case strings.HasSuffix(word, "ae"):
		return word[:len(word)-1]
	case strings.HasSuffix(word, "i"), strings.HasSuffix(word, "o"):
		return word[:len(word)-1] + "us"
	}
	return word
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
