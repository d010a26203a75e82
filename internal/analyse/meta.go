package analyse

import (
	"regexp"
	"strings"

	"github.com/pvollmer/origo/internal/model"
)

// funeraryRe matches formulae typical of funerary inscriptions, applied to
// lowercased text.
var funeraryRe = regexp.MustCompile(
	`faciend[a-z]+ curav[a-z]+|dis manibus|sit[a-z]+ est|bene merenti|` +
		`vixit|ex testamento|sit tibi terra levis|requiesc[a-z]t`)

// originHintRe matches textual hints of an origin statement.
var originHintRe = regexp.MustCompile(`[A-Za-z]+ensis|domo|origo`)

var maleNames = map[string]struct{}{
	"Agrippa": {}, "Aquila": {}, "Caracalla": {},
	"Nerva": {}, "Scaevola": {}, "Seneca": {},
}

// Enrich fills Meta on every record: text length, funerary and origin-hint
// flags, attested names, and the inferred gender of the main person.
func Enrich(records []model.MigrantRecord, names NameSet) {
	for i := range records {
		rec := &records[i]
		lower := strings.ToLower(rec.CleanText)

		meta := model.RecordMeta{
			TextLength: len(rec.CleanText),
			Funerary: funeraryRe.MatchString(lower) ||
				strings.Contains(rec.Keywords, "sepulcrales"),
			PossibleMigrant: originHintRe.MatchString(lower),
			Names:           ExtractNames(rec.CleanText, names),
		}
		meta.ProbableMigrant = meta.PossibleMigrant && meta.Funerary
		meta.Gender = inferGender(meta)

		rec.Meta = meta
	}
}

// inferGender weighs male against female name endings. Only funerary
// inscriptions or ones with a recognized name carry enough signal; a 2:1
// majority of one ending decides, anything closer is unclear.
func inferGender(meta model.RecordMeta) model.Gender {
	if len(meta.Names) == 0 && !meta.Funerary {
		return model.GenderUnknown
	}
	male, female := 0, 0
	for _, name := range meta.Names {
		switch {
		case isMaleName(name):
			male++
		case strings.HasSuffix(name, "a") || strings.HasSuffix(name, "oe"):
			female++
		}
	}
	switch {
	case male > 0 && female == 0:
		return model.GenderMale
	case female > 0 && male == 0:
		return model.GenderFemale
	case male == 0 && female == 0:
		return model.GenderUnknown
	case male >= 2*female:
		return model.GenderMale
	case female >= 2*male:
		return model.GenderFemale
	default:
		return model.GenderUnclear
	}
}

func isMaleName(name string) bool {
	if _, ok := maleNames[name]; ok {
		return true
	}
	for _, suffix := range []string{"us", "os", "er"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return strings.HasSuffix(name, "is") && !strings.HasSuffix(name, "ensis")
}
