// Package toponym derives candidate Latin place adjectives from gazetteer
// name variants. Derivation is purely lexical: strip markup and editorial
// notation, split compound entries into individual names, and build "-ensis"
// forms from each word's stem.
package toponym

import (
	"strings"

	"github.com/pvollmer/origo/internal/model"
)

const (
	vowels = "aeiou"
	suffix = "ensis"

	// minimum stem length, 0-based index of the final stem character
	stemCutoff = 2
)

// Generate builds the candidate set for every gazetteer entry attested in the
// relevant period. Candidates inherit the entry's place id, title, path, and
// coordinates; the set is deterministic, deduplicated in first-seen order per
// entry.
func Generate(entries []model.GazetteerEntry) []model.ToponymCandidate {
	var candidates []model.ToponymCandidate
	for _, entry := range entries {
		if !entry.RelevantPeriod {
			continue
		}
		for _, text := range Derive(entry.NameVariants) {
			candidates = append(candidates, model.ToponymCandidate{
				Text:      text,
				PlaceID:   entry.PlaceID,
				PlaceName: entry.Title,
				Path:      entry.Path,
				Coords:    entry.Coords,
			})
		}
	}
	return candidates
}

// Derive turns raw name-variant strings into adjective candidates,
// deduplicated in first-seen order.
func Derive(variants []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, variant := range variants {
		for _, name := range PlaceNames(variant) {
			for _, word := range strings.Fields(name) {
				for _, cand := range deriveWord(word) {
					if !seen[cand] {
						seen[cand] = true
						out = append(out, cand)
					}
				}
			}
		}
	}
	return out
}

// deriveWord scans a word from the end for its last vowel group. The first
// vowel at index i yields word[:i]+"ensis" when the stem is long enough;
// each immediately preceding vowel shortens the stem by one and yields a
// further form. Scanning stops at the first consonant.
func deriveWord(word string) []string {
	var forms []string
	for i := len(word) - 1; i >= 0; i-- {
		if !isVowel(word[i]) {
			continue
		}
		if i <= stemCutoff {
			break
		}
		forms = append(forms, word[:i]+suffix)
		for i-1 > stemCutoff && isVowel(word[i-1]) {
			i--
			forms = append(forms, word[:i]+suffix)
		}
		break
	}
	return forms
}

func isVowel(b byte) bool {
	return strings.IndexByte(vowels, b) >= 0
}

// PlaceNames resolves one raw transliterated name string into individual
// place names: markup tags and question marks are removed, parenthetical
// notation resolved, and the result split on comma and slash separators.
func PlaceNames(raw string) []string {
	elem := stripTags(raw)
	elem = strings.ReplaceAll(elem, "?", "")
	elem = resolveParentheses(elem)

	var names []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(strings.ReplaceAll(s, "  ", " "))
		if s != "" && !seen[s] {
			seen[s] = true
			names = append(names, s)
		}
	}
	for _, part := range strings.Split(elem, ",") {
		if strings.Contains(part, "/") {
			for _, sub := range strings.Split(part, "/") {
				add(sub)
			}
		} else {
			add(part)
		}
	}
	return names
}

// stripTags removes angle-bracket tags. An unclosed tag drops the remainder.
func stripTags(elem string) string {
	for {
		open := strings.IndexByte(elem, '<')
		if open < 0 {
			return elem
		}
		end := strings.IndexByte(elem[open:], '>')
		if end < 0 {
			return elem[:open]
		}
		elem = elem[:open] + elem[open+end+1:]
	}
}

// resolveParentheses handles the gazetteer's editorial notation. An omission
// marker "(...)" is deleted, a parenthetical preceded by a space is an
// optional whole word and is deleted, and anything else is a spelling
// variant: the affected word is expanded into a reading without the
// parenthesized text and a reading with it.
func resolveParentheses(elem string) string {
	variants := false
	search := 0
	for {
		open := strings.Index(elem[search:], "(")
		if open < 0 {
			break
		}
		open += search
		end := strings.Index(elem[open:], ")")
		if end < 0 {
			break
		}
		group := elem[open : open+end+1]
		switch {
		case group == "(...)":
			elem = elem[:open] + elem[open+len(group):]
			search = open
		case open > 0 && elem[open-1] == ' ':
			elem = elem[:open] + elem[open+len(group):]
			search = open
		default:
			variants = true
			search = open + len(group)
		}
	}
	elem = strings.ReplaceAll(elem, "  ", " ")
	elem = strings.ReplaceAll(elem, " ,", ",")

	if !variants {
		return elem
	}
	var result []string
	for _, word := range strings.Fields(elem) {
		open := strings.Index(word, "(")
		if open < 0 {
			result = append(result, word)
			continue
		}
		end := strings.Index(word[open:], ")")
		if end < 0 {
			result = append(result, strings.ReplaceAll(word, "(", ""))
			continue
		}
		group := word[open : open+end+1]
		without := strings.Replace(word, group, "", 1)
		with := strings.ReplaceAll(strings.ReplaceAll(word, "(", ""), ")", "")
		result = append(result, without, with)
	}
	return strings.Join(result, " ")
}
