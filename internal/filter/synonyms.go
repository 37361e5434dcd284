package filter

import "strings"

// grapeSynonyms maps a lower-cased grape name to the lower-cased names it
// also matches. Every entry is mirrored, so either name finds the other.
var grapeSynonyms = map[string][]string{
	"spätburgunder": {"pinot noir"},
	"pinot noir":    {"spätburgunder"},
	"grauburgunder": {"pinot gris", "pinot grigio"},
	"pinot gris":    {"grauburgunder", "pinot grigio"},
	"pinot grigio":  {"grauburgunder", "pinot gris"},
	"weißburgunder": {"pinot blanc"},
	"pinot blanc":   {"weißburgunder"},
	"blaufränkisch": {"lemberger"},
	"lemberger":     {"blaufränkisch"},
}

// Synonyms returns the alternative names of a grape.
func Synonyms(grape string) []string {
	return grapeSynonyms[strings.ToLower(strings.TrimSpace(grape))]
}

// grapeMatches reports whether the filter term names one of the wine's
// grapes, directly or via a synonym.
func grapeMatches(term string, grapes []string) bool {
	normalized := make(map[string]bool, len(grapes))
	for _, g := range grapes {
		normalized[strings.ToLower(strings.TrimSpace(g))] = true
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if normalized[term] {
		return true
	}
	for _, syn := range grapeSynonyms[term] {
		if normalized[syn] {
			return true
		}
	}
	return false
}
