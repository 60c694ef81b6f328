package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var experienceRegex = regexp.MustCompile(`(\d+(\.\d+)?)\+?\s*(year|yr)`)

// locationAliases is an ordered list, not a map: the first alias contained
// in the input wins, so iteration order is part of the contract.
var locationAliases = []struct {
	alias     string
	canonical string
}{
	{"bangalore", "Bengaluru"},
	{"blr", "Bengaluru"},
	{"delhi", "Delhi"},
	{"hyd", "Hyderabad"},
	{"mumbai", "Mumbai"},
	{"pune", "Pune"},
	{"remote", "Remote"},
}

var titleCaser = cases.Title(language.English)

// NormalizeExperience turns a free-text experience phrase into years.
// "fresher" always means 0. Best effort: a number with no year/yr unit
// never matches and silently resolves to 0.
func NormalizeExperience(raw string) float64 {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(raw, "fresher") {
		return 0
	}
	match := experienceRegex.FindStringSubmatch(raw)
	if match == nil {
		return 0
	}
	years, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return years
}

// NormalizeLocation maps noisy location text onto a canonical city name.
// Unknown locations come back title-cased.
func NormalizeLocation(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, la := range locationAliases {
		if strings.Contains(raw, la.alias) {
			return la.canonical
		}
	}
	return titleCaser.String(raw)
}
