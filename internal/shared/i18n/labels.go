// Package i18n resolves display labels for enum codes. Japanese is the
// default; English is used when the client prefers it.
package i18n

import (
	"golang.org/x/text/language"
)

var (
	supported = []language.Tag{language.Japanese, language.English}
	matcher   = language.NewMatcher(supported)
)

// Lang is the label language picked for a request.
type Lang int

const (
	Japanese Lang = iota
	English
)

// FromAcceptLanguage picks the best supported language for an
// Accept-Language header value. Empty or unparseable input selects Japanese.
func FromAcceptLanguage(header string) Lang {
	if header == "" {
		return Japanese
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Japanese
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Japanese
	}
	if supported[idx] == language.English {
		return English
	}
	return Japanese
}

var englishLabels = map[string]string{
	"new":                "New",
	"under_review":       "Under review",
	"on_hold":            "On hold",
	"rejected":           "Rejected",
	"planned":            "Planned",
	"done":               "Done",
	"low":                "Low",
	"medium":             "Medium",
	"high":               "High",
	"urgent":             "Urgent",
	"functional_area":    "Functional area",
	"customer_attribute": "Customer attribute",
	"importance":         "Importance",
	"other":              "Other",
}

// Label returns the label for code in lang. ja is the domain's own Japanese
// label and is returned unchanged for Japanese.
func Label(lang Lang, code, ja string) string {
	if lang == English {
		if en, ok := englishLabels[code]; ok {
			return en
		}
	}
	return ja
}
