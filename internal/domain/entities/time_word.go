// Package entities contains domain entities used across the application.
package entities

// TimeWord is one time-unit vocabulary entry shown to the learner in English
// and Arabic. English is the identity of the entry and must be unique.
type TimeWord struct {
	English         string `json:"english"`         // English singular, e.g. "Hour"
	Arabic          string `json:"arabic"`          // Arabic singular
	Transliteration string `json:"transliteration"` // Latin transliteration of the Arabic term
	PluralEnglish   string `json:"plural_english"`  // English plural
	PluralArabic    string `json:"plural_arabic"`   // Arabic plural
	Fact            string `json:"fact"`            // short conversion fact, e.g. "60 Minutes = 1 Hour"
	Icon            string `json:"icon"`            // emoji used as illustration
}
