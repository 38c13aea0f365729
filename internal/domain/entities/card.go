package entities

// Lang tags the language a matching card is written in.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// Card is one face-down card in the matching game. Two cards match when
// they share MatchKey and differ in Lang.
type Card struct {
	Content  string
	MatchKey string
	Lang     Lang
}

// Matches reports whether c and other form a valid pair.
func (c Card) Matches(other Card) bool {
	return c.MatchKey == other.MatchKey && c.Lang != other.Lang
}

// NewCardPair builds the English and Arabic cards of a word.
func NewCardPair(w TimeWord) (Card, Card) {
	return Card{Content: w.English, MatchKey: w.English, Lang: LangEnglish},
		Card{Content: w.Arabic, MatchKey: w.English, Lang: LangArabic}
}
