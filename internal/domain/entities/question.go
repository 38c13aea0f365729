package entities

// QuizQuestion is a trivia question with a fixed option set.
type QuizQuestion struct {
	Question       string   `json:"question"`
	ArabicQuestion string   `json:"arabic_question"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
}

// Scenario is a sentence the learner completes with the right time unit.
type Scenario struct {
	ID         int      `json:"id"`
	Text       string   `json:"text"`
	ArabicText string   `json:"arabic_text"`
	Options    []string `json:"options"`
	Correct    string   `json:"correct"`
	Icon       string   `json:"icon"`
}

// ConversionQuest asks how many TargetUnit fit into Prompt, e.g. "24 Hours" -> "Day".
type ConversionQuest struct {
	ID            int    `json:"id"`
	Prefix        string `json:"prefix"`         // flavour verb shown before the prompt ("Add", "Mix")
	Prompt        string `json:"prompt"`         // value with unit, e.g. "24 Hours"
	TargetUnit    string `json:"target_unit"`    // unit asked for, e.g. "Day"
	ArabicHint    string `json:"arabic_hint"`    // hint shown on request
	CorrectAnswer string `json:"correct_answer"` // expected free-text answer, e.g. "1"
}
