package entities

// GameKind identifies a mini-game.
type GameKind string

const (
	GameDiscovery GameKind = "discovery" // flashcards with listening and a check
	GameMatching  GameKind = "matching"  // English/Arabic memory matching
	GameJumble    GameKind = "jumble"    // letter-tile spelling
	GameSorter    GameKind = "sorter"    // order units from smallest to largest
	GamePilot     GameKind = "pilot"     // scenario completion
	GameWizard    GameKind = "wizard"    // numeric conversion drill
	GameQuiz      GameKind = "quiz"      // trivia questions
)

// AllGames lists every mini-game in menu order.
var AllGames = []GameKind{
	GameDiscovery,
	GameMatching,
	GameJumble,
	GameSorter,
	GamePilot,
	GameWizard,
	GameQuiz,
}

// ParseGameKind returns the kind named s.
func ParseGameKind(s string) (GameKind, bool) {
	for _, k := range AllGames {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Content is the full static dataset the games are built from.
type Content struct {
	Words     []TimeWord        `json:"words"`
	Questions []QuizQuestion    `json:"questions"`
	Scenarios []Scenario        `json:"scenarios"`
	Quests    []ConversionQuest `json:"quests"`
}
