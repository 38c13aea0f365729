// messages.go contains message templates and feedback texts for Telegram.

package telegram

import (
	"github.com/aliskhannn/time-explorer-bot/internal/feedback"
)

const (
	msgWelcome = "⏳ <b>Time Explorer</b> ⏳\n" +
		"Learn the words for time in English and Arabic!\n" +
		"تعلم كلمات الوقت بالإنجليزية والعربية!\n\n" +
		"Pick a game below or send /help."

	msgHelp = "<b>Games</b>\n" +
		"/learn - flashcards: flip, listen, then test yourself\n" +
		"/match - match English and Arabic cards\n" +
		"/jumble - spell the word from scrambled letters\n" +
		"/order - put the units from smallest to largest\n" +
		"/pilot - finish the sentence with the right unit\n" +
		"/wizard - convert units like a time alchemist\n" +
		"/quiz - trivia about time\n\n" +
		"<b>Tools</b>\n" +
		"/convert 2 weeks days - convert between units\n" +
		"/words - all words with plurals and facts\n" +
		"/reset - start the current game again\n" +
		"/stop - end the current game"

	msgInternalError   = "Something went wrong. Please try again later.\nحدث خطأ ما، حاول لاحقاً."
	msgUnknownCommand  = "Unknown command. Send /help to see what I can do."
	msgNoActiveGame    = "No game is running. Pick one with /start.\nلا توجد لعبة حالياً."
	msgGameExpired     = "This game has ended. Start a new one!"
	msgGameStopped     = "Game over. Pick another one! 👇\nانتهت اللعبة."
	msgUseButtons      = "Use the buttons under the game 👇"
	msgConvertUsage    = "Usage: /convert 2 weeks days\nUnits: hours, days, weeks, months, years."
	msgConvertBadValue = "The amount must be a number, e.g. /convert 1.5 days hours"
	msgConvertBadUnit  = "Unknown unit %q. Use hours, days, weeks, months or years."
	msgConvertMissing  = "I can't convert %s to %s yet. Try days → hours or years → months!"
	msgListenFirst     = "Flip the card and listen first 👂"
	msgAudioFailed     = "🔇 Audio is not available right now, let's continue!"

	msgDiscoveryIntro = "Tap the card to see the translation, then hear it!"
	msgDiscoveryTest  = "Which one is the Arabic word?\nما هي الكلمة العربية؟"
	msgMatchingIntro  = "Find the pairs! طابق الكلمات"
	msgJumbleIntro    = "Tap the letters to spell the English word.\nاضغط على الحروف لترتيب الكلمة."
	msgSorterIntro    = "Order from smallest (top) to largest (bottom).\nرتب الكلمات من الأصغر إلى الأكبر."
	msgPilotIntro     = "Pick the time unit that completes the sentence."
	msgWizardIntro    = "Type the number that completes the spell 🪄"
	msgQuizIntro      = "Answer the question!"

	msgDiscoveryDone = "You mastered all words! لقد أتقنت كل الكلمات!"
	msgMatchingDone  = "All pairs found! أحسنت!"
	msgJumbleDone    = "GALAXY MASTER! 🏆 لقد أتقنت جميع الكلمات!"
	msgSorterDone    = "Perfect order! 🪜 ترتيب ممتاز!"
	msgPilotDone     = "You are a pro time pilot! أنت طيار وقت محترف!"
	msgWizardDone    = "You brewed the Elixir of Time! لقد صنعت إكسير الوقت بنجاح!"
	msgQuizDone      = "Quiz complete! انتهى الاختبار!"
)

// Button labels.
const (
	btnFlip      = "🔄 Flip"
	btnListen    = "🔈 Hear English"
	btnHeard     = "🔊 Heard It!"
	btnStartTest = "✅ Test me"
	btnCheck     = "Check My English ✔️"
	btnVerify    = "✨ Check"
	btnHint      = "📜 Magic Hint"
	btnNext      = "Next ➡️"
	btnReset     = "🔁 Play again"
	btnMenu      = "🏠 Menu"
	btnUp        = "▲"
	btnDown      = "▼"
)

var praises = []string{
	"Excellent! ممتاز!",
	"Great job! عمل رائع!",
	"You're a star! أنت نجم!",
	"Perfect! مثالي!",
	"Correct! إجابة صحيحة!",
}

var tips = []string{
	"Not quite. Try again! حاول مرة أخرى!",
	"Almost there! اقتربت من الإجابة!",
	"Think about it again. فكر مرة أخرى.",
	"Don't give up! لا تستسلم!",
}

// feedbackText returns the bilingual text for a signal. seed picks among
// the praise and tip variants so repeated answers do not read the same.
func feedbackText(sig feedback.Signal, seed int) string {
	if seed < 0 {
		seed = -seed
	}

	switch sig.Message {
	case feedback.MsgCorrect:
		return "✅ " + praises[seed%len(praises)]
	case feedback.MsgTryAgain:
		return "❌ " + tips[seed%len(tips)]
	case feedback.MsgMatch:
		return "✨ Match! " + praises[seed%len(praises)]
	case feedback.MsgMismatch:
		return "🙈 Not a pair. ليست متطابقة"
	case feedback.MsgSorted:
		return "🎉 " + msgSorterDone
	case feedback.MsgNotSorted:
		return "🤔 Not yet! " + tips[seed%len(tips)]
	default:
		return ""
	}
}
