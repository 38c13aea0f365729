package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
)

// Callback groups.
const (
	groupGame = "g" // intent for the chat's active game
	groupMenu = "m" // start a game
)

// Game intents.
const (
	actionFlip      = "flip"
	actionListen    = "listen"
	actionStartTest = "test"
	actionOption    = "opt"
	actionCard      = "card"
	actionTile      = "tile"
	actionUnpick    = "unpick"
	actionVerify    = "verify"
	actionUp        = "up"
	actionDown      = "down"
	actionCheck     = "check"
	actionHint      = "hint"
	actionNext      = "next"
	actionReset     = "reset"
	actionMenu      = "menu"
	actionNoop      = "noop"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// gameIntent is a decoded "g:<action>[:<arg>]" callback.
type gameIntent struct {
	action string
	arg    int
	hasArg bool
}

func parseGameIntent(cd callbackData) (gameIntent, bool) {
	if cd.Action != groupGame || len(cd.Params) == 0 || len(cd.Params) > 2 {
		return gameIntent{}, false
	}

	in := gameIntent{action: cd.Params[0]}
	if len(cd.Params) == 2 {
		n, err := strconv.Atoi(cd.Params[1])
		if err != nil {
			return gameIntent{}, false
		}
		in.arg, in.hasArg = n, true
	}
	return in, true
}

func buildGameCallback(action string) string {
	return callbackData{Action: groupGame, Params: []string{action}}.encode()
}

func buildGameIndexCallback(action string, i int) string {
	return callbackData{Action: groupGame, Params: []string{action, strconv.Itoa(i)}}.encode()
}

func buildMenuCallback(kind entities.GameKind) string {
	return callbackData{Action: groupMenu, Params: []string{string(kind)}}.encode()
}
