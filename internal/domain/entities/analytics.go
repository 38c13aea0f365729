package entities

import "time"

// AnalyticsEvent is one interaction event attributed to a chat.
type AnalyticsEvent struct {
	Name       string
	ChatID     int64
	Game       GameKind
	SessionID  string
	Attrs      map[string]any
	OccurredAt time.Time
}
