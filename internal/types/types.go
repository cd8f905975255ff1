package types

import "github.com/dashrun/rivals-backend/internal/session"

type ClientMessage struct {
	Type  string `json:"type"`
	Score int    `json:"score,omitempty"`
}

type ServerMessage struct {
	Type    string        `json:"type"` // "BoardUpdate" | "Error"
	Version int           `json:"version,omitempty"`
	View    *session.View `json:"view,omitempty"`
	Error   string        `json:"error,omitempty"`
}
