package speech

import (
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
)

// bridgeFrame is the JSON frame the screen-reader daemon accepts.
type bridgeFrame struct {
	Text      string `json:"text"`
	Interrupt bool   `json:"interrupt"`
}

// Bridge speaks through a local screen-reader daemon over a WebSocket.
// Best-effort: a failed write is logged and the announcement dropped.
type Bridge struct {
	conn *websocket.Conn
}

// DialBridge connects to the daemon at url (ws://...).
func DialBridge(url string) (*Bridge, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing speech bridge %s: %w", url, err)
	}
	return &Bridge{conn: conn}, nil
}

// Speak sends one announcement frame.
func (b *Bridge) Speak(text string, interrupt bool) {
	if err := b.conn.WriteJSON(bridgeFrame{Text: text, Interrupt: interrupt}); err != nil {
		slog.Warn("speech bridge write failed", "err", err)
	}
}

// Close shuts the bridge connection down.
func (b *Bridge) Close() error {
	return b.conn.Close()
}
