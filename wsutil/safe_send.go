package wsutil

import (
	"encoding/json"
	"log/slog"
)

// SafeSend sends data to a channel without panicking if the channel is closed.
// If the channel is full or closed, the send is skipped. Panics are recovered
// and logged for debugging.
func SafeSend(ch chan []byte, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("SafeSend recovered panic", "tag", "wsutil", "panic", r)
		}
	}()
	select {
	case ch <- data:
	default:
	}
}

// SafeSendJSON marshals v and sends it with SafeSend. Marshal failures are
// logged and dropped; outbound messages are best-effort.
func SafeSendJSON(ch chan []byte, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshaling outbound message", "tag", "wsutil", "err", err)
		return
	}
	SafeSend(ch, data)
}
