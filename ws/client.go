package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/wsutil"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Client is a middleman between the websocket connection and its session.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
	Game *game.Game
}

// ReadPump pumps messages from the websocket connection to the session.
// It runs in its own goroutine per connection.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read", "tag", "ws", "session", c.Game.ID, "err", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// WritePump pumps messages from the send channel to the websocket connection.
// It runs in its own goroutine per connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(data []byte) {
	var envelope InboundEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		c.sendError("Invalid message format.")
		return
	}

	switch envelope.Type {
	case "start_game":
		c.handleStartGame(envelope.Raw)
	case "select_card":
		c.handleSelectCard(envelope.Raw, game.ActionSelectCard)
	case "deselect_card":
		c.handleSelectCard(envelope.Raw, game.ActionDeselectCard)
	case "submit_hand":
		c.post(game.Action{Type: game.ActionSubmitHand})
	case "use_power_up":
		c.handleUsePowerUp(envelope.Raw)
	case "open_loot":
		c.post(game.Action{Type: game.ActionOpenLoot})
	case "claim_loot":
		c.handleClaimLoot(envelope.Raw)
	case "pause":
		c.post(game.Action{Type: game.ActionPause})
	case "resume":
		c.post(game.Action{Type: game.ActionResume})
	case "continue":
		c.post(game.Action{Type: game.ActionContinue})
	case "reset":
		c.post(game.Action{Type: game.ActionReset})
	default:
		c.sendError("Unknown message type: " + envelope.Type)
	}
}

func (c *Client) handleStartGame(raw json.RawMessage) {
	var msg StartGameMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid start_game message.")
		return
	}
	if _, err := game.ParseMode(msg.Mode); err != nil {
		c.sendError("Unknown game mode: " + msg.Mode)
		return
	}
	c.post(game.Action{Type: game.ActionStart, Mode: msg.Mode})
}

func (c *Client) handleSelectCard(raw json.RawMessage, action game.ActionType) {
	var msg SelectCardMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid select_card message.")
		return
	}
	if msg.CardID == "" {
		c.sendError("Missing cardId.")
		return
	}
	c.post(game.Action{Type: action, CardID: msg.CardID})
}

func (c *Client) handleUsePowerUp(raw json.RawMessage) {
	var msg UsePowerUpMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid use_power_up message.")
		return
	}
	if msg.PowerUpID == "" {
		c.sendError("Missing powerUpId.")
		return
	}
	c.post(game.Action{Type: game.ActionUsePowerUp, PowerUpID: msg.PowerUpID})
}

func (c *Client) handleClaimLoot(raw json.RawMessage) {
	var msg ClaimLootMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid claim_loot message.")
		return
	}
	c.post(game.Action{Type: game.ActionClaimLoot, DiscardID: msg.DiscardID})
}

// post forwards an action to the session loop. The Done guard keeps a read
// from blocking forever when the session has already shut down.
func (c *Client) post(a game.Action) {
	select {
	case c.Game.Actions <- a:
	case <-c.Game.Done:
	}
}

func (c *Client) sendError(message string) {
	wsutil.SafeSendJSON(c.Send, ErrorMsg{Type: "error", Message: message})
}
