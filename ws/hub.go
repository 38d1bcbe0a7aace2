package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/wsutil"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development; restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SessionManager defines what the Hub needs from the session manager.
type SessionManager interface {
	Create(send chan []byte, notify game.Notifier) *game.Game
	Close(g *game.Game)
}

// Hub maintains the set of active clients and owns session lifecycle.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Sessions   SessionManager
	Config     *config.Config
}

// NewHub creates a new Hub.
func NewHub(cfg *config.Config, sm SessionManager) *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Sessions:   sm,
		Config:     cfg,
	}
}

// Run starts the hub's main loop. Should be run as a goroutine.
// When ctx is cancelled (e.g. on server shutdown), Run returns and no longer accepts new registrations.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("shutdown signal received, stopping", "tag", "hub")
			return
		case client := <-h.Register:
			h.Clients[client] = true
			slog.Info("client connected", "tag", "hub", "session", client.Game.ID, "total", len(h.Clients))

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				h.Sessions.Close(client.Game)
				slog.Info("client disconnected", "tag", "hub", "session", client.Game.ID, "total", len(h.Clients))
			}
		}
	}
}

// ServeWS handles WebSocket upgrade requests and creates a new Client with
// its own game session.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade", "tag", "hub", "err", err)
		return
	}

	send := make(chan []byte, 256)
	client := &Client{
		Hub:  h,
		Conn: conn,
		Send: send,
		Game: h.Sessions.Create(send, cueNotifier{send: send}),
	}

	h.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

// cueNotifier forwards gameplay hooks to the client as audio cue events.
type cueNotifier struct {
	send chan []byte
}

func (n cueNotifier) HandScored(category string) {
	wsutil.SafeSendJSON(n.send, AudioCueMsg{Type: "audio_cue", Cue: "hand_scored", Category: category})
}

func (n cueNotifier) CardPicked() {
	wsutil.SafeSendJSON(n.send, AudioCueMsg{Type: "audio_cue", Cue: "card_picked"})
}
