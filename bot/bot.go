// Package bot is a headless autoplayer. It consumes the same state
// messages a client receives and drives the session through its action
// channel, which makes it useful for exercising the full engine in tests
// without a websocket in the way.
package bot

import (
	"encoding/json"
	"log/slog"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
)

// cardView mirrors the card fields of the game_state snapshot.
type cardView struct {
	ID    string `json:"id"`
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Value int    `json:"value"`
}

// stateView is the subset of the game_state snapshot the bot acts on.
type stateView struct {
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	VisibleCards  []cardView `json:"visibleCards"`
	SelectedCards []cardView `json:"selectedCards"`
	PendingLoot   []string   `json:"pendingLoot"`
	PendingReward *struct {
		PowerUpID string `json:"powerUpId"`
	} `json:"pendingReward"`
}

// Run plays a session greedily until game over or until recv closes. It
// only uses information from the messages themselves, the way a real
// client would. Start the game before calling Run (or post the start
// action yourself); Run never starts or resets a session.
func Run(recv <-chan []byte, g *game.Game) {
	for data := range recv {
		var envelope struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			continue
		}

		switch envelope.Type {
		case "game_over":
			slog.Debug("bot finished", "tag", "bot", "session", g.ID)
			return
		case "game_state":
			var state stateView
			if err := json.Unmarshal(data, &state); err != nil {
				continue
			}
			act(&state, g)
		}
	}
}

// act posts at most one action per snapshot, so every decision sees the
// state its predecessor produced.
func act(state *stateView, g *game.Game) {
	if state.Status != "playing" && state.Status != "bonus_round" {
		return
	}

	// Bank any loot first so the economy gets exercised during SSC runs.
	if state.PendingReward != nil {
		post(g, game.Action{Type: game.ActionClaimLoot})
		return
	}
	if len(state.PendingLoot) > 0 && state.Status == "playing" {
		post(g, game.Action{Type: game.ActionOpenLoot})
		return
	}

	if len(state.SelectedCards) >= 5 {
		return // auto-submit is already armed
	}
	if pick := choose(state.VisibleCards, state.SelectedCards); pick != "" {
		post(g, game.Action{Type: game.ActionSelectCard, CardID: pick})
	}
}

// choose picks the visible card that best extends the selection: a card
// pairing an already selected rank wins, then the selection's majority
// suit, then the highest value on offer.
func choose(visible, selected []cardView) string {
	if len(visible) == 0 {
		return ""
	}

	rankCounts := make(map[string]int, len(selected))
	suitCounts := make(map[string]int, len(selected))
	for _, c := range selected {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	best := visible[0]
	bestScore := -1
	for _, c := range visible {
		score := c.Value
		if n := rankCounts[c.Rank]; n > 0 {
			score += 1000 * n
		} else if n := suitCounts[c.Suit]; n >= 2 {
			score += 100 * n
		}
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best.ID
}

func post(g *game.Game, a game.Action) {
	select {
	case g.Actions <- a:
	case <-g.Done:
	}
}
