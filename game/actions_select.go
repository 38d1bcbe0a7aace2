package game

import (
	"time"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/hand"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ruleerrors"
)

// handleSelectCard moves a visible deck card into the selection. Selecting
// the fifth card arms the deferred auto-submission.
func (g *Game) handleSelectCard(cardID string) {
	if g.Status != StatusPlaying && g.Status != StatusBonusRound {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	if !g.picks.accept(cardID, time.Now()) {
		return // double-fired pointer event, drop silently
	}
	if len(g.Selected) >= hand.Size {
		g.sendError(ruleerrors.ErrSelectionFull)
		return
	}
	idx := deck.IndexOf(g.Deck, cardID)
	if idx < 0 || idx >= g.visibleCount() {
		g.sendError(ruleerrors.ErrCardNotAvailable)
		return
	}

	card := g.Deck[idx]
	g.Deck = append(g.Deck[:idx], g.Deck[idx+1:]...)
	g.Selected = append(g.Selected, card)
	g.notifyCardPicked()

	if len(g.Selected) == hand.Size {
		g.scheduleAutoSubmit()
	}
	g.broadcastState()
}

// handleDeselectCard returns a selected card to the front of the deck and
// disarms any pending auto-submission.
func (g *Game) handleDeselectCard(cardID string) {
	if g.Status != StatusPlaying && g.Status != StatusBonusRound {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	idx := deck.IndexOf(g.Selected, cardID)
	if idx < 0 {
		g.sendError(ruleerrors.ErrCardNotAvailable)
		return
	}

	g.cancelAutoSubmit()
	card := g.Selected[idx]
	g.Selected = append(g.Selected[:idx], g.Selected[idx+1:]...)
	g.Deck = append([]deck.Card{card}, g.Deck...)
	g.broadcastState()
}
