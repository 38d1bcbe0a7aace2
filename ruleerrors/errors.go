package ruleerrors

import "errors"

// Rule-violation sentinel errors. Shared by the hand, powerup, game and ws
// packages to avoid circular imports. Every one of these is a recoverable,
// local condition: the action that caused it is rejected and the session
// state stays exactly as it was.
var (
	ErrInvalidHandSize   = errors.New("a hand must contain exactly 5 cards")
	ErrDuplicateCard     = errors.New("duplicate card id in hand")
	ErrInsufficientDeck  = errors.New("deck cannot satisfy the requested hand")
	ErrInvalidTransition = errors.New("action not allowed in the current game state")
	ErrUnknownPowerUp    = errors.New("unknown power-up")
	ErrPowerUpNotActive  = errors.New("power-up is not active")
	ErrSelectionFull     = errors.New("five cards already selected")
	ErrCardNotAvailable  = errors.New("card is not available in the deck")
	ErrInventoryFull     = errors.New("power-up inventory is full")
)
