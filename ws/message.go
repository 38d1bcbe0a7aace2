package ws

import "encoding/json"

// InboundEnvelope is the generic envelope for all client-to-server messages.
// The Type field is used for routing; Raw holds the full JSON payload.
type InboundEnvelope struct {
	Type string          `json:"type"`
	Raw  json.RawMessage `json:"-"`
}

// UnmarshalJSON implements custom unmarshaling to capture the raw payload.
func (e *InboundEnvelope) UnmarshalJSON(data []byte) error {
	// Unmarshal just the type field
	type typeOnly struct {
		Type string `json:"type"`
	}
	var t typeOnly
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	e.Type = t.Type
	e.Raw = json.RawMessage(data)
	return nil
}

// --- Client-to-Server message payloads ---

// StartGameMsg is sent by the client to start a game in the given mode.
type StartGameMsg struct {
	Type string `json:"type"`
	Mode string `json:"mode"` // "classic", "blitz" or "ssc"
}

// SelectCardMsg is sent by the client to pick a card into the hand slots.
// The same payload shape deselects when type is "deselect_card".
type SelectCardMsg struct {
	Type   string `json:"type"`
	CardID string `json:"cardId"`
}

// UsePowerUpMsg is sent by the client to activate a power-up.
type UsePowerUpMsg struct {
	Type      string `json:"type"`
	PowerUpID string `json:"powerUpId"`
}

// ClaimLootMsg is sent by the client to claim the opened loot reward.
// DiscardID names the power-up to drop when the inventory is at capacity.
type ClaimLootMsg struct {
	Type      string `json:"type"`
	DiscardID string `json:"discardId,omitempty"`
}

// --- Server-to-Client messages ---
// Gameplay messages (game_state, hand_scored, level_complete, bonus_round,
// game_over, powerup_used, loot_reward) are built by the game package; the
// gateway only adds transport-level messages.

// ErrorMsg is sent when a client intent is invalid.
type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// AudioCueMsg asks the client to play a sound for a gameplay event.
type AudioCueMsg struct {
	Type     string `json:"type"`
	Cue      string `json:"cue"`                // "hand_scored" or "card_picked"
	Category string `json:"category,omitempty"` // hand category for "hand_scored"
}
