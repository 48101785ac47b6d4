package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const (
	ActionNew   = "game:new"
	ActionView  = "game:view"
	ActionTurn  = "game:turn"
	ActionJump  = "game:jump"
	ActionOrder = "game:order"
	ActionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string `json:"game_id,omitempty"`
	Cell   *int   `json:"cell,omitempty"`
	Move   *int   `json:"move,omitempty"`
}

type ResponsePayload struct {
	Game  *usecase.GameState `json:"game,omitempty"`
	Error string             `json:"error,omitempty"`
}

func (that *Message) decodePayload() (RequestPayload, error) {
	var payload RequestPayload
	if len(that.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(that.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return payload, nil
}

func newMessage(action string, payload ResponsePayload) (*Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return &Message{Action: action, Payload: raw}, nil
}
