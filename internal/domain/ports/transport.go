package ports

import (
	"context"
	"fmt"

	"the7threason/internal/domain/model"
)

// Transport delivers payloads to a chat platform and decorates them with reactions.
type Transport interface {
	SendMessage(ctx context.Context, channelID string, payload model.Payload) (model.MessageRef, error)
	AttachReaction(ctx context.Context, ref model.MessageRef, token string) error
}

// TransportError reports that the chat platform rejected or never received a call.
// Status is the HTTP status when one was returned, zero otherwise.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
