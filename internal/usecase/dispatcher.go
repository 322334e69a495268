package usecase

import (
	"context"
	"time"

	"the7threason/internal/domain/model"
	"the7threason/internal/domain/payload"
	"the7threason/internal/domain/ports"
)

// Stage tracks how far a single dispatch progressed.
type Stage int

const (
	StageIdle Stage = iota
	StageFieldsResolved
	StagePayloadBuilt
	StageSent
	StageReactionsAttaching
	StageComplete
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageFieldsResolved:
		return "fields_resolved"
	case StagePayloadBuilt:
		return "payload_built"
	case StageSent:
		return "sent"
	case StageReactionsAttaching:
		return "reactions_attaching"
	case StageComplete:
		return "complete"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Receipt describes the outcome of one dispatch.
type Receipt struct {
	Kind      model.Kind
	Stage     Stage
	Message   model.MessageRef
	Reactions int
}

// Dispatcher builds notifications and posts them with their reaction plan.
// It keeps no per-invocation state, so concurrent calls are independent.
type Dispatcher struct {
	transport ports.Transport
	clock     ports.Clock
	logger    ports.Logger
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(transport ports.Transport, clock ports.Clock, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		clock:     clock,
		logger:    logger,
	}
}

// Confirm posts a confirmation request and attaches the yes/no reactions.
func (d *Dispatcher) Confirm(ctx context.Context, channelID string, req model.NotificationRequest) (Receipt, error) {
	fields := payload.ResolveRequest(req)
	d.logger.Debug(ctx, "dispatch stage", "kind", model.KindConfirmation, "stage", StageFieldsResolved)
	return d.dispatch(ctx, channelID, model.KindConfirmation, payload.Confirmation(fields))
}

// Announce posts an event announcement and attaches the hour reactions.
// The Time field of req is not rendered.
func (d *Dispatcher) Announce(ctx context.Context, channelID string, req model.NotificationRequest) (Receipt, error) {
	fields := payload.ResolveRequest(req)
	d.logger.Debug(ctx, "dispatch stage", "kind", model.KindAnnouncement, "stage", StageFieldsResolved)
	return d.dispatch(ctx, channelID, model.KindAnnouncement, payload.Announcement(fields))
}

// PollAvailability posts a week-long availability poll starting today.
func (d *Dispatcher) PollAvailability(ctx context.Context, channelID string) (Receipt, error) {
	anchor := d.clock.CurrentWeekday()
	d.logger.Debug(ctx, "poll anchored", "kind", model.KindAvailabilityPoll, "anchor", anchor)
	return d.dispatch(ctx, channelID, model.KindAvailabilityPoll, payload.AvailabilityPoll(payload.Rotate(anchor)))
}

func (d *Dispatcher) dispatch(ctx context.Context, channelID string, kind model.Kind, p model.Payload) (Receipt, error) {
	start := time.Now()
	receipt := Receipt{Kind: kind, Stage: StagePayloadBuilt}
	d.logger.Debug(ctx, "dispatch stage", "kind", kind, "stage", receipt.Stage)

	ref, err := d.transport.SendMessage(ctx, channelID, p)
	if err != nil {
		receipt.Stage = StageFailed
		d.logger.Error(ctx, "failed to send notification", "kind", kind, "channel", channelID, "error", err)
		return receipt, err
	}
	receipt.Stage = StageSent
	receipt.Message = ref
	d.logger.Debug(ctx, "dispatch stage", "kind", kind, "stage", receipt.Stage, "message", ref.MessageID)

	receipt.Stage = StageReactionsAttaching
	for _, token := range payload.PlanFor(kind) {
		if err := d.transport.AttachReaction(ctx, ref, token); err != nil {
			receipt.Stage = StageFailed
			d.logger.Error(ctx, "failed to attach reaction",
				"kind", kind, "message", ref.MessageID, "reaction", token, "attached", receipt.Reactions, "error", err)
			return receipt, err
		}
		receipt.Reactions++
	}

	receipt.Stage = StageComplete
	d.logger.Info(ctx, "notification dispatched",
		"kind", kind, "channel", channelID, "message", ref.MessageID, "reactions", receipt.Reactions, "duration", time.Since(start))
	return receipt, nil
}
