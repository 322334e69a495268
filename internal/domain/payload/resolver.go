package payload

import (
	"fmt"

	"github.com/samber/lo"

	"the7threason/internal/domain/model"
)

// Field names one of the optional request fields.
type Field string

const (
	FieldEventType Field = "Event type"
	FieldDay       Field = "Day"
	FieldTime      Field = "Time"
	FieldOpponent  Field = "Opponent"
)

// Placeholder is the text shown in place of a field that was not supplied.
func (f Field) Placeholder() string {
	return fmt.Sprintf("[%s not specified]", string(f))
}

// ResolvedFields holds the display value of every optional field.
type ResolvedFields struct {
	EventType string
	Day       string
	Time      string
	Opponent  string
}

// Resolve returns the supplied value untouched, or the field's placeholder when absent.
func Resolve(field Field, value *string) string {
	return lo.FromPtrOr(value, field.Placeholder())
}

// ResolveRequest resolves all four fields of a request.
func ResolveRequest(req model.NotificationRequest) ResolvedFields {
	return ResolvedFields{
		EventType: Resolve(FieldEventType, req.EventType),
		Day:       Resolve(FieldDay, req.Day),
		Time:      Resolve(FieldTime, req.Time),
		Opponent:  Resolve(FieldOpponent, req.Opponent),
	}
}
