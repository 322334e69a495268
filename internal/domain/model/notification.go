package model

// Kind identifies which of the three notification shapes is being built.
type Kind int

const (
	KindConfirmation Kind = iota
	KindAnnouncement
	KindAvailabilityPoll
)

func (k Kind) String() string {
	switch k {
	case KindConfirmation:
		return "confirmation"
	case KindAnnouncement:
		return "announcement"
	case KindAvailabilityPoll:
		return "availability_poll"
	default:
		return "unknown"
	}
}

// NotificationRequest carries the optional event details supplied by the invoker.
// A nil field was not supplied; a pointer to "" was supplied empty.
type NotificationRequest struct {
	EventType *string
	Day       *string
	Time      *string
	Opponent  *string
}

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Int packs the color into the 0xRRGGBB form chat platforms expect.
func (c Color) Int() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// Author is the byline block rendered above a payload.
type Author struct {
	Name    string
	IconURL string
	URL     string
}

// Payload is a transport-agnostic embed message.
type Payload struct {
	Title       string
	Description string
	Color       Color
	Author      Author
}

// MessageRef points at a message created by a transport.
type MessageRef struct {
	ChannelID string
	MessageID string
}
