package payload

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"the7threason/internal/domain/model"
)

const (
	// RoleMention pings the team role at the foot of every payload.
	RoleMention = "<@&1244624494731984906>"

	authorName    = "The 7th Reason"
	authorIconURL = "https://i.imgur.com/J6t2fBE.png"
	authorURL     = "https://github.com/AuroraEchoes/The7thReason"

	pollPreamble = "*Polling availability for the next week.*\n" +
		"React with **all** of the days during which you are availabile **for at least an hour** at some point between 6pm – 10pm.\n\n"
)

// BrandColor is the embed accent shared by every payload.
var BrandColor = model.Color{R: 230, G: 29, B: 213}

// BrandAuthor is the byline shared by every payload.
var BrandAuthor = model.Author{
	Name:    authorName,
	IconURL: authorIconURL,
	URL:     authorURL,
}

// Confirmation asks the team to confirm attendance at a fixed day and time.
func Confirmation(f ResolvedFields) model.Payload {
	return branded(
		fmt.Sprintf("**%s Confirmation**", f.EventType),
		paragraphs(
			":calendar: **Day**: "+f.Day,
			":alarm_clock: **Time**: "+f.Time,
			":busts_in_silhouette: **Who**: "+f.Opponent,
			"*React with :white_check_mark: if you can make it*",
			mentionLine(),
		),
	)
}

// Announcement announces an event and asks for hour availability.
// The title keeps the "Announcment" spelling existing channels already show.
func Announcement(f ResolvedFields) model.Payload {
	return branded(
		fmt.Sprintf("**%s Announcment**", f.EventType),
		paragraphs(
			":calendar: **Day**: "+f.Day,
			":busts_in_silhouette: **Who**: "+f.Opponent,
			"*React below with time availability*",
			mentionLine(),
		),
	)
}

// AvailabilityPoll pairs each ordinal reaction with a day of the coming week.
func AvailabilityPoll(seq WeekdaySequence) model.Payload {
	tokens := PlanFor(model.KindAvailabilityPoll)
	lines := lo.Map(seq.Labels(), func(label string, i int) string {
		return tokens[i] + " → " + label + "\n\n"
	})

	var b strings.Builder
	b.WriteString(pollPreamble)
	for _, line := range lines {
		b.WriteString(line)
	}
	b.WriteString("\n")
	b.WriteString(mentionLine())

	return branded("**Availability Poll**", b.String())
}

func branded(title, description string) model.Payload {
	return model.Payload{
		Title:       title,
		Description: description,
		Color:       BrandColor,
		Author:      BrandAuthor,
	}
}

func paragraphs(lines ...string) string {
	return strings.Join(lines, "\n\n")
}

func mentionLine() string {
	return "[ " + RoleMention + " ]"
}
