package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"the7threason/internal/domain/model"
	"the7threason/internal/domain/ports"
)

type fakeTransport struct {
	mu        sync.Mutex
	sent      []model.Payload
	channels  []string
	reactions []string
	sendErr   error
	// failAt fails the reaction with this 1-based index; zero never fails.
	failAt int
}

func (f *fakeTransport) SendMessage(_ context.Context, channelID string, p model.Payload) (model.MessageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return model.MessageRef{}, f.sendErr
	}
	f.sent = append(f.sent, p)
	f.channels = append(f.channels, channelID)
	return model.MessageRef{ChannelID: channelID, MessageID: "m1"}, nil
}

func (f *fakeTransport) AttachReaction(_ context.Context, _ model.MessageRef, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAt > 0 && len(f.reactions)+1 == f.failAt {
		return &ports.TransportError{Op: "attach reaction", Status: 429, Err: errors.New("rate limited")}
	}
	f.reactions = append(f.reactions, token)
	return nil
}

type fixedClock time.Weekday

func (c fixedClock) CurrentWeekday() time.Weekday { return time.Weekday(c) }

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

func newTestDispatcher(tr ports.Transport, day time.Weekday) *Dispatcher {
	return NewDispatcher(tr, fixedClock(day), nopLogger{})
}

func TestConfirm(t *testing.T) {
	tr := &fakeTransport{}
	d := newTestDispatcher(tr, time.Monday)

	receipt, err := d.Confirm(context.Background(), "c1", model.NotificationRequest{
		EventType: lo.ToPtr("Scrim"),
		Day:       lo.ToPtr("Monday"),
		Time:      lo.ToPtr("8pm"),
		Opponent:  lo.ToPtr("Team X"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tr.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(tr.sent))
	}
	if tr.sent[0].Title != "**Scrim Confirmation**" {
		t.Errorf("title = %q", tr.sent[0].Title)
	}
	if tr.channels[0] != "c1" {
		t.Errorf("channel = %q", tr.channels[0])
	}
	if diff := cmp.Diff([]string{"✅", "❌"}, tr.reactions); diff != "" {
		t.Errorf("reactions mismatch (-want +got):\n%s", diff)
	}

	want := Receipt{
		Kind:      model.KindConfirmation,
		Stage:     StageComplete,
		Message:   model.MessageRef{ChannelID: "c1", MessageID: "m1"},
		Reactions: 2,
	}
	if diff := cmp.Diff(want, receipt); diff != "" {
		t.Errorf("receipt mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnounce(t *testing.T) {
	tr := &fakeTransport{}
	d := newTestDispatcher(tr, time.Monday)

	if _, err := d.Announce(context.Background(), "c1", model.NotificationRequest{
		EventType: lo.ToPtr("Scrim"),
		Day:       lo.ToPtr("Tuesday"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	desc := tr.sent[0].Description
	if !strings.Contains(desc, "**Day**: Tuesday") || !strings.Contains(desc, "**Who**: [Opponent not specified]") {
		t.Errorf("unexpected description:\n%s", desc)
	}
	if diff := cmp.Diff([]string{"6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}, tr.reactions); diff != "" {
		t.Errorf("reactions mismatch (-want +got):\n%s", diff)
	}
}

func TestPollAvailability(t *testing.T) {
	tr := &fakeTransport{}
	d := newTestDispatcher(tr, time.Wednesday)

	receipt, err := d.PollAvailability(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.Reactions != 7 {
		t.Errorf("reactions = %d, want 7", receipt.Reactions)
	}

	desc := tr.sent[0].Description
	days := []string{"Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "Monday", "Tuesday"}
	prev := -1
	for i, day := range days {
		line := tr.reactions[i] + " → " + day
		idx := strings.Index(desc, line)
		if idx < 0 {
			t.Fatalf("description missing %q", line)
		}
		if idx < prev {
			t.Errorf("line %q out of order", line)
		}
		prev = idx
	}
}

func TestSendFailureAttachesNothing(t *testing.T) {
	sendErr := &ports.TransportError{Op: "send message", Status: 403, Err: errors.New("missing access")}
	tr := &fakeTransport{sendErr: sendErr}
	d := newTestDispatcher(tr, time.Monday)

	receipt, err := d.Confirm(context.Background(), "c1", model.NotificationRequest{})
	if err != sendErr {
		t.Fatalf("expected transport error to be returned unchanged, got %v", err)
	}
	if receipt.Stage != StageFailed {
		t.Errorf("stage = %s, want failed", receipt.Stage)
	}
	if len(tr.reactions) != 0 {
		t.Errorf("expected no reactions, got %v", tr.reactions)
	}
}

func TestReactionFailureStopsRemaining(t *testing.T) {
	tr := &fakeTransport{failAt: 3}
	d := newTestDispatcher(tr, time.Monday)

	receipt, err := d.Announce(context.Background(), "c1", model.NotificationRequest{})

	var transportErr *ports.TransportError
	if !errors.As(err, &transportErr) || transportErr.Status != 429 {
		t.Fatalf("expected transport error, got %v", err)
	}
	if receipt.Stage != StageFailed || receipt.Reactions != 2 {
		t.Errorf("receipt = %+v", receipt)
	}
	if diff := cmp.Diff([]string{"6️⃣", "7️⃣"}, tr.reactions); diff != "" {
		t.Errorf("reactions mismatch (-want +got):\n%s", diff)
	}
	if len(tr.sent) != 1 {
		t.Errorf("message should stay sent, got %d", len(tr.sent))
	}
}

func TestConcurrentDispatchesAreIndependent(t *testing.T) {
	var wg sync.WaitGroup
	transports := make([]*fakeTransport, 8)
	for i := range transports {
		transports[i] = &fakeTransport{}
		wg.Add(1)
		go func(tr *fakeTransport) {
			defer wg.Done()
			d := newTestDispatcher(tr, time.Friday)
			if _, err := d.PollAvailability(context.Background(), "c"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(transports[i])
	}
	wg.Wait()

	for _, tr := range transports {
		if diff := cmp.Diff([]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣"}, tr.reactions); diff != "" {
			t.Errorf("reactions mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestStageString(t *testing.T) {
	if StageReactionsAttaching.String() != "reactions_attaching" || Stage(42).String() != "unknown" {
		t.Fatal("unexpected stage names")
	}
}
