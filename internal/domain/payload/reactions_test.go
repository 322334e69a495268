package payload

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"the7threason/internal/domain/model"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		kind model.Kind
		want ReactionPlan
	}{
		{model.KindConfirmation, ReactionPlan{"✅", "❌"}},
		{model.KindAnnouncement, ReactionPlan{"6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}},
		{model.KindAvailabilityPoll, ReactionPlan{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := PlanFor(tt.kind)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PlanFor mismatch (-want +got):\n%s", diff)
			}

			seen := make(map[string]struct{}, len(got))
			for _, token := range got {
				if _, dup := seen[token]; dup {
					t.Errorf("duplicate token %q", token)
				}
				seen[token] = struct{}{}
			}
		})
	}
}

func TestPlanForReturnsCopy(t *testing.T) {
	plan := PlanFor(model.KindConfirmation)
	plan[0] = "mutated"

	if got := PlanFor(model.KindConfirmation)[0]; got != "✅" {
		t.Fatalf("plan table was mutated: %q", got)
	}
}

func TestPlanForUnknownKind(t *testing.T) {
	if got := PlanFor(model.Kind(99)); len(got) != 0 {
		t.Fatalf("expected empty plan, got %v", got)
	}
}
