package payload

import "the7threason/internal/domain/model"

// ReactionPlan is the ordered set of reactions attached to a sent payload.
type ReactionPlan []string

var reactionPlans = map[model.Kind]ReactionPlan{
	model.KindConfirmation:     {"✅", "❌"},
	model.KindAnnouncement:     {"6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"},
	model.KindAvailabilityPoll: {"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣"},
}

// PlanFor returns a copy of the reaction plan for kind. Unknown kinds get no reactions.
func PlanFor(kind model.Kind) ReactionPlan {
	plan := reactionPlans[kind]
	out := make(ReactionPlan, len(plan))
	copy(out, plan)
	return out
}
