package quiz

import "math"

// Tier is the outcome band for a finished quiz. The four bands and their
// thresholds are fixed.
type Tier int

const (
	TierReview      Tier = iota // below 50%
	TierImproving               // 50-69%
	TierGreat                   // 70-89%
	TierOutstanding             // 90-100%
)

// Outcome is the final result shown on the results screen.
type Outcome struct {
	Score      int
	Total      int
	Percentage int
	Tier       Tier
}

// ComputeOutcome derives the outcome from a score. A zero-length quiz is
// defined as 0%.
func ComputeOutcome(score, total int) Outcome {
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(score) / float64(total)))
	}
	return Outcome{
		Score:      score,
		Total:      total,
		Percentage: pct,
		Tier:       TierFor(pct),
	}
}

// TierFor maps a percentage to its tier. Total over [0,100]: every value
// maps to exactly one band.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 90:
		return TierOutstanding
	case percentage >= 70:
		return TierGreat
	case percentage >= 50:
		return TierImproving
	default:
		return TierReview
	}
}

// Title returns the headline shown for this tier.
func (t Tier) Title() string {
	switch t {
	case TierOutstanding:
		return "Outstanding Performance"
	case TierGreat:
		return "Great Work"
	case TierImproving:
		return "Keep Improving"
	default:
		return "Review Recommended"
	}
}

// Detail returns the supporting line shown under the title.
func (t Tier) Detail() string {
	switch t {
	case TierOutstanding:
		return "You've demonstrated exceptional mastery of this material."
	case TierGreat:
		return "Strong performance with room for targeted improvement."
	case TierImproving:
		return "You're building a solid foundation. Review weak areas."
	default:
		return "This topic needs more study. Use the flashcards and notes to reinforce concepts."
	}
}
