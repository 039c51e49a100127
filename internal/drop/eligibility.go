package drop

import "time"

// Eligibility classifies a drop attempt relative to the user's reward window.
type Eligibility int

const (
	// Blocked means the minimum period since the last drop has not elapsed.
	Blocked Eligibility = iota
	// Chance means the attempt proceeds to the random gate.
	Chance
	// Forced means the maximum period has elapsed and the random gate is skipped.
	Forced
)

func (e Eligibility) String() string {
	switch e {
	case Blocked:
		return "blocked"
	case Chance:
		return "chance"
	case Forced:
		return "forced"
	}
	return "unknown"
}

// Evaluate classifies the attempt based on time elapsed since lastReward.
// Users who have never received a drop carry the zero-value epoch timestamp
// and therefore always evaluate as Forced.
func Evaluate(lastReward, now time.Time, minPeriod, maxPeriod time.Duration) Eligibility {
	elapsed := now.Sub(lastReward)
	switch {
	case elapsed < minPeriod:
		return Blocked
	case elapsed >= maxPeriod:
		return Forced
	default:
		return Chance
	}
}
