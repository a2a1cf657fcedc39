package planner

import "strings"

// Quota is the target exercise count per category for one generated plan.
// Sports has no quota of its own; sports entries enter plans via carry-over
// or the fallback draw when other pools run dry.
type Quota struct {
	Cardio      int
	Strength    int
	Flexibility int
}

// DefaultQuota is used when the fitness goal is absent or unrecognized.
var DefaultQuota = Quota{Cardio: 2, Strength: 2, Flexibility: 1}

// GoalMatcher maps a free-text fitness goal onto a category quota.
// It is a strategy so locale-sensitive keyword matching can be swapped or
// tested independently of the selector.
type GoalMatcher interface {
	Quota(goal string) Quota
}

// KeywordGoalMatcher matches goals against bilingual keyword sets.
// Sets are checked in order; the first hit wins.
type KeywordGoalMatcher struct{}

var goalQuotas = []struct {
	keywords []string
	quota    Quota
}{
	{
		keywords: []string{"weight loss", "weight_loss", "lose weight", "fat loss", "slim", "ওজন কমানো", "ওজন কমা"},
		quota:    Quota{Cardio: 3, Strength: 1, Flexibility: 1},
	},
	{
		keywords: []string{"muscle", "gain", "strength", "bulk", "পেশী", "শক্তি"},
		quota:    Quota{Cardio: 1, Strength: 3, Flexibility: 1},
	},
	{
		keywords: []string{"flexib", "yoga", "stretch", "mobility", "নমনীয়", "যোগ"},
		quota:    Quota{Cardio: 1, Strength: 1, Flexibility: 3},
	},
}

// Quota implements GoalMatcher.
func (KeywordGoalMatcher) Quota(goal string) Quota {
	g := strings.ToLower(strings.TrimSpace(goal))
	if g == "" {
		return DefaultQuota
	}
	for _, gq := range goalQuotas {
		for _, kw := range gq.keywords {
			if strings.Contains(g, kw) {
				return gq.quota
			}
		}
	}
	return DefaultQuota
}
