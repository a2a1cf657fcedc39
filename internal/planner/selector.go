package planner

import "math/rand"

// PlanSize is the number of items in a machine-generated daily plan.
const PlanSize = 5

// Selector draws a daily exercise list from a library. The random source is
// injected so selection is reproducible in tests; production wiring passes a
// process-local non-cryptographic source.
type Selector struct {
	lib   *Library
	goals GoalMatcher
	rng   *rand.Rand
}

// NewSelector constructs a selector over the given library.
func NewSelector(lib *Library, goals GoalMatcher, rng *rand.Rand) *Selector {
	return &Selector{lib: lib, goals: goals, rng: rng}
}

// Select produces up to PlanSize exercises for the given free-text goal.
// Missed ids from yesterday are resolved first, in order, so carried-over
// exercises are prioritized for re-attempt. Remaining slots are filled per
// the goal's category quotas, falling back to any unused entry when a pool
// is exhausted. Select never fails; when the library holds fewer than
// PlanSize entries the result is simply shorter.
func (s *Selector) Select(goal string, missedIDs []string) []ExerciseDefinition {
	quota := s.goals.Quota(goal)

	selected := make([]ExerciseDefinition, 0, PlanSize)
	used := make(map[string]bool)
	counts := make(map[Category]int)

	// Carry-over seeds.
	for _, id := range missedIDs {
		if len(selected) == PlanSize {
			break
		}
		def, ok := s.lib.ByID(id)
		if !ok || used[def.ID] {
			continue
		}
		selected = append(selected, def)
		used[def.ID] = true
		counts[def.Category]++
	}

	// Quota fill: one draw per category per round until quotas are met,
	// the plan is full, or no category can contribute.
	quotaFor := map[Category]int{
		CategoryCardio:      quota.Cardio,
		CategoryStrength:    quota.Strength,
		CategoryFlexibility: quota.Flexibility,
	}
	order := []Category{CategoryCardio, CategoryStrength, CategoryFlexibility}
	for len(selected) < PlanSize {
		progressed := false
		for _, c := range order {
			if len(selected) == PlanSize {
				break
			}
			if counts[c] >= quotaFor[c] {
				continue
			}
			def, ok := s.drawUnused(s.lib.ByCategory(c), used)
			if !ok {
				continue // pool exhausted; fallback below covers the slot
			}
			selected = append(selected, def)
			used[def.ID] = true
			counts[c]++
			progressed = true
		}
		if !progressed {
			break
		}
	}

	// Fallback: quotas met or pools dry but slots remain.
	for len(selected) < PlanSize {
		def, ok := s.drawUnused(s.lib.All(), used)
		if !ok {
			break
		}
		selected = append(selected, def)
		used[def.ID] = true
		counts[def.Category]++
	}

	return selected
}

// drawUnused picks one random not-yet-selected definition from pool.
func (s *Selector) drawUnused(pool []ExerciseDefinition, used map[string]bool) (ExerciseDefinition, bool) {
	candidates := pool[:0:0]
	for _, d := range pool {
		if !used[d.ID] {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return ExerciseDefinition{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}
