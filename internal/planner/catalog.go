// Package planner holds the exercise library and the daily plan selection
// algorithm: goal-aware category quotas, missed-workout carry-over and the
// fuzzy matching that checks plan items off from logged workouts.
package planner

// Category classifies exercises in the library.
type Category string

const (
	CategoryCardio      Category = "cardio"
	CategoryStrength    Category = "strength"
	CategoryFlexibility Category = "flexibility"
	CategorySports      Category = "sports"
)

// ExerciseDefinition is one immutable library entry with bilingual display
// names and a sensible default duration.
type ExerciseDefinition struct {
	ID             string
	NameEn         string
	NameBn         string
	Category       Category
	DefaultMinutes int
}

// Library is a fixed, in-memory exercise catalog with id and category lookup.
type Library struct {
	defs []ExerciseDefinition
	byID map[string]ExerciseDefinition
}

// NewLibrary builds a library from the given definitions. Later duplicates
// of an id shadow earlier ones in lookups but not in iteration order.
func NewLibrary(defs []ExerciseDefinition) *Library {
	byID := make(map[string]ExerciseDefinition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &Library{defs: defs, byID: byID}
}

// ByID looks up a definition by its stable identifier.
func (l *Library) ByID(id string) (ExerciseDefinition, bool) {
	def, ok := l.byID[id]
	return def, ok
}

// ByCategory returns all definitions tagged with the given category.
func (l *Library) ByCategory(c Category) []ExerciseDefinition {
	var out []ExerciseDefinition
	for _, d := range l.defs {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// All returns every definition in declaration order.
func (l *Library) All() []ExerciseDefinition {
	out := make([]ExerciseDefinition, len(l.defs))
	copy(out, l.defs)
	return out
}

// Len reports the library size.
func (l *Library) Len() int {
	return len(l.defs)
}

// DefaultLibrary is the built-in Desi Nutri catalog. Each category carries
// several entries so quota filling does not starve in the common case.
func DefaultLibrary() *Library {
	return NewLibrary([]ExerciseDefinition{
		// Cardio
		{ID: "brisk-walking", NameEn: "Brisk Walking", NameBn: "দ্রুত হাঁটা", Category: CategoryCardio, DefaultMinutes: 20},
		{ID: "jogging", NameEn: "Jogging", NameBn: "জগিং", Category: CategoryCardio, DefaultMinutes: 15},
		{ID: "cycling", NameEn: "Cycling", NameBn: "সাইকেল চালানো", Category: CategoryCardio, DefaultMinutes: 20},
		{ID: "jumping-jacks", NameEn: "Jumping Jacks", NameBn: "জাম্পিং জ্যাক", Category: CategoryCardio, DefaultMinutes: 10},
		{ID: "skipping-rope", NameEn: "Skipping Rope", NameBn: "দড়ি লাফ", Category: CategoryCardio, DefaultMinutes: 10},
		{ID: "stair-climbing", NameEn: "Stair Climbing", NameBn: "সিঁড়ি ভাঙা", Category: CategoryCardio, DefaultMinutes: 10},

		// Strength
		{ID: "push-ups", NameEn: "Push-ups", NameBn: "বুক ডন", Category: CategoryStrength, DefaultMinutes: 10},
		{ID: "squats", NameEn: "Squats", NameBn: "স্কোয়াট", Category: CategoryStrength, DefaultMinutes: 10},
		{ID: "plank", NameEn: "Plank", NameBn: "প্ল্যাঙ্ক", Category: CategoryStrength, DefaultMinutes: 5},
		{ID: "lunges", NameEn: "Lunges", NameBn: "লাঞ্জ", Category: CategoryStrength, DefaultMinutes: 10},
		{ID: "crunches", NameEn: "Crunches", NameBn: "ক্রাঞ্চ", Category: CategoryStrength, DefaultMinutes: 10},

		// Flexibility
		{ID: "yoga", NameEn: "Yoga", NameBn: "যোগব্যায়াম", Category: CategoryFlexibility, DefaultMinutes: 20},
		{ID: "stretching", NameEn: "Stretching", NameBn: "স্ট্রেচিং", Category: CategoryFlexibility, DefaultMinutes: 10},
		{ID: "surya-namaskar", NameEn: "Surya Namaskar", NameBn: "সূর্য নমস্কার", Category: CategoryFlexibility, DefaultMinutes: 15},
		{ID: "neck-shoulder-rolls", NameEn: "Neck & Shoulder Rolls", NameBn: "ঘাড় ও কাঁধের ব্যায়াম", Category: CategoryFlexibility, DefaultMinutes: 5},

		// Sports
		{ID: "cricket", NameEn: "Cricket", NameBn: "ক্রিকেট", Category: CategorySports, DefaultMinutes: 30},
		{ID: "football", NameEn: "Football", NameBn: "ফুটবল", Category: CategorySports, DefaultMinutes: 30},
		{ID: "badminton", NameEn: "Badminton", NameBn: "ব্যাডমিন্টন", Category: CategorySports, DefaultMinutes: 30},
		{ID: "swimming", NameEn: "Swimming", NameBn: "সাঁতার", Category: CategorySports, DefaultMinutes: 25},
	})
}
