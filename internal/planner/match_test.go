package planner

import "testing"

func TestTokenNameMatcher(t *testing.T) {
	tests := []struct {
		name    string
		logged  string
		planned string
		want    bool
	}{
		{name: "exact", logged: "Plank", planned: "Plank", want: true},
		{name: "case insensitive", logged: "plank", planned: "PLANK", want: true},
		{name: "substring forward", logged: "walking", planned: "Brisk Walking", want: true},
		{name: "substring reverse", logged: "Brisk Walking in the park", planned: "Brisk Walking", want: true},
		{name: "token overlap across words", logged: "morning walk", planned: "Brisk Walking", want: true},
		{name: "token equality", logged: "rope skipping", planned: "Skipping Rope", want: true},
		{name: "unrelated", logged: "swimming", planned: "Push-ups", want: false},
		{name: "short tokens do not leak", logged: "up and at em", planned: "Push-ups", want: false},
		{name: "empty logged", logged: "", planned: "Plank", want: false},
		{name: "empty planned", logged: "Plank", planned: "", want: false},
		{name: "bangla names", logged: "দ্রুত হাঁটা", planned: "হাঁটা", want: true},
	}

	var m TokenNameMatcher
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Match(tc.logged, tc.planned); got != tc.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tc.logged, tc.planned, got, tc.want)
			}
		})
	}
}
