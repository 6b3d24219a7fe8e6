package game

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		name   string
		opened bool
		level  int
		want   ScreenID
	}{
		{"letter closed", false, 0, ScreenLetter},
		{"letter closed wins over level", false, 3, ScreenLetter},
		{"map", true, 0, ScreenMap},
		{"chat", true, 1, ScreenChat},
		{"flowers", true, 2, ScreenFlowers},
		{"catch", true, 3, ScreenCatch},
		{"flappy", true, 4, ScreenFlappy},
		{"puzzle", true, 5, ScreenPuzzle},
		{"cake", true, 6, ScreenCake},
		{"beyond last level", true, 7, ScreenComingSoon},
		{"negative level", true, -1, ScreenComingSoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultProgress()
			r.IsLetterOpened = tt.opened
			r.CurrentLevel = tt.level
			if got := Route(r); got != tt.want {
				t.Errorf("Route() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestScreenIDString(t *testing.T) {
	if ScreenComingSoon.String() != "coming-soon" {
		t.Errorf("got %q", ScreenComingSoon.String())
	}
	if ScreenID(42).String() != "screen(42)" {
		t.Errorf("got %q", ScreenID(42).String())
	}
}
