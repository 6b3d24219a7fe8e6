package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the journey (letter, map, a minigame, ...).
// Each scene owns its own timers and local state.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)

	// Teardown is called once when the scene is unmounted. After it returns
	// the scene must not touch the progress store again.
	Teardown()
}
