package agent

import "nogo/game"

// Agent is one side of a NoGo game. The engine opens an episode, asks for
// actions while it is the agent's turn, and closes the episode when the game
// ends.
type Agent interface {
	Name() string
	Role() game.Color

	// OpenEpisode resets any per-game learning (statistics, ply counters).
	OpenEpisode()
	// CloseEpisode signals the end of the game.
	CloseEpisode()

	// TakeAction picks a placement for the current position. ok is false
	// when the agent has no legal placement, which ends the episode with the
	// opponent as winner.
	TakeAction(state game.Position) (move game.Move, ok bool)
}
