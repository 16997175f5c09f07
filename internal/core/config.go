package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform loop (default 60)
	Seed     int64 // RNG seed for deterministic piece order
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (lines cleared for tetris)
	Level    int  // Current speed level
	GameOver bool // Whether the game is halted waiting for a restart
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Ended is set on the frame a run finished. FinalScore and FinalLevel
	// describe that run, since the game may already have restarted by the
	// time the platform sees the result.
	Ended      bool
	FinalScore int
	FinalLevel int
}
