package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the scalar part of the game exposed to the platform.
type GameState struct {
	Score    int  // Points in the current run
	Best     int  // Best score known to this process
	Speed    int  // Current scroll speed in world units per tick
	Run      int  // Incremented every time a new run starts
	Paused   bool // Whether the run is paused
	GameOver bool // Whether the run has ended
}

// Outcome is the exit condition reported to the caller after a tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomePaused
	OutcomeGameOver
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "Continue"
	case OutcomePaused:
		return "Paused"
	case OutcomeGameOver:
		return "GameOver"
	case OutcomeQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a notable thing that happened during a tick. The platform uses
// events for side channels such as sound cues.
type Event int

const (
	EventJumped    Event = iota + 1 // Character left the ground
	EventMilestone                  // Score reached a speed step
	EventNewBest                    // Score exceeded the best score for the first time this run
	EventCrashed                    // Character hit an obstacle
)

func (e Event) String() string {
	switch e {
	case EventJumped:
		return "Jumped"
	case EventMilestone:
		return "Milestone"
	case EventNewBest:
		return "NewBest"
	case EventCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State      GameState
	Outcome    Outcome
	FinalScore int // Set when Outcome is OutcomeGameOver
	Events     []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
