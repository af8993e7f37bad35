package dino

// Phase is the top-level game mode.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Signal drives phase transitions.
type Signal int

const (
	SignalStart Signal = iota
	SignalPauseToggle
	SignalCollision
	SignalRestart
	SignalBack
	SignalQuit
)

// Transition returns the phase reached from p on signal s. Signals a phase
// does not accept leave it unchanged; Quit is terminal.
func Transition(p Phase, s Signal) Phase {
	switch p {
	case PhaseMenu:
		switch s {
		case SignalStart:
			return PhasePlaying
		case SignalQuit:
			return PhaseQuit
		}
	case PhasePlaying:
		switch s {
		case SignalPauseToggle:
			return PhasePaused
		case SignalCollision:
			return PhaseGameOver
		case SignalQuit:
			return PhaseQuit
		}
	case PhasePaused:
		switch s {
		case SignalPauseToggle:
			return PhasePlaying
		case SignalQuit:
			return PhaseQuit
		}
	case PhaseGameOver:
		switch s {
		case SignalRestart:
			return PhasePlaying
		case SignalBack:
			return PhaseMenu
		case SignalQuit:
			return PhaseQuit
		}
	}
	return p
}
