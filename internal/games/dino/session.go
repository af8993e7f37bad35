package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// BestScoreWriter persists the best score. Errors are the writer's business:
// the session never blocks on or reacts to them.
type BestScoreWriter interface {
	WriteBestScore(score int) error
}

// BestScoreReader loads the persisted best score.
type BestScoreReader interface {
	ReadBestScore() (int, error)
}

// LoadBest reads the persisted best score. A missing reader, a read error or
// a negative value all count as zero.
func LoadBest(r BestScoreReader) int {
	if r == nil {
		return 0
	}
	best, err := r.ReadBestScore()
	if err != nil || best < 0 {
		return 0
	}
	return best
}

// SessionOptions configures a new session.
type SessionOptions struct {
	Archetype Archetype
	Best      int
	Seed      int64
	Spawner   Spawner // Defaults to a RandomSpawner seeded with Seed
	Writer    BestScoreWriter
}

// Session is one run from start until collision.
type Session struct {
	cfg       *config.DinoConfig
	character *Character
	obstacles []Obstacle
	spawner   Spawner
	ramp      *config.DifficultyManager
	cloud     *Cloud
	writer    BestScoreWriter

	score  int
	speed  int
	best   int
	ticks  int
	ground int // Ground scroll offset in world units
	paused bool
	over   bool

	newBestSeen bool
}

// NewSession starts a run with score 0 at the ramp's base speed.
func NewSession(cfg *config.DinoConfig, opts SessionOptions) *Session {
	spawner := opts.Spawner
	if spawner == nil {
		spawner = NewRandomSpawner(opts.Seed, cfg)
	}
	ramp := config.NewDifficultyManager(cfg.Difficulty)
	return &Session{
		cfg:       cfg,
		character: NewCharacter(opts.Archetype, cfg),
		spawner:   spawner,
		ramp:      ramp,
		cloud:     NewCloud(opts.Seed+1, cfg),
		writer:    opts.Writer,
		speed:     ramp.BaseSpeed(),
		best:      max(opts.Best, 0),
	}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Over       bool
	FinalScore int
	Events     []core.Event
}

// Tick advances the run by one step. Paused and finished sessions do not
// change.
func (s *Session) Tick(in Intent) TickResult {
	if s.over || s.paused {
		return TickResult{Over: s.over, FinalScore: s.score}
	}
	s.ticks++

	var events []core.Event
	if s.character.Update(in) {
		events = append(events, core.EventJumped)
	}

	if len(s.obstacles) == 0 {
		s.obstacles = s.spawner.MaybeSpawn(s.obstacles)
	}

	live := s.obstacles[:0]
	for i := range s.obstacles {
		o := s.obstacles[i]
		o.Update(s.speed)
		if !o.Removed() {
			live = append(live, o)
		}
	}
	s.obstacles = live

	s.cloud.Update(s.speed)
	s.ground = (s.ground + s.speed) % s.cfg.World.Width

	box := s.character.Box()
	for _, o := range s.obstacles {
		if box.Intersects(o.Box()) {
			s.over = true
			events = append(events, core.EventCrashed)
			return TickResult{Over: true, FinalScore: s.score, Events: events}
		}
	}

	s.score++
	if speed, crossed := s.ramp.Advance(s.score, s.speed); crossed {
		s.speed = speed
		events = append(events, core.EventMilestone)
	}

	if s.score > s.best {
		s.best = s.score
		if !s.newBestSeen {
			s.newBestSeen = true
			events = append(events, core.EventNewBest)
		}
		if s.writer != nil {
			_ = s.writer.WriteBestScore(s.best)
		}
	}

	return TickResult{FinalScore: s.score, Events: events}
}

// SetPaused freezes or resumes the run.
func (s *Session) SetPaused(p bool) {
	if s.over {
		return
	}
	s.paused = p
}

func (s *Session) Paused() bool { return s.paused }
func (s *Session) Over() bool   { return s.over }
func (s *Session) Score() int   { return s.score }
func (s *Session) Speed() int   { return s.speed }
func (s *Session) Best() int    { return s.best }
func (s *Session) Ticks() int   { return s.ticks }

// Character exposes the runner for inspection.
func (s *Session) Character() *Character { return s.character }

// Obstacles returns a copy of the live obstacle set.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Snapshot is everything the renderer needs for one frame.
type Snapshot struct {
	Character    CharacterDraw
	Obstacles    []ObstacleDraw
	Cloud        core.Rect
	GroundOffset int
	Score        int
	Best         int
	Speed        int
	Paused       bool
	Over         bool
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	obs := make([]ObstacleDraw, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		obs = append(obs, o.DrawState())
	}
	return Snapshot{
		Character:    s.character.DrawState(),
		Obstacles:    obs,
		Cloud:        s.cloud.Box(),
		GroundOffset: s.ground,
		Score:        s.score,
		Best:         s.best,
		Speed:        s.speed,
		Paused:       s.paused,
		Over:         s.over,
	}
}
