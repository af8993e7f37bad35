package dino

import (
	"math/rand"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// flyerFrames is the number of wing frames of a flying hazard.
const flyerFrames = 2

// Obstacle is a single hazard scrolling toward the character.
type Obstacle struct {
	Kind    ObstacleKind
	Variant int // Visual variant, no gameplay effect

	box        core.Rect
	frameTicks int
	step       int
	frame      int
	removed    bool
}

// NewObstacle places an obstacle of the given kind and variant with its left
// edge at x. Out-of-range variants wrap around the configured list.
func NewObstacle(kind ObstacleKind, variant, x int, cfg config.ObstaclesConfig) Obstacle {
	kc := kind.Config(cfg)
	size := config.Size{}
	if n := len(kc.Variants); n > 0 {
		variant = ((variant % n) + n) % n
		size = kc.Variants[variant]
	}
	return Obstacle{
		Kind:       kind,
		Variant:    variant,
		box:        core.NewRect(x, kc.Y, size.W, size.H),
		frameTicks: max(cfg.FrameTicks, 1),
	}
}

// Update moves the obstacle left by speed and advances its animation. An
// obstacle whose right edge passes the left boundary marks itself removed.
func (o *Obstacle) Update(speed int) {
	if o.removed {
		return
	}
	o.box.X -= speed
	if o.Kind.Animated() {
		if o.step >= o.frameTicks*flyerFrames {
			o.step = 0
		}
		o.frame = o.step / o.frameTicks
		o.step++
	}
	if o.box.Right() < 0 {
		o.removed = true
	}
}

// Removed reports whether the obstacle left the world.
func (o Obstacle) Removed() bool { return o.removed }

// Box returns the collision box.
func (o Obstacle) Box() core.Rect { return o.box }

// Frame returns the animation frame (always 0 for ground hazards).
func (o Obstacle) Frame() int { return o.frame }

// ObstacleDraw is the render-facing view of an obstacle.
type ObstacleDraw struct {
	Kind   ObstacleKind
	Sprite int // Variant for ground hazards, wing frame for flyers
	Box    core.Rect
}

// DrawState returns the sprite selector and box of the obstacle.
func (o Obstacle) DrawState() ObstacleDraw {
	sprite := o.Variant
	if o.Kind.Animated() {
		sprite = o.frame
	}
	return ObstacleDraw{Kind: o.Kind, Sprite: sprite, Box: o.box}
}

// Spawner decides when new obstacles enter the world.
type Spawner interface {
	// MaybeSpawn returns the live set, possibly with new obstacles appended.
	MaybeSpawn(live []Obstacle) []Obstacle
}

// RandomSpawner keeps at most one obstacle in flight: when the live set is
// empty it picks a kind and a visual variant uniformly at random.
type RandomSpawner struct {
	rng *rand.Rand
	cfg *config.DinoConfig
}

// NewRandomSpawner creates a spawner with the given RNG seed.
func NewRandomSpawner(seed int64, cfg *config.DinoConfig) *RandomSpawner {
	return &RandomSpawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reset reseeds the RNG.
func (s *RandomSpawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// MaybeSpawn implements Spawner.
func (s *RandomSpawner) MaybeSpawn(live []Obstacle) []Obstacle {
	if len(live) > 0 {
		return live
	}
	kind := ObstacleKind(s.rng.Intn(obstacleKindCount))
	variants := len(kind.Config(s.cfg.Obstacles).Variants)
	variant := 0
	if variants > 0 {
		variant = s.rng.Intn(variants)
	}
	return append(live, NewObstacle(kind, variant, s.cfg.World.SpawnAt(), s.cfg.Obstacles))
}

// Cloud is background decoration moving with the scroll speed.
type Cloud struct {
	X, Y int
	cfg  config.CloudConfig
	edge int
	rng  *rand.Rand
}

// NewCloud places the first cloud beyond the right edge of the world.
func NewCloud(seed int64, cfg *config.DinoConfig) *Cloud {
	c := &Cloud{
		cfg:  cfg.Cloud,
		edge: cfg.World.Width,
		rng:  rand.New(rand.NewSource(seed)),
	}
	c.place(cfg.Cloud.FirstOffsetMin, cfg.Cloud.FirstOffsetMax)
	return c
}

func (c *Cloud) place(minOff, maxOff int) {
	c.X = c.edge + minOff + c.rng.Intn(maxOff-minOff+1)
	c.Y = c.cfg.MinY + c.rng.Intn(c.cfg.MaxY-c.cfg.MinY+1)
}

// Update scrolls the cloud and respawns it far to the right once it leaves.
func (c *Cloud) Update(speed int) {
	c.X -= speed
	if c.X < -c.cfg.Width {
		c.place(c.cfg.RespawnMin, c.cfg.RespawnMax)
	}
}

// Box returns the cloud's footprint.
func (c *Cloud) Box() core.Rect {
	return core.NewRect(c.X, c.Y, c.cfg.Width, 1)
}
