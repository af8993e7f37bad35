package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Locomotion is the character's movement state.
type Locomotion int

const (
	Running Locomotion = iota
	Jumping
	Ducking
)

func (l Locomotion) String() string {
	switch l {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Ducking:
		return "ducking"
	default:
		return "unknown"
	}
}

// Intent is the normalized input the character reacts to.
type Intent struct {
	Jump bool
	Duck bool
}

// IntentFrom extracts movement intents from an input frame.
func IntentFrom(in core.InputFrame) Intent {
	return Intent{
		Jump: in.Has(core.ActionJump),
		Duck: in.Has(core.ActionDuck),
	}
}

// Character is the player-controlled runner. Its x never changes; y is kept
// in fixed point (config.FixedPoint units per world unit).
type Character struct {
	archetype Archetype
	traits    CharacterTraits
	poses     config.PoseSizes
	player    config.PlayerConfig
	physics   config.PhysicsConfig

	state Locomotion
	y     int // Top of the box, fixed point
	vel   int // Upward velocity, fixed point; zero unless jumping
	step  int // Animation tick counter
	frame int // Current animation frame
}

// NewCharacter creates a running character at the start position.
func NewCharacter(a Archetype, cfg *config.DinoConfig) *Character {
	return &Character{
		archetype: a,
		traits:    a.Traits(),
		poses:     a.Poses(cfg.Characters),
		player:    cfg.Player,
		physics:   cfg.Physics,
		state:     Running,
		y:         cfg.Player.RunY * config.FixedPoint,
	}
}

// JumpTicks returns how many ticks a jump lasts: the jump ends on the first
// tick whose velocity falls below the negative launch velocity.
func JumpTicks(p config.PhysicsConfig) int {
	return 2*p.LaunchVelocity/p.Gravity + 1
}

// Update applies one tick of input and motion. It returns true when a jump
// started on this tick.
//
// Jump wins over everything and cannot be re-triggered mid-jump; duck wins
// over run while on the ground; the new state's motion and pose are applied
// in the same tick.
func (c *Character) Update(in Intent) bool {
	jumped := false
	if c.state != Jumping {
		switch {
		case in.Jump:
			c.state = Jumping
			c.vel = c.physics.LaunchVelocity
			c.y = c.player.RunY * config.FixedPoint
			jumped = true
		case in.Duck:
			c.state = Ducking
		default:
			c.state = Running
		}
	}

	switch c.state {
	case Jumping:
		c.frame = 0
		c.y -= c.vel * c.physics.Scale
		c.vel -= c.physics.Gravity
		if c.vel < -c.physics.LaunchVelocity {
			c.land()
		}
	default:
		c.animate()
	}
	return jumped
}

// land ends a jump exactly on the running line.
func (c *Character) land() {
	c.state = Running
	c.vel = 0
	c.y = c.player.RunY * config.FixedPoint
}

// animate advances the two-frame cycle used while running or ducking.
func (c *Character) animate() {
	if c.traits.SinglePose {
		c.frame = 0
		return
	}
	c.frame = c.step / c.player.FrameTicks
	c.step++
	if c.step >= c.player.FrameTicks*c.player.FrameCount {
		c.step = 0
	}
}

// State returns the current locomotion state.
func (c *Character) State() Locomotion { return c.state }

// Velocity returns the upward velocity in fixed point.
func (c *Character) Velocity() int { return c.vel }

// Frame returns the current animation frame.
func (c *Character) Frame() int { return c.frame }

// Step returns the animation tick counter.
func (c *Character) Step() int { return c.step }

// Archetype returns the character's archetype.
func (c *Character) Archetype() Archetype { return c.archetype }

// Y returns the top of the character's box in world units.
func (c *Character) Y() int {
	switch c.state {
	case Ducking:
		return c.player.DuckY
	case Running:
		return c.player.RunY
	default:
		return c.y / config.FixedPoint
	}
}

// Box returns the collision box for the current pose.
func (c *Character) Box() core.Rect {
	size := c.poses.Run
	switch c.state {
	case Ducking:
		size = c.poses.Duck
	case Jumping:
		size = c.poses.Jump
	}
	return core.NewRect(c.player.X, c.Y(), size.W, size.H)
}

// CharacterDraw is the render-facing view of the character.
type CharacterDraw struct {
	Archetype Archetype
	Pose      Locomotion
	Frame     int
	Mirrored  bool
	Box       core.Rect
}

// DrawState returns the sprite selector and box of the character.
func (c *Character) DrawState() CharacterDraw {
	return CharacterDraw{
		Archetype: c.archetype,
		Pose:      c.state,
		Frame:     c.frame,
		Mirrored:  c.traits.Mirrored,
		Box:       c.Box(),
	}
}
