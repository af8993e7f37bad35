package dino

import (
	"strings"

	"github.com/vovakirdan/tui-dino/internal/config"
)

// Archetype selects the character skin and its animation rules.
type Archetype int

const (
	ArchetypeDino Archetype = iota // Default: two-frame run and duck cycles
	ArchetypeCactus
	ArchetypePterodactyl
)

var archetypeNames = [...]string{
	ArchetypeDino:        "dino",
	ArchetypeCactus:      "cactus",
	ArchetypePterodactyl: "pterodactyl",
}

// Archetypes lists every selectable character in menu order.
func Archetypes() []Archetype {
	return []Archetype{ArchetypeDino, ArchetypeCactus, ArchetypePterodactyl}
}

func (a Archetype) String() string {
	if a < 0 || int(a) >= len(archetypeNames) {
		return archetypeNames[ArchetypeDino]
	}
	return archetypeNames[a]
}

// Title is the display name of the archetype.
func (a Archetype) Title() string {
	name := a.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// CharacterTraits are the per-archetype rendering rules.
type CharacterTraits struct {
	SinglePose bool // Always shows frame 0 and never advances the frame counter
	Mirrored   bool // Sprite is drawn flipped horizontally
}

// Traits returns the rendering rules of the archetype.
func (a Archetype) Traits() CharacterTraits {
	switch a {
	case ArchetypeCactus:
		return CharacterTraits{SinglePose: true}
	case ArchetypePterodactyl:
		return CharacterTraits{Mirrored: true}
	default:
		return CharacterTraits{}
	}
}

// Poses returns the archetype's footprint for each locomotion pose.
func (a Archetype) Poses(c config.CharactersConfig) config.PoseSizes {
	switch a {
	case ArchetypeCactus:
		return c.Cactus
	case ArchetypePterodactyl:
		return c.Pterodactyl
	default:
		return c.Dino
	}
}

// ParseArchetype resolves a typed selector such as " Cactus ".
func ParseArchetype(s string) (Archetype, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range Archetypes() {
		if a.String() == s {
			return a, true
		}
	}
	return ArchetypeDino, false
}

// SelectArchetype resolves a selector, falling back to the dino for anything
// it does not recognise.
func SelectArchetype(s string) Archetype {
	a, _ := ParseArchetype(s)
	return a
}

// ObstacleKind is one of the three hazard archetypes.
type ObstacleKind int

const (
	SmallHazard ObstacleKind = iota
	LargeHazard
	FlyingHazard

	obstacleKindCount = 3
)

func (k ObstacleKind) String() string {
	switch k {
	case SmallHazard:
		return "small"
	case LargeHazard:
		return "large"
	case FlyingHazard:
		return "flying"
	default:
		return "unknown"
	}
}

// Animated reports whether the kind cycles through animation frames.
// Ground hazards keep their visual variant for their whole lifetime.
func (k ObstacleKind) Animated() bool {
	return k == FlyingHazard
}

// Config returns the vertical offset and variants for the kind.
func (k ObstacleKind) Config(c config.ObstaclesConfig) config.ObstacleKindConfig {
	switch k {
	case LargeHazard:
		return c.Large
	case FlyingHazard:
		return c.Flying
	default:
		return c.Small
	}
}
