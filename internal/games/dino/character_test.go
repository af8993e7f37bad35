package dino

import (
	"testing"

	"github.com/vovakirdan/tui-dino/internal/config"
)

func newTestCharacter(a Archetype) (*Character, config.DinoConfig) {
	cfg := config.DefaultDinoConfig()
	return NewCharacter(a, &cfg), cfg
}

func TestJumpLastsJumpTicksAndLands(t *testing.T) {
	c, cfg := newTestCharacter(ArchetypeDino)
	want := JumpTicks(cfg.Physics)
	if want != 22 {
		t.Fatalf("JumpTicks() = %d, expected 22 with default physics", want)
	}

	if !c.Update(Intent{Jump: true}) {
		t.Fatal("first jump tick should report a launch")
	}
	ticks := 1
	for c.State() == Jumping {
		c.Update(Intent{})
		ticks++
		if ticks > 100 {
			t.Fatal("jump never ended")
		}
	}

	if ticks != want {
		t.Errorf("jump lasted %d ticks, expected %d", ticks, want)
	}
	if c.Y() != cfg.Player.RunY {
		t.Errorf("landed at y=%d, expected %d", c.Y(), cfg.Player.RunY)
	}
	if c.Velocity() != 0 {
		t.Errorf("velocity after landing = %d, expected 0", c.Velocity())
	}
}

func TestJumpApex(t *testing.T) {
	c, cfg := newTestCharacter(ArchetypeDino)
	c.Update(Intent{Jump: true})

	highest := c.Y()
	for c.State() == Jumping {
		c.Update(Intent{})
		if c.State() == Jumping && c.Y() < highest {
			highest = c.Y()
		}
	}

	// 11 rising ticks of (850 - 80k) * 4 fixed-point units
	if rise := cfg.Player.RunY - highest; rise != 198 {
		t.Errorf("apex rise = %d, expected 198", rise)
	}
}

func TestJumpCannotRetrigger(t *testing.T) {
	c, _ := newTestCharacter(ArchetypeDino)
	c.Update(Intent{Jump: true})
	c.Update(Intent{})
	vel := c.Velocity()

	if c.Update(Intent{Jump: true}) {
		t.Error("jump should not relaunch mid-air")
	}
	if c.Velocity() >= vel {
		t.Errorf("velocity should keep decreasing, was %d now %d", vel, c.Velocity())
	}
}

func TestDuckIgnoredMidJump(t *testing.T) {
	c, _ := newTestCharacter(ArchetypeDino)
	c.Update(Intent{Jump: true})

	c.Update(Intent{Duck: true})
	if c.State() != Jumping {
		t.Errorf("state = %v, expected jumping", c.State())
	}
}

func TestDuckAndRelease(t *testing.T) {
	c, cfg := newTestCharacter(ArchetypeDino)

	c.Update(Intent{Duck: true})
	if c.State() != Ducking {
		t.Fatalf("state = %v, expected ducking", c.State())
	}
	box := c.Box()
	if box.Y != cfg.Player.DuckY || box.W != 118 || box.H != 60 {
		t.Errorf("duck box = %+v", box)
	}

	c.Update(Intent{})
	if c.State() != Running || c.Y() != cfg.Player.RunY {
		t.Errorf("release should return to running, got %v at %d", c.State(), c.Y())
	}
}

func TestJumpBeatsDuck(t *testing.T) {
	c, _ := newTestCharacter(ArchetypeDino)
	c.Update(Intent{Duck: true})
	c.Update(Intent{Jump: true, Duck: true})
	if c.State() != Jumping {
		t.Errorf("state = %v, expected jumping", c.State())
	}
}

func TestRunAnimationCadence(t *testing.T) {
	c, _ := newTestCharacter(ArchetypeDino)

	want := []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}
	for cycle := 0; cycle < 3; cycle++ {
		for i, frame := range want {
			c.Update(Intent{})
			if c.Frame() != frame {
				t.Fatalf("cycle %d tick %d: frame = %d, expected %d", cycle, i, c.Frame(), frame)
			}
		}
	}
}

func TestSinglePoseArchetypeNeverAnimates(t *testing.T) {
	c, _ := newTestCharacter(ArchetypeCactus)

	for i := 0; i < 30; i++ {
		duck := i%3 == 0
		c.Update(Intent{Duck: duck})
		if c.Frame() != 0 || c.Step() != 0 {
			t.Fatalf("tick %d: frame=%d step=%d", i, c.Frame(), c.Step())
		}
	}
}

func TestArchetypeFootprints(t *testing.T) {
	tests := []struct {
		a    Archetype
		w, h int
	}{
		{ArchetypeDino, 88, 94},
		{ArchetypeCactus, 40, 71},
		{ArchetypePterodactyl, 97, 80},
	}
	for _, tc := range tests {
		c, _ := newTestCharacter(tc.a)
		box := c.Box()
		if box.W != tc.w || box.H != tc.h {
			t.Errorf("%s run box = %dx%d, expected %dx%d", tc.a, box.W, box.H, tc.w, tc.h)
		}
	}

	if !ArchetypePterodactyl.Traits().Mirrored {
		t.Error("pterodactyl should be mirrored")
	}
	if !ArchetypeCactus.Traits().SinglePose {
		t.Error("cactus should be single-pose")
	}
}

func TestSelectArchetype(t *testing.T) {
	tests := []struct {
		in   string
		want Archetype
		ok   bool
	}{
		{"dino", ArchetypeDino, true},
		{"Cactus", ArchetypeCactus, true},
		{"  pterodactyl ", ArchetypePterodactyl, true},
		{"trex", ArchetypeDino, false},
		{"", ArchetypeDino, false},
	}
	for _, tc := range tests {
		got, ok := ParseArchetype(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseArchetype(%q) = %v, %v", tc.in, got, ok)
		}
		if SelectArchetype(tc.in) != tc.want {
			t.Errorf("SelectArchetype(%q) = %v", tc.in, SelectArchetype(tc.in))
		}
	}
}
