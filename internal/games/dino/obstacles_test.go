package dino

import (
	"testing"

	"github.com/vovakirdan/tui-dino/internal/config"
)

func TestObstacleMovesAndLeaves(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	o := NewObstacle(SmallHazard, 0, 100, cfg.Obstacles)

	o.Update(20)
	if o.Box().X != 80 || o.Removed() {
		t.Fatalf("after one update: x=%d removed=%v", o.Box().X, o.Removed())
	}

	// Right edge at 0 is still on screen
	o = NewObstacle(SmallHazard, 0, -20, cfg.Obstacles)
	o.Update(20)
	if o.Removed() {
		t.Errorf("obstacle with right edge %d should stay", o.Box().Right())
	}
	o.Update(1)
	if !o.Removed() {
		t.Errorf("obstacle with right edge %d should be removed", o.Box().Right())
	}
}

func TestObstacleGeometry(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	tests := []struct {
		kind    ObstacleKind
		variant int
		y, w, h int
	}{
		{SmallHazard, 0, 325, 40, 71},
		{SmallHazard, 2, 325, 105, 71},
		{LargeHazard, 1, 300, 99, 95},
		{FlyingHazard, 2, 250, 97, 80},
	}
	for _, tc := range tests {
		box := NewObstacle(tc.kind, tc.variant, 1100, cfg.Obstacles).Box()
		if box.X != 1100 || box.Y != tc.y || box.W != tc.w || box.H != tc.h {
			t.Errorf("%s/%d box = %+v", tc.kind, tc.variant, box)
		}
	}
}

func TestFlyerAnimationCadence(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	o := NewObstacle(FlyingHazard, 0, 1100, cfg.Obstacles)

	want := []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0}
	for i, frame := range want {
		o.Update(1)
		if o.Frame() != frame {
			t.Fatalf("tick %d: frame = %d, expected %d", i, o.Frame(), frame)
		}
	}
	if o.DrawState().Sprite != o.Frame() {
		t.Error("flyer sprite should follow the wing frame")
	}
}

func TestGroundHazardKeepsVariant(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	o := NewObstacle(LargeHazard, 2, 1100, cfg.Obstacles)
	for i := 0; i < 20; i++ {
		o.Update(5)
	}
	if o.Frame() != 0 || o.DrawState().Sprite != 2 {
		t.Errorf("ground hazard changed sprite: frame=%d sprite=%d", o.Frame(), o.DrawState().Sprite)
	}
}

func TestRandomSpawnerSingleObstacle(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewRandomSpawner(7, &cfg)

	live := s.MaybeSpawn(nil)
	if len(live) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(live))
	}
	if live[0].Box().X != cfg.World.SpawnAt() {
		t.Errorf("spawned at x=%d, expected %d", live[0].Box().X, cfg.World.SpawnAt())
	}

	again := s.MaybeSpawn(live)
	if len(again) != 1 {
		t.Errorf("spawner added to a non-empty set: %d obstacles", len(again))
	}
}

func TestRandomSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	a := NewRandomSpawner(99, &cfg)
	b := NewRandomSpawner(99, &cfg)

	for i := 0; i < 50; i++ {
		oa := a.MaybeSpawn(nil)[0]
		ob := b.MaybeSpawn(nil)[0]
		if oa.Kind != ob.Kind || oa.Variant != ob.Variant {
			t.Fatalf("draw %d differs: %v/%d vs %v/%d", i, oa.Kind, oa.Variant, ob.Kind, ob.Variant)
		}
	}

	a.Reset(99)
	b = NewRandomSpawner(99, &cfg)
	if oa, ob := a.MaybeSpawn(nil)[0], b.MaybeSpawn(nil)[0]; oa.Kind != ob.Kind || oa.Variant != ob.Variant {
		t.Error("Reset should restart the sequence")
	}
}

func TestRandomSpawnerCoversAllKinds(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewRandomSpawner(1, &cfg)

	seen := map[ObstacleKind]map[int]bool{}
	for i := 0; i < 600; i++ {
		o := s.MaybeSpawn(nil)[0]
		if seen[o.Kind] == nil {
			seen[o.Kind] = map[int]bool{}
		}
		seen[o.Kind][o.Variant] = true
	}
	for _, k := range []ObstacleKind{SmallHazard, LargeHazard, FlyingHazard} {
		if len(seen[k]) != 3 {
			t.Errorf("%s: saw variants %v", k, seen[k])
		}
	}
}

func TestCloudRespawns(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	c := NewCloud(3, &cfg)

	if c.X < cfg.World.Width+cfg.Cloud.FirstOffsetMin || c.X > cfg.World.Width+cfg.Cloud.FirstOffsetMax {
		t.Fatalf("first cloud at x=%d", c.X)
	}
	respawned := false
	for i := 0; i < 200 && !respawned; i++ {
		prev := c.X
		c.Update(50)
		if c.X > prev {
			respawned = true
			min := cfg.World.Width + cfg.Cloud.RespawnMin
			max := cfg.World.Width + cfg.Cloud.RespawnMax
			if c.X < min || c.X > max {
				t.Errorf("respawned at x=%d, expected [%d, %d]", c.X, min, max)
			}
		}
	}
	if !respawned {
		t.Fatal("cloud never respawned")
	}
	if c.Y < cfg.Cloud.MinY || c.Y > cfg.Cloud.MaxY {
		t.Errorf("cloud y=%d out of range", c.Y)
	}
}
