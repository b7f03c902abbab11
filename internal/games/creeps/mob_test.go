package creeps

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/core"
)

func testTemplate() MobTemplate {
	return NewMobTemplate(config.DefaultCreepsConfig().Mob)
}

func TestNewMobPanicsWithoutVariants(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newMob() with no variants should panic")
		}
	}()
	newMob(MobTemplate{}, rand.New(rand.NewSource(1)))
}

func TestNewMobPicksVariantUniformly(t *testing.T) {
	tmpl := testTemplate()
	rng := rand.New(rand.NewSource(3))
	counts := map[string]int{}

	const draws = 3000
	for i := 0; i < draws; i++ {
		counts[newMob(tmpl, rng).Variant()]++
	}

	for _, v := range tmpl.Variants {
		n := counts[v.Name]
		if n < 800 || n > 1200 {
			t.Errorf("variant %q picked %d/%d times, expected about a third", v.Name, n, draws)
		}
	}
}

func TestMobIntegrateKeepsVariant(t *testing.T) {
	m := newMob(testTemplate(), &scriptRNG{values: []float64{0.5}})
	variant := m.Variant()
	m.Position = core.V2(10, 10)
	m.Velocity = core.V2(100, -50)

	glyphs := map[rune]bool{}
	for i := 0; i < 60; i++ {
		m.Integrate(1.0 / 60)
		glyphs[m.Glyph()] = true
	}

	if m.Variant() != variant {
		t.Errorf("variant changed from %q to %q", variant, m.Variant())
	}
	if !near(m.Position.X, 110) || !near(m.Position.Y, -40) {
		t.Errorf("position = %v, expected (110, -40)", m.Position)
	}
	if len(glyphs) != 2 {
		t.Errorf("animation showed %d frames in one second, expected both", len(glyphs))
	}
	if m.Color() != core.ColorCyan {
		t.Errorf("color = %v, expected cyan for the swim variant", m.Color())
	}
}

func TestMobFreedAfterLeavingScreen(t *testing.T) {
	screen := core.RectF{W: 640, H: 384}
	m := newMob(testTemplate(), rand.New(rand.NewSource(1)))
	m.Position = core.V2(0, 100)
	m.Velocity = core.V2(-100, 0)

	m.checkScreenExit(screen)
	if m.Freed() {
		t.Fatal("mob on the border should not be freed")
	}

	for i := 0; i < 60 && !m.Freed(); i++ {
		m.Integrate(1.0 / 60)
		m.checkScreenExit(screen)
	}
	if !m.Freed() {
		t.Error("mob should be freed after leaving the screen")
	}
}

func TestMobOutsideNeverSeenIsKept(t *testing.T) {
	m := newMob(testTemplate(), rand.New(rand.NewSource(1)))
	m.Position = core.V2(-500, -500)

	m.checkScreenExit(core.RectF{W: 640, H: 384})
	if m.Freed() {
		t.Error("a mob that never entered the screen should not be freed on exit")
	}
}

func TestMobGroup(t *testing.T) {
	g := NewMobGroup()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 5; i++ {
		g.Add(newMob(testTemplate(), rng))
	}
	if g.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", g.Len())
	}

	g.All()[1].QueueFree()
	g.All()[3].QueueFree()
	if removed := g.Sweep(); removed != 2 {
		t.Errorf("Sweep() removed %d, expected 2", removed)
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", g.Len())
	}

	g.FreeAll()
	g.Sweep()
	if g.Len() != 0 {
		t.Errorf("Len() = %d after FreeAll, expected 0", g.Len())
	}
}
