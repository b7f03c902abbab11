package creeps

import (
	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// MobTemplate is what every spawned mob is built from.
type MobTemplate struct {
	Variants []config.MobVariant
	Width    float64
	Height   float64
	FPS      float64
}

// NewMobTemplate builds the template from the mob config.
func NewMobTemplate(cfg config.CreepsMob) MobTemplate {
	return MobTemplate{
		Variants: cfg.Variants,
		Width:    cfg.Width,
		Height:   cfg.Height,
		FPS:      cfg.AnimationFPS,
	}
}

// Mob is an enemy moving at constant velocity until it leaves the screen.
type Mob struct {
	Position core.Vec2
	Velocity core.Vec2
	Rotation float64

	variant config.MobVariant
	frames  []rune
	color   core.Color
	w, h    float64
	fps     float64

	clock float64
	frame int
	seen  bool // Has been inside the viewport at least once
	freed bool
}

// newMob creates a mob playing a variant picked uniformly at random.
// It panics when the template has no variants.
func newMob(tmpl MobTemplate, rng RNG) *Mob {
	if len(tmpl.Variants) == 0 {
		panic("creeps: mob has no animation variants")
	}
	v := tmpl.Variants[rng.Intn(len(tmpl.Variants))]

	frames := []rune(v.Frames)
	if len(frames) == 0 {
		frames = []rune{'?'}
	}
	color, _ := core.ParseColor(v.Color)

	return &Mob{
		variant: v,
		frames:  frames,
		color:   color,
		w:       tmpl.Width,
		h:       tmpl.Height,
		fps:     tmpl.FPS,
	}
}

// Integrate moves the mob by its velocity and advances its animation.
func (m *Mob) Integrate(dt float64) {
	m.Position = m.Position.Add(m.Velocity.Scale(dt))

	if m.fps <= 0 {
		return
	}
	m.clock += dt
	step := 1 / m.fps
	for m.clock >= step {
		m.clock -= step
		m.frame = (m.frame + 1) % len(m.frames)
	}
}

// Variant returns the name of the animation the mob plays.
func (m *Mob) Variant() string {
	return m.variant.Name
}

// Glyph returns the rune for the current animation frame.
func (m *Mob) Glyph() rune {
	return m.frames[m.frame]
}

// Color returns the variant's color.
func (m *Mob) Color() core.Color {
	return m.color
}

// Hitbox returns the mob's collision box.
func (m *Mob) Hitbox() core.RectF {
	return core.CenteredRectF(m.Position, m.w, m.h)
}

// QueueFree marks the mob for removal at the end of the frame.
func (m *Mob) QueueFree() {
	m.freed = true
}

// Freed reports whether the mob has been marked for removal.
func (m *Mob) Freed() bool {
	return m.freed
}

// checkScreenExit frees the mob once it has been on screen and left it.
func (m *Mob) checkScreenExit(viewport core.RectF) {
	if m.Hitbox().Intersects(viewport) {
		m.seen = true
		return
	}
	if m.seen {
		m.QueueFree()
	}
}

// MobGroup is the set of live mobs.
type MobGroup struct {
	mobs []*Mob
}

// NewMobGroup creates an empty group.
func NewMobGroup() *MobGroup {
	return &MobGroup{mobs: make([]*Mob, 0, 32)}
}

// Add inserts a mob into the group.
func (g *MobGroup) Add(m *Mob) {
	g.mobs = append(g.mobs, m)
}

// All returns the mobs in spawn order, including ones freed this frame.
func (g *MobGroup) All() []*Mob {
	return g.mobs
}

// Len returns the number of mobs in the group.
func (g *MobGroup) Len() int {
	return len(g.mobs)
}

// FreeAll marks every mob for removal.
func (g *MobGroup) FreeAll() {
	for _, m := range g.mobs {
		m.QueueFree()
	}
}

// Sweep drops freed mobs and returns how many were removed.
func (g *MobGroup) Sweep() int {
	live := g.mobs[:0]
	for _, m := range g.mobs {
		if !m.freed {
			live = append(live, m)
		}
	}
	removed := len(g.mobs) - len(live)
	for i := len(live); i < len(g.mobs); i++ {
		g.mobs[i] = nil
	}
	g.mobs = live
	return removed
}
