package creeps

import (
	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// Player animation names.
const (
	AnimWalk = "walk"
	AnimUp   = "up"
)

// playerFrameTime is how long each player animation frame is shown, seconds.
const playerFrameTime = 0.125

// Axes holds directional input strengths, each in [0, 1].
type Axes struct {
	Right, Left, Down, Up float64
}

// Vector composes the axes into (right-left, down-up).
func (a Axes) Vector() core.Vec2 {
	return core.V2(a.Right-a.Left, a.Down-a.Up)
}

// Animation is the state of a sprite animation.
type Animation struct {
	Name    string
	Playing bool
	FlipH   bool
	FlipV   bool
	Frame   int
}

// Player is the character the user steers away from mobs.
type Player struct {
	speed float64
	w, h  float64

	position  core.Vec2
	visible   bool
	collision bool
	hit       bool
	anim      Animation
	animClock float64

	deferred *deferredQueue
	onHit    func()
}

// NewPlayer creates a hidden player. Collision disables requested on hit
// are queued on q.
func NewPlayer(cfg config.CreepsPlayer, q *deferredQueue) *Player {
	return &Player{
		speed:     cfg.Speed,
		w:         cfg.Width,
		h:         cfg.Height,
		collision: true,
		anim:      Animation{Name: AnimWalk},
		deferred:  q,
	}
}

// OnHit registers the callback run when the player is hit.
func (p *Player) OnHit(fn func()) {
	p.onHit = fn
}

// Start places the player at pos, shows it and re-enables collision.
func (p *Player) Start(pos core.Vec2) {
	p.position = pos
	p.visible = true
	p.collision = true
	p.hit = false
}

// OnCollision handles a mob entering the player's hitbox. The player hides,
// emits hit and has its collision disabled once the physics step is over.
// Repeated collisions in the same round are ignored.
func (p *Player) OnCollision(_ *Mob) {
	if !p.visible || p.hit {
		return
	}
	p.hit = true
	p.visible = false

	if p.deferred != nil {
		p.deferred.Defer(func() { p.collision = false })
	} else {
		p.collision = false
	}

	if p.onHit != nil {
		p.onHit()
	}
}

// PhysicsProcess moves the player for one frame and keeps it inside
// [0, screen].
func (p *Player) PhysicsProcess(dt float64, axes Axes, screen core.Vec2) {
	v := axes.Vector()

	if v.Length() > 0 {
		v = v.Normalized().Scale(p.speed)
		p.anim.Playing = true
	} else {
		p.anim.Playing = false
	}

	if v.X != 0 {
		p.anim.Name = AnimWalk
		p.anim.FlipV = false
		p.anim.FlipH = v.X < 0
	} else if v.Y != 0 {
		p.anim.Name = AnimUp
		p.anim.FlipV = v.Y > 0
	}

	if p.anim.Playing {
		p.animClock += dt
		for p.animClock >= playerFrameTime {
			p.animClock -= playerFrameTime
			p.anim.Frame = (p.anim.Frame + 1) % 2
		}
	} else {
		p.animClock = 0
		p.anim.Frame = 0
	}

	p.position = p.position.Add(v.Scale(dt)).Clamp(core.Vec2{}, screen)
}

// Position returns the player's centre in world units.
func (p *Player) Position() core.Vec2 {
	return p.position
}

// Visible reports whether the player is shown.
func (p *Player) Visible() bool {
	return p.visible
}

// CollisionEnabled reports whether the hitbox is active.
func (p *Player) CollisionEnabled() bool {
	return p.collision
}

// Alive reports whether the player has not been hit since the last Start.
func (p *Player) Alive() bool {
	return p.visible && !p.hit
}

// Animation returns the current animation state.
func (p *Player) Animation() Animation {
	return p.anim
}

// Hitbox returns the player's collision box.
func (p *Player) Hitbox() core.RectF {
	return core.CenteredRectF(p.position, p.w, p.h)
}
