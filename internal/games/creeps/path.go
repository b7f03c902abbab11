package creeps

import (
	"math"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// SpawnPath is a closed polyline that mobs are spawned along.
type SpawnPath struct {
	points []core.Vec2
	cum    []float64 // cum[i] is the distance from points[0] to points[i]
	length float64
}

// NewSpawnPath builds a closed path through points. The last point
// connects back to the first.
func NewSpawnPath(points []core.Vec2) *SpawnPath {
	p := &SpawnPath{
		points: append([]core.Vec2(nil), points...),
		cum:    make([]float64, len(points)+1),
	}
	for i := range p.points {
		next := p.points[(i+1)%len(p.points)]
		p.cum[i+1] = p.cum[i] + next.Sub(p.points[i]).Length()
	}
	if len(points) > 0 {
		p.length = p.cum[len(points)]
	}
	return p
}

// NewPerimeterPath returns the viewport border wound clockwise on screen
// (y grows downward), so the tangent turned by +90° points inward.
func NewPerimeterPath(w, h float64) *SpawnPath {
	return NewSpawnPath([]core.Vec2{
		core.V2(0, 0),
		core.V2(w, 0),
		core.V2(w, h),
		core.V2(0, h),
	})
}

// Length returns the total path length.
func (p *SpawnPath) Length() float64 {
	return p.length
}

// Sample returns the point at the given distance along the path and the
// tangent angle there. Progress wraps around the loop.
func (p *SpawnPath) Sample(progress float64) (core.Vec2, float64) {
	if len(p.points) == 0 {
		return core.Vec2{}, 0
	}
	if p.length <= 0 {
		return p.points[0], 0
	}

	progress = math.Mod(progress, p.length)
	if progress < 0 {
		progress += p.length
	}

	for i := range p.points {
		segStart, segEnd := p.cum[i], p.cum[i+1]
		if progress >= segEnd && i < len(p.points)-1 {
			continue
		}
		a := p.points[i]
		b := p.points[(i+1)%len(p.points)]
		seg := b.Sub(a)
		segLen := segEnd - segStart
		if segLen <= 0 {
			continue
		}
		t := (progress - segStart) / segLen
		return a.Add(seg.Scale(t)), seg.Angle()
	}
	return p.points[0], 0
}
