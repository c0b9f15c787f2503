// Package sight implements the overlay's line-of-sight check on top of
// the host raycast capability.
package sight

import (
	"github.com/blindrun/blindrun/internal/geom"
	"github.com/blindrun/blindrun/internal/host"
)

// sampleBuffer is the offset of the four auxiliary sample points around
// the target, and the grazing tolerance for hits near it.
const sampleBuffer = 0.3

// Probe answers visibility queries with a 5-sample heuristic: one ray
// to the target plus four rays to points offset by sampleBuffer in the
// axis directions. This is a known approximation of exact line of
// sight, not a bug; thin occluders near the target can be sampled past.
type Probe struct {
	rc host.Raycaster
}

// NewProbe wraps a host raycaster. A nil raycaster means the host
// exposes no blocking geometry; everything is then considered visible.
func NewProbe(rc host.Raycaster) *Probe {
	return &Probe{rc: rc}
}

// Visible reports whether target is perceivable from observer. A sample
// counts as clear when its cast reports no hit within range, or when
// the hit lands within sampleBuffer of the sample point (grazing the
// target itself rather than an occluder).
func (p *Probe) Visible(observer, target geom.Vec2) bool {
	if p.rc == nil {
		return true
	}

	offsets := [5]geom.Vec2{
		{},
		{X: sampleBuffer},
		{X: -sampleBuffer},
		{Y: sampleBuffer},
		{Y: -sampleBuffer},
	}

	for _, off := range offsets {
		sample := target.Add(off)
		hit, blocked := p.rc.Cast(observer, sample, observer.Distance(sample))
		if !blocked {
			return true
		}
		if hit.Distance(sample) <= sampleBuffer {
			return true
		}
	}

	return false
}
