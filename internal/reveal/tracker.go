// Package reveal implements observe-once visibility tracking: a region is
// watched until it first scrolls into view, then the watch is dropped so the
// reveal plays exactly once per region instance.
package reveal

import (
	"errors"
	"fmt"
)

// DefaultThreshold is the fraction of a region that must be inside the
// viewport before it counts as visible.
const DefaultThreshold = 0.1

// ErrInvalidThreshold is returned for thresholds outside [0, 1].
var ErrInvalidThreshold = errors.New("reveal: threshold must be within [0, 1]")

// Region is an opaque handle to a renderable area.
type Region string

// Options controls when a region counts as visible.
type Options struct {
	Threshold  float64
	RootMargin Margin
}

// DefaultOptions returns the default threshold and a zero margin.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Source delivers intersection changes for a region. Implementations call cb
// with the current state when it is first known and whenever it changes.
type Source interface {
	Observe(region Region, opts Options, cb func(intersecting bool)) Subscription
}

// Subscription releases an observation. Unobserve must be idempotent.
type Subscription interface {
	Unobserve()
}

// Tracker hands out observe-once handles backed by a Source.
// Like the rest of the view state it is driven from a single event loop.
type Tracker struct {
	src Source
}

// NewTracker creates a tracker backed by src.
func NewTracker(src Source) *Tracker {
	return &Tracker{src: src}
}

// Observe starts watching region. onVisible, if non-nil, runs once when the
// region first becomes visible and never again.
func (t *Tracker) Observe(region Region, opts Options, onVisible func(Region)) (*Handle, error) {
	if !(opts.Threshold >= 0 && opts.Threshold <= 1) {
		return nil, fmt.Errorf("observe %q with threshold %v: %w", region, opts.Threshold, ErrInvalidThreshold)
	}
	h := &Handle{region: region, onVisible: onVisible}
	sub := t.src.Observe(region, opts, h.observe)
	if h.released {
		// The source reported visibility synchronously, before the
		// subscription existed to be released.
		sub.Unobserve()
		return h, nil
	}
	h.sub = sub
	return h, nil
}

// IsVisible reports whether the handle's region has been visible.
func (t *Tracker) IsVisible(h *Handle) bool {
	return h != nil && h.visible
}

// Handle is one observation of one region. It is released exactly once,
// either when the region becomes visible or when Close is called.
type Handle struct {
	region    Region
	visible   bool
	released  bool
	sub       Subscription
	onVisible func(Region)
}

// Region returns the observed region.
func (h *Handle) Region() Region { return h.region }

// Visible reports whether the region has been visible. It never reverts.
func (h *Handle) Visible() bool { return h.visible }

// Released reports whether the observation has been dropped.
func (h *Handle) Released() bool { return h.released }

// Close releases the observation without notifying. Call it when the region
// is torn down; closing twice, or after the reveal, is a no-op.
func (h *Handle) Close() {
	h.release()
}

func (h *Handle) observe(intersecting bool) {
	if h.released || !intersecting {
		return
	}
	h.visible = true
	h.release()
	if h.onVisible != nil {
		h.onVisible(h.region)
	}
}

func (h *Handle) release() {
	if h.released {
		return
	}
	h.released = true
	if h.sub != nil {
		h.sub.Unobserve()
	}
}
