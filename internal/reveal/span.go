package reveal

// Span is the half-open row range [Start, End) a region occupies on the page.
type Span struct {
	Start int
	End   int
}

// Len returns the number of rows in the span.
func (s Span) Len() int { return s.End - s.Start }

// SpanSource computes intersections for regions laid out as row spans on a
// vertically scrolling page. The rendering layer reports the layout and the
// viewport window after every change; SpanSource turns that into callbacks.
type SpanSource struct {
	spans     map[Region]Span
	top       int
	height    int
	observers []*spanObserver
}

type spanObserver struct {
	region  Region
	opts    Options
	cb      func(bool)
	known   bool
	last    bool
	removed bool
}

func (o *spanObserver) Unobserve() { o.removed = true }

// NewSpanSource creates a source with no layout and an empty viewport.
func NewSpanSource() *SpanSource {
	return &SpanSource{spans: make(map[Region]Span)}
}

// Observe registers cb for region. If the layout and viewport are already
// known the initial state is delivered before Observe returns.
func (s *SpanSource) Observe(region Region, opts Options, cb func(bool)) Subscription {
	o := &spanObserver{region: region, opts: opts, cb: cb}
	s.observers = append(s.observers, o)
	s.evaluate(o)
	return o
}

// SetLayout replaces the region spans and re-evaluates every observer.
func (s *SpanSource) SetLayout(spans map[Region]Span) {
	s.spans = make(map[Region]Span, len(spans))
	for r, sp := range spans {
		s.spans[r] = sp
	}
	s.dispatch()
}

// SetViewport moves the viewport window and re-evaluates every observer.
func (s *SpanSource) SetViewport(top, height int) {
	s.top, s.height = top, height
	s.dispatch()
}

// Observed returns the number of live observations.
func (s *SpanSource) Observed() int {
	n := 0
	for _, o := range s.observers {
		if !o.removed {
			n++
		}
	}
	return n
}

// Ratio returns the fraction of region inside the viewport grown by margin.
// ok is false when the region has no layout or the viewport is empty.
func (s *SpanSource) Ratio(region Region, margin Margin) (ratio float64, ok bool) {
	sp, found := s.spans[region]
	if !found || s.height <= 0 {
		return 0, false
	}
	winTop := s.top - margin.Top.Rows(s.height)
	winBottom := s.top + s.height + margin.Bottom.Rows(s.height)
	if winBottom <= winTop {
		return 0, true
	}
	if sp.Len() <= 0 {
		if sp.Start >= winTop && sp.Start < winBottom {
			return 1, true
		}
		return 0, true
	}
	overlap := min(sp.End, winBottom) - max(sp.Start, winTop)
	if overlap <= 0 {
		return 0, true
	}
	return float64(overlap) / float64(sp.Len()), true
}

func (s *SpanSource) intersecting(o *spanObserver) (bool, bool) {
	ratio, ok := s.Ratio(o.region, o.opts.RootMargin)
	if !ok {
		return false, false
	}
	if o.opts.Threshold == 0 {
		return ratio > 0, true
	}
	return ratio >= o.opts.Threshold, true
}

func (s *SpanSource) evaluate(o *spanObserver) {
	if o.removed {
		return
	}
	in, ok := s.intersecting(o)
	if !ok {
		return
	}
	if o.known && o.last == in {
		return
	}
	o.known, o.last = true, in
	o.cb(in)
}

func (s *SpanSource) dispatch() {
	// Callbacks may unobserve (themselves or others) or observe new regions,
	// so walk a snapshot and compact afterwards.
	snapshot := append([]*spanObserver(nil), s.observers...)
	for _, o := range snapshot {
		s.evaluate(o)
	}
	live := s.observers[:0]
	for _, o := range s.observers {
		if !o.removed {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(s.observers); i++ {
		s.observers[i] = nil
	}
	s.observers = live
}
