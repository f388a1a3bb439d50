package iterctl

import "time"

// tracePerPassLimit bounds how many trace lines a positive trace frequency
// emits per pass, suppressing per-pass messages beyond a small threshold.
const tracePerPassLimit = 50

// Measures is the per-iteration tuple of tracked values emitted by trace
// events.
type Measures struct {
	TotalCrossings      int
	BottleneckCrossings int
	TotalStretch        float64
	BottleneckStretch   float64
}

// TraceEvent is one emitted trace line.
type TraceEvent struct {
	Iteration int
	Pass      int
	EndOfPass bool
	Measures  Measures
}

// Options configures a Controller. MaxIterations/MaxRuntime are pointers
// so that "not configured" (nil) is distinguishable from "configured as
// zero" (e.g. -r 0.0, a valid, maximally strict runtime budget).
// CaptureIteration < 0 disables the capture dump. Configuring either
// MaxIterations or MaxRuntime (at any value, including zero) disables
// standard (no-improvement) termination.
type Options struct {
	MaxIterations    *int
	MaxRuntime       *time.Duration
	CaptureIteration int
	TraceFreq        int
	OnTrace          func(TraceEvent)
}

// Controller owns the iteration/pass counters and the termination latch.
type Controller struct {
	opts Options

	iteration int
	pass      int
	start     time.Time
	now       func() time.Time

	passImproved   bool
	terminated     bool
	tracedThisPass int
}

// New returns a Controller ready to run from iteration 0, pass 0.
func New(opts Options) *Controller {
	return &Controller{opts: opts, now: time.Now, start: time.Now()}
}

// Iteration returns the current iteration counter.
func (c *Controller) Iteration() int { return c.iteration }

// Pass returns the current pass counter.
func (c *Controller) Pass() int { return c.pass }

// Terminated reports whether termination has already been reached.
func (c *Controller) Terminated() bool { return c.terminated }

// EndOfIteration performs the per-unit-of-work bookkeeping of :
// records whether any tracked objective improved this iteration (feeding
// the pass-level standard-termination decision), invokes capture if the
// configured capture iteration has been reached, emits a trace event per
// the configured frequency, and increments the iteration counter. It
// returns true iff termination has already been reached (the latch is
// idempotent: once set, every subsequent call keeps returning true).
func (c *Controller) EndOfIteration(m Measures, improved bool, capture func() error) (bool, error) {
	if c.terminated {
		return true, nil
	}
	if improved {
		c.passImproved = true
	}
	if c.opts.CaptureIteration >= 0 && c.iteration == c.opts.CaptureIteration && capture != nil {
		if err := capture(); err != nil {
			return false, err
		}
	}
	c.maybeTrace(m, false)
	c.iteration++
	return c.terminated, nil
}

// EndOfPass evaluates the termination conditions at a pass
// boundary: max_iterations, max_runtime, and (only when neither limit is
// configured) standard termination — no tracked objective improved during
// the pass just completed. It always emits an end-of-pass trace line
// (unless trace is suppressed), resets the pass-improvement flag, and
// increments the pass counter.
func (c *Controller) EndOfPass(m Measures) bool {
	if c.terminated {
		return true
	}
	c.maybeTrace(m, true)

	limitsConfigured := c.opts.MaxIterations != nil || c.opts.MaxRuntime != nil
	switch {
	case c.opts.MaxIterations != nil && c.iteration >= *c.opts.MaxIterations:
		c.terminated = true
	case c.opts.MaxRuntime != nil && c.now().Sub(c.start) >= *c.opts.MaxRuntime:
		c.terminated = true
	case !limitsConfigured && !c.passImproved:
		c.terminated = true
	}

	c.pass++
	c.passImproved = false
	c.tracedThisPass = 0
	return c.terminated
}

// maybeTrace applies the trace-frequency policy of : f == 0
// emits only at pass end; f < 0 suppresses trace entirely; f > 0 emits
// every f iterations, capped at tracePerPassLimit emissions per pass so a
// long pass cannot flood the trace.
func (c *Controller) maybeTrace(m Measures, endOfPass bool) {
	if c.opts.OnTrace == nil || c.opts.TraceFreq < 0 {
		return
	}
	emit := false
	switch {
	case c.opts.TraceFreq == 0:
		emit = endOfPass
	case endOfPass:
		emit = true
	default:
		emit = c.iteration%c.opts.TraceFreq == 0
	}
	if !emit {
		return
	}
	if !endOfPass {
		if c.tracedThisPass >= tracePerPassLimit {
			return
		}
		c.tracedThisPass++
	}
	c.opts.OnTrace(TraceEvent{Iteration: c.iteration, Pass: c.pass, EndOfPass: endOfPass, Measures: m})
}
