// Package iterctl implements the iteration/pass controller of :
// the global iteration and pass counters, end-of-iteration bookkeeping
// (capture-iteration side dumps, trace emission), and the end-of-pass
// termination check (max iterations, max wall-clock runtime, or "standard"
// no-improvement-in-a-pass termination). Termination is cooperative and
// latched: once reached it is reported on every subsequent call.
package iterctl
