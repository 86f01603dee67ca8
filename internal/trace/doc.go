// Package trace provides a tracing subsystem for the paf toolchain.
//
// The trace package records tokenization phases and per-file work so that
// slow inputs and stuck runs can be diagnosed without a debugger.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	paf tokenize --trace=- --trace-level=detail ./src
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a command fails
//   - MultiTracer: combines several tracers
//
// # Levels and scopes
//
// LevelPhase emits driver and pass spans (load, lex, cache);
// LevelDetail and LevelDebug add per-file spans.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
