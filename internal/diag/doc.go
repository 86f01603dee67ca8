// Package diag defines the diagnostic model shared by the front end.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer and the driver (I/O).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code: compact numeric identifier (see codes.go) with stable string form
//     such as LEX1001.
//   - Message: human oriented text; keep it short and actionable.
//   - Primary span: the source.Span pointing to the issue.
//   - Notes: optional secondary spans/messages.
//
// # Emitting diagnostics
//
// Producers construct a ReportBuilder via ReportError/ReportWarning/ReportInfo,
// chain WithNote and call Emit. diag.BagReporter aggregates diagnostics into a
// Bag, which supports sorting and deduplication.
//
// Rendering lives in internal/diagfmt; FormatShortDiagnostics in this package
// is the single-line form used by golden tests and `--diag-format short`.
package diag
