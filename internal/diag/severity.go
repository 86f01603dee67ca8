package diag

// Severity orders diagnostics; Bag queries compare with >=.
type Severity uint8

const (
	// SevInfo carries reports that never fail a run, e.g. phase timings (OBS6001).
	SevInfo Severity = iota
	// SevWarning marks recoverable problems such as an unreadable token cache (IO4002):
	// tokenization still runs from source.
	SevWarning
	// SevError marks lexer and load failures; any of them makes the command exit non-zero.
	SevError
)

// String returns the upper-case label used by the pretty and short formatters.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
