package domain

// CategorizationMode defines how many categories a response may hold.
type CategorizationMode string

// Available categorization modes.
const (
	// ModeSingle allows at most one category per response. Assigning a
	// category replaces any previous assignment.
	ModeSingle CategorizationMode = "single"

	// ModeMulti allows several simultaneous categories per response.
	ModeMulti CategorizationMode = "multi"
)

// IsValid returns true if the mode is recognised.
func (m CategorizationMode) IsValid() bool {
	switch m {
	case ModeSingle, ModeMulti:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m CategorizationMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m CategorizationMode) Description() string {
	switch m {
	case ModeSingle:
		return "Single (one category per response)"
	case ModeMulti:
		return "Multi (several categories per response)"
	default:
		return "Unknown"
	}
}
