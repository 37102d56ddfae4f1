package textsplitter

import "errors"

// KeepSeparator controls whether a matched separator is retained in the
// split output, and to which side of the cut it attaches.
type KeepSeparator int

const (
	// KeepSeparatorNone discards separators; pieces are rejoined with the
	// separator when merged back into chunks.
	KeepSeparatorNone KeepSeparator = iota
	// KeepSeparatorStart attaches the separator to the piece that follows it.
	KeepSeparatorStart
	// KeepSeparatorEnd attaches the separator to the piece that precedes it.
	KeepSeparatorEnd
)

// Defaults applied by NewRecursiveCharacter when no option overrides them.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// DefaultSeparators returns the default hierarchy, coarsest first:
// paragraph break, line break, space, and the empty string. The empty
// string is the terminal fallback and splits between any two characters,
// which guarantees termination.
func DefaultSeparators() []string {
	return []string{"\n\n", "\n", " ", ""}
}

var (
	ErrInvalidChunkSize    = errors.New("invalid chunk size")
	ErrInvalidChunkOverlap = errors.New("invalid chunk overlap")
	ErrEmptySeparators     = errors.New("separator hierarchy is empty")
	ErrNilLenFunc          = errors.New("length function is nil")
	ErrUnknownSplitterType = errors.New("unknown text splitter type")
)
