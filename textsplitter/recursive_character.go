package textsplitter

import (
	"context"
	"fmt"
	"strings"
)

// RecursiveCharacter splits text by recursively trying a list of
// separators, coarsest first. It keeps semantically related parts of the
// text together as long as possible: a fragment is only cut with a finer
// separator when the coarser ones cannot get it under the chunk size.
type RecursiveCharacter struct {
	opts options
}

var _ TextSplitter = (*RecursiveCharacter)(nil)

// NewRecursiveCharacter creates a RecursiveCharacter splitter. The
// configuration is validated eagerly; an invalid size/overlap pair or an
// empty separator hierarchy is rejected before any text is processed.
func NewRecursiveCharacter(opts ...Option) (*RecursiveCharacter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	o.logger = o.logger.With("component", "recursive_splitter")
	return &RecursiveCharacter{opts: o}, nil
}

// SplitText splits a single text into pieces whose measured length stays
// at or below the configured chunk size wherever the separator hierarchy
// allows it. An atomic piece that no remaining separator can reduce is
// emitted as-is; content is never truncated or dropped.
func (s *RecursiveCharacter) SplitText(_ context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	return s.splitRecursive(text, s.opts.separators, 0)
}

// splitRecursive is the core descent over the separator hierarchy.
func (s *RecursiveCharacter) splitRecursive(text string, separators []string, depth int) ([]string, error) {
	// Depth is bounded by the hierarchy length because every level drops
	// at least the chosen separator. Fail fast instead of trusting that.
	if depth > len(s.opts.separators) {
		return nil, fmt.Errorf("split recursion exceeded hierarchy depth %d", len(s.opts.separators))
	}

	if s.opts.lenFunc(text) <= s.opts.chunkSize {
		return []string{text}, nil
	}
	if len(separators) == 0 {
		return []string{text}, nil
	}

	// Pick the first separator that occurs in the text; separators that
	// do not match fall through entirely. The last entry is the fallback
	// even when it never literally matches.
	separator := separators[len(separators)-1]
	var remaining []string
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	splits := splitWithSeparator(text, separator, s.opts.keepSeparator)

	// When the separator stays attached to a piece, rejoining must not
	// insert it a second time.
	joinSeparator := separator
	if s.opts.keepSeparator != KeepSeparatorNone {
		joinSeparator = ""
	}

	var final []string
	var good []string
	for _, piece := range splits {
		if s.opts.lenFunc(piece) < s.opts.chunkSize {
			good = append(good, piece)
			continue
		}
		if len(good) > 0 {
			final = append(final, s.mergeSplits(good, joinSeparator)...)
			good = nil
		}
		if len(remaining) == 0 {
			final = append(final, piece)
			continue
		}
		sub, err := s.splitRecursive(piece, remaining, depth+1)
		if err != nil {
			return nil, err
		}
		final = append(final, sub...)
	}
	if len(good) > 0 {
		final = append(final, s.mergeSplits(good, joinSeparator)...)
	}
	return final, nil
}

// splitWithSeparator cuts text on every occurrence of separator, applying
// the retention policy. The empty separator splits between characters.
// Empty pieces are discarded.
func splitWithSeparator(text, separator string, keep KeepSeparator) []string {
	var parts []string
	switch {
	case separator == "":
		parts = strings.Split(text, "")
	case keep == KeepSeparatorNone:
		parts = strings.Split(text, separator)
	default:
		raw := strings.Split(text, separator)
		parts = make([]string, 0, len(raw))
		for i, piece := range raw {
			if keep == KeepSeparatorStart && i > 0 {
				piece = separator + piece
			}
			if keep == KeepSeparatorEnd && i < len(raw)-1 {
				piece += separator
			}
			parts = append(parts, piece)
		}
	}

	filtered := make([]string, 0, len(parts))
	for _, piece := range parts {
		if piece != "" {
			filtered = append(filtered, piece)
		}
	}
	return filtered
}

func defaultOptions() options {
	return options{
		chunkSize:       DefaultChunkSize,
		chunkOverlap:    DefaultChunkOverlap,
		separators:      DefaultSeparators(),
		keepSeparator:   KeepSeparatorNone,
		lenFunc:         RuneLen,
		stripWhitespace: true,
		logger:          defaultLogger(),
	}
}
