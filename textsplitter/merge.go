package textsplitter

import "strings"

// mergeSplits greedily reassembles consecutive pieces into chunks whose
// measured length stays at or below the chunk size, then carries a suffix
// of at most chunkOverlap into the next chunk. The join cost of the
// separator is charged against the chunk size, the same accounting the
// splitter uses. Output order follows input order and the result depends
// on nothing but the inputs.
func (s *RecursiveCharacter) mergeSplits(splits []string, separator string) []string {
	separatorLen := s.opts.lenFunc(separator)

	var chunks []string
	var window []string
	total := 0

	for _, piece := range splits {
		pieceLen := s.opts.lenFunc(piece)

		joinLen := 0
		if len(window) > 0 {
			joinLen = separatorLen
		}
		if total+pieceLen+joinLen > s.opts.chunkSize {
			if total > s.opts.chunkSize {
				// A single piece no separator could reduce; emitted
				// oversized rather than truncated.
				s.opts.logger.Warn("chunk exceeds requested size",
					"size", total,
					"chunk_size", s.opts.chunkSize,
				)
			}
			if len(window) > 0 {
				if chunk := s.joinPieces(window, separator); chunk != "" {
					chunks = append(chunks, chunk)
				}
				// Slide the window: drop pieces from the front until the
				// retained suffix fits the overlap budget and leaves room
				// for the incoming piece.
				for len(window) > 0 {
					if total <= s.opts.chunkOverlap && (total+pieceLen+separatorLen <= s.opts.chunkSize || total == 0) {
						break
					}
					dropped := s.opts.lenFunc(window[0])
					if len(window) > 1 {
						dropped += separatorLen
					}
					total -= dropped
					window = window[1:]
				}
			}
		}

		window = append(window, piece)
		total += pieceLen
		if len(window) > 1 {
			total += separatorLen
		}
	}

	if chunk := s.joinPieces(window, separator); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func (s *RecursiveCharacter) joinPieces(pieces []string, separator string) string {
	text := strings.Join(pieces, separator)
	if s.opts.stripWhitespace {
		text = strings.TrimSpace(text)
	}
	return text
}
