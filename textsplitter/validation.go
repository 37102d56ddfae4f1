package textsplitter

import "fmt"

// validate checks the configuration before any splitting happens. All
// configuration failures surface here, never mid-stream.
func (o *options) validate() error {
	if o.chunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidChunkSize, o.chunkSize)
	}
	if o.chunkOverlap < 0 {
		return fmt.Errorf("%w: chunk overlap cannot be negative, got %d", ErrInvalidChunkOverlap, o.chunkOverlap)
	}
	if o.chunkOverlap >= o.chunkSize {
		return fmt.Errorf("%w: chunk overlap (%d) must be less than chunk size (%d)",
			ErrInvalidChunkOverlap, o.chunkOverlap, o.chunkSize)
	}
	if len(o.separators) == 0 {
		return ErrEmptySeparators
	}
	if o.lenFunc == nil {
		return ErrNilLenFunc
	}
	return nil
}
