package textsplitter

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultTokenEncoding is the encoding used when none is named. cl100k_base
// covers the common embedding and chat models.
const DefaultTokenEncoding = "cl100k_base"

// TokenLen returns a LenFunc that measures text in tokens of the given
// tiktoken encoding. Loading the encoding happens once, here; the
// returned function itself is pure and safe for concurrent use.
func TokenLen(encoding string) (LenFunc, error) {
	if encoding == "" {
		encoding = DefaultTokenEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown token encoding %q: %w", encoding, err)
	}
	return func(text string) int {
		return len(enc.Encode(text, nil, nil))
	}, nil
}

// TokenLenForModel resolves the encoding for a model name, falling back
// to DefaultTokenEncoding for models tiktoken does not know.
func TokenLenForModel(model string) (LenFunc, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(DefaultTokenEncoding)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving token encoding for model %q: %w", model, err)
	}
	return func(text string) int {
		return len(enc.Encode(text, nil, nil))
	}, nil
}
