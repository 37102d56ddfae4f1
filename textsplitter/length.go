package textsplitter

import "unicode/utf8"

// LenFunc measures a piece of text. Chunk size and overlap are expressed
// in the same units the function returns. Any measure that is monotonic
// under concatenation works; character and token counts both qualify.
type LenFunc func(text string) int

// RuneLen is the default measure: the number of Unicode code points.
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}

// defaultEstimationRatio approximates how many characters one token spans
// for typical English text.
const defaultEstimationRatio = 4.0

// EstimatedTokenLen measures text as an estimated token count derived
// from its rune count. Unlike TokenLen it needs no encoding data, so it
// is a cheap stand-in when the exact tokenizer is unavailable.
func EstimatedTokenLen(ratio float64) LenFunc {
	if ratio <= 0 {
		ratio = defaultEstimationRatio
	}
	return func(text string) int {
		if text == "" {
			return 0
		}
		estimate := int(float64(utf8.RuneCountInString(text)) / ratio)
		if estimate < 1 {
			return 1
		}
		return estimate
	}
}
