package textsplitter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of a splitter configuration.
type Config struct {
	// Type selects the splitter: "recursive" (default) or "markdown".
	Type string `yaml:"type"`

	ChunkSize    int      `yaml:"chunk_size"`
	ChunkOverlap int      `yaml:"chunk_overlap"`
	Separators   []string `yaml:"separators"`

	// KeepSeparator: "none" (default), "start" or "end".
	KeepSeparator string `yaml:"keep_separator"`

	// TokenEncoding switches the length measure from runes to tiktoken
	// tokens of the named encoding ("cl100k_base" etc).
	TokenEncoding string `yaml:"token_encoding"`

	AddStartIndex bool `yaml:"add_start_index"`
}

// LoadConfig reads a YAML splitter configuration from path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading splitter config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing splitter config %s: %w", path, err)
	}
	return cfg, nil
}

// NewFromConfig builds a splitter from a Config. Extra options are
// applied after the config and take precedence. Invalid values surface as
// configuration errors before any splitting happens.
func NewFromConfig(cfg Config, extra ...Option) (*RecursiveCharacter, error) {
	opts, err := cfg.toOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)

	switch cfg.Type {
	case "", "recursive":
		return NewRecursiveCharacter(opts...)
	case "markdown":
		return NewMarkdown(opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitterType, cfg.Type)
	}
}

func (c Config) toOptions() ([]Option, error) {
	var opts []Option
	if c.ChunkSize != 0 {
		opts = append(opts, WithChunkSize(c.ChunkSize))
	}
	if c.ChunkOverlap != 0 {
		opts = append(opts, WithChunkOverlap(c.ChunkOverlap))
	}
	if len(c.Separators) > 0 {
		opts = append(opts, WithSeparators(c.Separators))
	}
	if c.KeepSeparator != "" {
		keep, err := parseKeepSeparator(c.KeepSeparator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithKeepSeparator(keep))
	}
	if c.TokenEncoding != "" {
		lenFunc, err := TokenLen(c.TokenEncoding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLenFunc(lenFunc))
	}
	if c.AddStartIndex {
		opts = append(opts, WithAddStartIndex(true))
	}
	return opts, nil
}

func parseKeepSeparator(value string) (KeepSeparator, error) {
	switch value {
	case "none":
		return KeepSeparatorNone, nil
	case "start":
		return KeepSeparatorStart, nil
	case "end":
		return KeepSeparatorEnd, nil
	default:
		return KeepSeparatorNone, fmt.Errorf("invalid keep_separator value %q (want none, start or end)", value)
	}
}
