package textsplitter

// MarkdownSeparators returns a hierarchy tuned for markdown: structural
// boundaries (code fences, headings, list markers) before the generic
// paragraph/line/space/character tail.
func MarkdownSeparators() []string {
	return []string{
		"\n```",
		"\n# ", "\n## ", "\n### ", "\n#### ",
		"\n- ", "\n* ",
		"\n\n", "\n", " ", "",
	}
}

// NewMarkdown creates a RecursiveCharacter splitter preconfigured for
// markdown. Separators are kept at the start of the following piece so
// headings and fences stay attached to their content. Later options
// override the preset.
func NewMarkdown(opts ...Option) (*RecursiveCharacter, error) {
	preset := []Option{
		WithSeparators(MarkdownSeparators()),
		WithKeepSeparator(KeepSeparatorStart),
	}
	return NewRecursiveCharacter(append(preset, opts...)...)
}
