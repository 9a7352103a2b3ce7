package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color toggles the lipgloss severity styling.
	Color bool
	// Context is the number of source lines requested around the primary
	// line. Pretty does not read it: only the primary line is printed.
	Context int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds resolved line/col pairs next to byte offsets.
	IncludePositions bool
}
