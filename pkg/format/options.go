package format

// Options controls formatting behavior
type Options struct {
	UseColors bool
	MaxTags   int  // Max tags shown per record (0 = no limit)
	Compact   bool // Single line per record, no blank separators
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		UseColors: true,
		MaxTags:   5,
		Compact:   false,
	}
}

// CompactOptions returns options for compact single-line display
func CompactOptions() Options {
	opts := DefaultOptions()
	opts.Compact = true
	return opts
}

// PlainOptions returns options for uncolored output (pipes, NO_COLOR)
func PlainOptions() Options {
	opts := DefaultOptions()
	opts.UseColors = false
	return opts
}
