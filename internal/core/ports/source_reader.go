package ports

// SourceReader defines the contract for reading an input source as lines.
type SourceReader interface {
	// ReadLines returns every line of the source at path, without line terminators.
	// It returns a *source.OpenError if the source cannot be opened and a
	// *source.ReadError if any line cannot be read; no lines are returned then.
	ReadLines(path string) ([]string, error)
}
