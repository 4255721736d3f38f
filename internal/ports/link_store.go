package ports

// LinkSource reads the raw, newline-delimited link text.
type LinkSource interface {
	ReadLinks(path string) (string, error)
}

// LinkSink writes the raw link text back, in the current order.
type LinkSink interface {
	WriteLinks(path string, text string) error
}

// LinkStore is a source that can also be written back to.
type LinkStore interface {
	LinkSource
	LinkSink
}
