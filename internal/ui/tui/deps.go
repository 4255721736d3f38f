package tui

import (
	"log/slog"

	"github.com/aalvaropc/nodesort/internal/ports"
)

type Deps struct {
	Store      ports.LinkStore
	Classifier ports.Classifier
	Sorter     ports.Sorter

	// Path is the link file shown and written back.
	Path       string
	PreviewLen int

	Logger  *slog.Logger
	LogPath string
	Debug   bool
}
