package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/ports"
)

// ClassifyLinks reads a link file and rebuilds the classified list from scratch.
type ClassifyLinks struct {
	source     ports.LinkSource
	classifier ports.Classifier
	log        *slog.Logger
}

type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger used for operation events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewClassifyLinks(src ports.LinkSource, cl ports.Classifier, opts ...Option) *ClassifyLinks {
	o := buildOptions(opts)
	return &ClassifyLinks{source: src, classifier: cl, log: o.log}
}

func (uc *ClassifyLinks) Execute(ctx context.Context, path string) (domain.NodeList, error) {
	if err := ctx.Err(); err != nil {
		return domain.NodeList{}, err
	}

	text, err := uc.source.ReadLinks(path)
	if err != nil {
		return domain.NodeList{}, err
	}

	list := domain.NewNodeList(uc.classifier.ClassifyText(text))
	uc.log.Info("links.classified",
		"path", path,
		"total", list.Summary.Total(),
		"ruled", list.Summary.Ruled,
		"unruled", list.Summary.Unruled,
		"invalid", list.Summary.Invalid,
	)
	return list, nil
}
