package usecase

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/ports"
)

// SortLinks classifies a link file, sorts it, and optionally writes the new
// order back to the same path.
type SortLinks struct {
	store    ports.LinkStore
	classify *ClassifyLinks
	sorter   ports.Sorter
	log      *slog.Logger
}

func NewSortLinks(store ports.LinkStore, cl ports.Classifier, sorter ports.Sorter, opts ...Option) *SortLinks {
	o := buildOptions(opts)
	return &SortLinks{
		store:    store,
		classify: NewClassifyLinks(store, cl, opts...),
		sorter:   sorter,
		log:      o.log,
	}
}

func (uc *SortLinks) Execute(ctx context.Context, path string, write bool) (domain.NodeList, error) {
	list, err := uc.classify.Execute(ctx, path)
	if err != nil {
		return domain.NodeList{}, err
	}

	sorted := domain.NewNodeList(uc.sorter.Sort(list.Items))
	uc.log.Info("links.sorted", "path", path, "total", len(sorted.Items))

	if write {
		if err := writeBack(ctx, uc.store, uc.log, path, sorted); err != nil {
			return sorted, err
		}
	}
	return sorted, nil
}

func writeBack(ctx context.Context, sink ports.LinkSink, log *slog.Logger, path string, list domain.NodeList) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := sink.WriteLinks(path, list.Text()); err != nil {
		return err
	}
	log.Info("links.written", "path", path, "total", len(list.Items))
	return nil
}
