package usecase

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/ports"
	"github.com/aalvaropc/nodesort/internal/usecase/order"
)

// ReorderLinks applies an explicit id permutation to a freshly classified list.
// ids refer to positions of the non-blank lines in the file as read now.
type ReorderLinks struct {
	store    ports.LinkStore
	classify *ClassifyLinks
	log      *slog.Logger
}

func NewReorderLinks(store ports.LinkStore, cl ports.Classifier, opts ...Option) *ReorderLinks {
	o := buildOptions(opts)
	return &ReorderLinks{
		store:    store,
		classify: NewClassifyLinks(store, cl, opts...),
		log:      o.log,
	}
}

func (uc *ReorderLinks) Execute(ctx context.Context, path string, ids []int, write bool) (domain.NodeList, error) {
	list, err := uc.classify.Execute(ctx, path)
	if err != nil {
		return domain.NodeList{}, err
	}

	items, err := order.Reorder(list.Items, ids)
	if err != nil {
		return list, err
	}
	reordered := domain.NewNodeList(items)
	uc.log.Info("links.reordered", "path", path, "total", len(items))

	if write {
		if err := writeBack(ctx, uc.store, uc.log, path, reordered); err != nil {
			return reordered, err
		}
	}
	return reordered, nil
}
