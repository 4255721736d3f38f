package ports

import "github.com/aalvaropc/nodesort/internal/domain"

// Classifier rebuilds the classified list from raw text.
type Classifier interface {
	ClassifyText(text string) []domain.ClassifiedItem
}

// Sorter orders a classified list. Implementations must sort stably.
type Sorter interface {
	Sort(items []domain.ClassifiedItem) []domain.ClassifiedItem
}
