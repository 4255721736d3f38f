package order

import (
	"fmt"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// Reorder returns items arranged in the order given by ids. ids must be an
// exact permutation of the item ids; anything else is a caller error.
func Reorder(items []domain.ClassifiedItem, ids []int) ([]domain.ClassifiedItem, error) {
	if len(ids) != len(items) {
		return nil, permutationErr(fmt.Errorf("got %d ids for %d items", len(ids), len(items)))
	}

	byID := make(map[int]domain.ClassifiedItem, len(items))
	for _, it := range items {
		if _, dup := byID[it.ID]; dup {
			return nil, permutationErr(fmt.Errorf("duplicate item id %d", it.ID))
		}
		byID[it.ID] = it
	}

	seen := make(map[int]bool, len(ids))
	out := make([]domain.ClassifiedItem, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, permutationErr(fmt.Errorf("unknown id %d", id))
		}
		if seen[id] {
			return nil, permutationErr(fmt.Errorf("id %d listed twice", id))
		}
		seen[id] = true
		out = append(out, it)
	}
	return out, nil
}

// Move returns the id order produced by moving the item at index from to index to.
// It is how a single drag or keyboard move is expressed as a full permutation.
func Move(ids []int, from, to int) ([]int, error) {
	if from < 0 || from >= len(ids) || to < 0 || to >= len(ids) {
		return nil, permutationErr(fmt.Errorf("move %d -> %d out of range for %d items", from, to, len(ids)))
	}

	out := make([]int, 0, len(ids))
	moved := ids[from]
	for i, id := range ids {
		if i == from {
			continue
		}
		out = append(out, id)
	}
	out = append(out[:to], append([]int{moved}, out[to:]...)...)
	return out, nil
}

func permutationErr(err error) error {
	return &domain.OpError{
		Op:   "order.reorder",
		Kind: domain.KindInvalidPermutation,
		Err:  fmt.Errorf("%w: %v", domain.ErrInvalidPermutation, err),
	}
}
