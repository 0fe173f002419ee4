package plan

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCycle is returned by topoSort when the dependency graph has a cycle.
var ErrCycle = errors.New("cycle detected")

// CycleError reports the nodes that could not be ordered.
type CycleError struct {
	// Remaining holds the indices left over once every acyclic node was
	// ordered, in ascending order.
	Remaining []int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v among nodes %v", ErrCycle, e.Remaining)
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// topoSort returns node indices so that every node comes after its
// dependencies. depsFn(i) yields the indices i depends on.
//
// The result is deterministic: when multiple nodes are ready, the smallest
// index goes first.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	dependents := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			dependents[d] = append(dependents[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range dependents[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		var remaining []int

		for i := range n {
			if indeg[i] > 0 {
				remaining = append(remaining, i)
			}
		}

		return nil, &CycleError{Remaining: remaining}
	}

	return order, nil
}
