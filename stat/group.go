package stat

import (
	"cmp"
	"fmt"
	"slices"

	gstat "gonum.org/v1/gonum/stat"
)

// Group partitions values by the key at the same index. Within a group the
// input order is preserved.
func Group[K comparable](keys []K, values []float64) (map[K][]float64, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("stat: %d keys for %d values", len(keys), len(values))
	}
	groups := make(map[K][]float64)
	for i, k := range keys {
		groups[k] = append(groups[k], values[i])
	}
	return groups, nil
}

// GroupMeans computes the arithmetic mean of values per key.
func GroupMeans[K comparable](keys []K, values []float64) (map[K]float64, error) {
	groups, err := Group(keys, values)
	if err != nil {
		return nil, err
	}
	means := make(map[K]float64, len(groups))
	for k, g := range groups {
		means[k] = gstat.Mean(g, nil)
	}
	return means, nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
