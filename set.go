package pageviews

import (
	"sort"
)

// IntSet is a set of int values, e.g. the years or months present in a
// series.
type IntSet map[int]struct{}

func NewIntSet() IntSet {
	return make(IntSet)
}

func NewIntSetFrom(init []int) IntSet {
	s := NewIntSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s IntSet) Add(x int) {
	s[x] = struct{}{}
}

// Elements returns the members of s in ascending order.
func (s IntSet) Elements() []int {
	elems := make([]int, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Ints(elems)
	return elems
}
