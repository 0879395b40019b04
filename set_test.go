package pageviews

import (
	"testing"
)

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIntSet(t *testing.T) {
	a := NewIntSet()
	if len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a.Elements())
	}
	a.Add(2017)
	a.Add(2016)
	a.Add(2017)
	if got := a.Elements(); !equalInts(got, []int{2016, 2017}) {
		t.Errorf("Got a = %v", got)
	}

	b := NewIntSetFrom([]int{12, 1, 5, 1})
	if got := b.Elements(); !equalInts(got, []int{1, 5, 12}) {
		t.Errorf("Got b = %v", got)
	}
}
