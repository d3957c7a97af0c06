package poissondisk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrontierDropKeepsOrder(t *testing.T) {
	f := newFrontier(4)
	for i := 0; i < 5; i++ {
		f.push(i)
	}

	f.drop(1)
	f.drop(2) // was index 3

	if diff := cmp.Diff([]int{0, 2, 4}, f.open); diff != "" {
		t.Errorf("unexpected frontier (-want +got):\n%s", diff)
	}
}

func TestFrontierPick(t *testing.T) {
	f := newFrontier(3)
	f.push(7)
	f.push(8)
	f.push(9)

	rng := &scriptedRand{ints: []int{2}}
	slot, index := f.pick(rng)

	if slot != 2 || index != 9 {
		t.Errorf("pick() = %d, %d want 2, 9", slot, index)
	}
	if diff := cmp.Diff([]int{3}, rng.intArgs); diff != "" {
		t.Errorf("Intn should be asked for the frontier size (-want +got):\n%s", diff)
	}
}

func TestFrontierEmpty(t *testing.T) {
	f := newFrontier(1)
	if !f.empty() {
		t.Fatal("new frontier should be empty")
	}
	f.push(0)
	if f.empty() || f.len() != 1 {
		t.Fatal("frontier should hold one entry")
	}
	f.drop(0)
	if !f.empty() {
		t.Fatal("frontier should be empty after drop")
	}
}
