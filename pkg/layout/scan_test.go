package layout

import (
	"reflect"
	"testing"
)

func TestScanEmpty(t *testing.T) {
	sc := newScan()
	if got := sc.lowestFree(0, 10); got != 0 {
		t.Errorf("lowestFree() = %d, want 0", got)
	}
	if got := sc.lowestFree(100, 1); got != 0 {
		t.Errorf("lowestFree(100) = %d, want 0", got)
	}
}

func TestScanAdd(t *testing.T) {
	sc := newScan()
	sc.add(2, 5, 3)
	want := []step{{0, 0}, {2, 5}, {5, 0}}
	if !reflect.DeepEqual(sc.steps, want) {
		t.Fatalf("steps = %v, want %v", sc.steps, want)
	}

	tests := []struct {
		x, w, want int
	}{
		{0, 2, 0},
		{0, 3, 5},
		{4, 1, 5},
		{5, 4, 0},
		{1, 10, 5},
	}
	for _, tt := range tests {
		if got := sc.lowestFree(tt.x, tt.w); got != tt.want {
			t.Errorf("lowestFree(%d, %d) = %d, want %d", tt.x, tt.w, got, tt.want)
		}
	}
}

func TestScanAddReplacesOverlap(t *testing.T) {
	sc := newScan()
	sc.add(2, 5, 3)
	sc.add(4, 7, 4)

	want := []step{{0, 0}, {2, 5}, {4, 7}, {8, 0}}
	if !reflect.DeepEqual(sc.steps, want) {
		t.Fatalf("steps = %v, want %v", sc.steps, want)
	}
	if got := sc.lowestFree(2, 2); got != 5 {
		t.Errorf("lowestFree(2, 2) = %d, want 5", got)
	}
	if got := sc.lowestFree(2, 3); got != 7 {
		t.Errorf("lowestFree(2, 3) = %d, want 7", got)
	}
}

func TestScanAddMergesEqualNeighbours(t *testing.T) {
	sc := newScan()
	sc.add(2, 5, 3)
	sc.add(4, 7, 4)
	sc.add(0, 5, 2)

	want := []step{{0, 5}, {4, 7}, {8, 0}}
	if !reflect.DeepEqual(sc.steps, want) {
		t.Errorf("steps = %v, want %v", sc.steps, want)
	}
}

func TestScanAddKeepsTail(t *testing.T) {
	sc := newScan()
	sc.add(0, 9, 10)
	sc.add(3, 2, 2)

	want := []step{{0, 9}, {3, 2}, {5, 9}, {10, 0}}
	if !reflect.DeepEqual(sc.steps, want) {
		t.Errorf("steps = %v, want %v", sc.steps, want)
	}
}

func TestScanClipsNegativeColumns(t *testing.T) {
	sc := newScan()
	sc.add(-3, 4, 5)

	want := []step{{0, 4}, {2, 0}}
	if !reflect.DeepEqual(sc.steps, want) {
		t.Errorf("steps = %v, want %v", sc.steps, want)
	}
	sc.add(-5, 1, 2)
	if !reflect.DeepEqual(sc.steps, want) {
		t.Errorf("steps after empty add = %v, want %v", sc.steps, want)
	}
}
