package setdiff

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		existing []uint
		desired  []uint
		toAdd    []uint
		toRemove []uint
		toKeep   []uint
	}{
		{
			name:     "disjoint",
			existing: []uint{1, 2},
			desired:  []uint{3, 4},
			toAdd:    []uint{3, 4},
			toRemove: []uint{1, 2},
		},
		{
			name:     "identical",
			existing: []uint{1, 2, 3},
			desired:  []uint{1, 2, 3},
			toKeep:   []uint{1, 2, 3},
		},
		{
			name:     "overlap keeps shared ids",
			existing: []uint{1, 2, 3},
			desired:  []uint{3, 1, 7},
			toAdd:    []uint{7},
			toRemove: []uint{2},
			toKeep:   []uint{1, 3},
		},
		{
			name:    "empty existing",
			desired: []uint{5},
			toAdd:   []uint{5},
		},
		{
			name:     "empty desired removes everything",
			existing: []uint{5, 6},
			toRemove: []uint{5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.existing, tt.desired)
			if !reflect.DeepEqual(got.ToAdd, tt.toAdd) {
				t.Errorf("ToAdd = %v, want %v", got.ToAdd, tt.toAdd)
			}
			if !reflect.DeepEqual(got.ToRemove, tt.toRemove) {
				t.Errorf("ToRemove = %v, want %v", got.ToRemove, tt.toRemove)
			}
			if !reflect.DeepEqual(got.ToKeep, tt.toKeep) {
				t.Errorf("ToKeep = %v, want %v", got.ToKeep, tt.toKeep)
			}
		})
	}
}

func TestDiffStrings(t *testing.T) {
	got := Diff([]string{"go", "sql"}, []string{"sql", "http"})
	if !reflect.DeepEqual(got.ToAdd, []string{"http"}) || !reflect.DeepEqual(got.ToRemove, []string{"go"}) {
		t.Errorf("unexpected diff: %+v", got)
	}
}

func TestDiffAddOrderFollowsDesired(t *testing.T) {
	got := Diff([]int{}, []int{9, 3, 5})
	if !reflect.DeepEqual(got.ToAdd, []int{9, 3, 5}) {
		t.Errorf("ToAdd should preserve desired order, got %v", got.ToAdd)
	}
}
