// Package setdiff computes the insert/delete/keep partition used when
// converging a stored collection to a submitted desired state. Access grants,
// tag links, question ids and option ids all reconcile through the same
// helper so the four passes behave identically.
package setdiff

// Result partitions a desired set against an existing one. An element present
// in both sets is always ToKeep, never ToRemove+ToAdd.
type Result[T comparable] struct {
	ToAdd    []T // in desired order
	ToRemove []T // in existing order
	ToKeep   []T // in existing order
}

// Diff returns the minimal changes that converge existing to desired.
// Duplicates in the inputs are passed through untouched; callers own their
// input hygiene.
func Diff[T comparable](existing, desired []T) Result[T] {
	existingSet := make(map[T]struct{}, len(existing))
	for _, e := range existing {
		existingSet[e] = struct{}{}
	}
	desiredSet := make(map[T]struct{}, len(desired))
	for _, d := range desired {
		desiredSet[d] = struct{}{}
	}

	var res Result[T]
	for _, d := range desired {
		if _, ok := existingSet[d]; !ok {
			res.ToAdd = append(res.ToAdd, d)
		}
	}
	for _, e := range existing {
		if _, ok := desiredSet[e]; ok {
			res.ToKeep = append(res.ToKeep, e)
		} else {
			res.ToRemove = append(res.ToRemove, e)
		}
	}
	return res
}

// Contains reports whether v is a member of s.
func Contains[T comparable](s []T, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
