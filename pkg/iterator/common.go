package iterator

import (
	"errors"
	"io"
)

// Iterate drives iter until it is exhausted, fn asks to stop, or an error
// occurs. io.EOF is the normal end and is not returned.
//
// fn controls the flow:
//   - (true, nil) continues
//   - (false, nil) stops early
//   - (_, err) stops with err
func Iterate[T any](iter Iterator[T], fn func(T) (continueLooping bool, err error)) error {
	for {
		item, err := iter.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		shouldContinue, err := fn(item)
		if err != nil {
			return err
		}
		if !shouldContinue {
			return nil
		}
	}
}

// ForEach applies fn to every item.
func ForEach[T any](iter Iterator[T], fn func(T) error) error {
	return Iterate(iter, func(item T) (bool, error) {
		return true, fn(item)
	})
}

// Collect drains iter. On error it returns the items read so far with it.
func Collect[T any](iter Iterator[T]) ([]T, error) {
	var results []T
	err := ForEach(iter, func(item T) error {
		results = append(results, item)
		return nil
	})
	return results, err
}

// Filter drains iter and keeps the items for which predicate is true.
func Filter[T any](iter Iterator[T], predicate func(T) bool) ([]T, error) {
	var results []T
	err := ForEach(iter, func(item T) error {
		if predicate(item) {
			results = append(results, item)
		}
		return nil
	})
	return results, err
}

// Take reads at most n items.
func Take[T any](iter Iterator[T], n int) ([]T, error) {
	results := make([]T, 0, max(n, 0))
	if n <= 0 {
		return results, nil
	}
	err := Iterate(iter, func(item T) (bool, error) {
		results = append(results, item)
		return len(results) < n, nil
	})
	return results, err
}

// Count drains iter and returns how many items it produced.
func Count[T any](iter Iterator[T]) (int, error) {
	count := 0
	err := ForEach(iter, func(T) error {
		count++
		return nil
	})
	return count, err
}
