package seqs

import "iter"

// Seq2 lifts a list of values into an error-carrying sequence.
func Seq2[T any](values ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, value := range values {
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Collect drains the sequence, stopping at the first error.
func Collect[T any](i iter.Seq2[T, error]) ([]T, error) {
	var values []T
	for value, err := range i {
		if err != nil {
			return values, err
		}

		values = append(values, value)
	}

	return values, nil
}
