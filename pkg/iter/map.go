package iter

import "fmt"

// ErrMap applies fn to every item and stops at the first error, reporting the
// index of the failing item.
func ErrMap[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(items))

	for i, item := range items {
		mapped, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		result = append(result, mapped)
	}

	return result, nil
}

// ErrFilterMap is ErrMap that drops the items for which fn reports false.
func ErrFilterMap[T any, R any](items []T, fn func(T) (R, bool, error)) ([]R, error) {
	var result []R

	for i, item := range items {
		mapped, ok, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		if ok {
			result = append(result, mapped)
		}
	}

	return result, nil
}
