// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the generic
helpers the batch endpoints use.
*/
package slice

// Map returns transform applied to every element, in order.
func Map[T, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// LastByKey collapses elements sharing a key. Each key keeps the position of
// its first occurrence and the value of its last one.
func LastByKey[T any, K comparable](input []T, key func(T) K) []T {
	positions := make(map[K]int, len(input))
	result := make([]T, 0, len(input))

	for _, v := range input {
		k := key(v)
		if position, seen := positions[k]; seen {
			result[position] = v
			continue
		}
		positions[k] = len(result)
		result = append(result, v)
	}
	return result
}
