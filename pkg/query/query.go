// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query reads list-valued URL query parameters such as
// ?tipo_usuario=1,3 or ?tipo_usuario=1&tipo_usuario=3.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Strings returns the trimmed, non-empty, comma-separated parts of every
// value of key, without duplicates and in first-seen order.
func Strings(values url.Values, key string) []string {
	var (
		parts []string
		seen  = make(map[string]struct{})
	)
	for _, value := range values[key] {
		for part := range strings.SplitSeq(value, ",") {
			part = strings.TrimSpace(part)
			if _, dup := seen[part]; part == "" || dup {
				continue
			}
			seen[part] = struct{}{}
			parts = append(parts, part)
		}
	}
	return parts
}

// Ints is [Strings] restricted to parts that parse as integers. Other parts
// are skipped.
func Ints(values url.Values, key string) []int {
	var numbers []int
	for _, part := range Strings(values, key) {
		if n, err := strconv.Atoi(part); err == nil {
			numbers = append(numbers, n)
		}
	}
	return numbers
}
