// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cohort

import (
	"fmt"
	"unicode/utf8"
)

// errCodeTooShort is returned for codes that cannot hold a letter and a year.
var errCodeTooShort = fmt.Errorf("El código de cohorte debe tener al menos %d caracteres", minCodeLength)

/*
nextCode advances the revision letter of a cohort code by one code point.

Description: The last four runes are the year and the rune six places from
the end is the revision letter. The rune between them is always rebuilt as
a hyphen. There is no wraparound: 'Z' becomes '['.

	FIIA-2024 -> FIIB-2024

Returns:
  - string: The code with the next letter
  - error: errCodeTooShort
*/
func nextCode(code string) (string, error) {
	runes := []rune(code)
	length := len(runes)
	if length < minCodeLength {
		return "", errCodeTooShort
	}

	prefix := string(runes[:length-minCodeLength])
	letter := runes[length-minCodeLength] + 1
	year := string(runes[length-yearLength:])

	return prefix + string(letter) + "-" + year, nil
}

// validCodeLength reports whether code is long enough to carry a revision letter.
func validCodeLength(code string) bool {
	return utf8.RuneCountInString(code) >= minCodeLength
}
