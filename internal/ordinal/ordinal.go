// Package ordinal names 1-based positions with Korean native ordinal words.
package ordinal

import "strconv"

const (
	suffix = "번째"
	first  = "첫" + suffix

	// contractedOne replaces the plain "하나" stem in 11, 21, ... 91.
	contractedOne = "한"
)

var units = [10]string{"", "하나", "두", "세", "네", "다섯", "여섯", "일곱", "여덟", "아홉"}

var tens = [10]string{"", "열", "스물", "서른", "마흔", "쉰", "예순", "일흔", "여든", "아흔"}

// Label returns the ordinal word for position. Positions below 1 yield an
// empty string and positions above 99 fall back to digits.
func Label(position int) string {
	switch {
	case position <= 0:
		return ""
	case position == 1:
		return first
	case position > 99:
		return strconv.Itoa(position) + suffix
	}

	ten := position / 10
	unit := position % 10

	if unit == 0 {
		return tens[ten] + suffix
	}
	if unit == 1 && ten > 0 {
		return tens[ten] + contractedOne + suffix
	}
	return tens[ten] + units[unit] + suffix
}
