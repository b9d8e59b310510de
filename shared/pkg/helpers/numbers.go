package helpers

import (
	"strconv"
	"strings"

	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/digits"
)

// NormalizePersianNumbers converts Persian/Arabic numerals to Latin
func NormalizePersianNumbers(input string) string {
	return digits.ToEnglish(input)
}

// ParseInt parses a string to int after normalizing Persian numbers
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(NormalizePersianNumbers(s)))
}

// ParseInt64 parses a string to int64 after normalizing Persian numbers
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(NormalizePersianNumbers(s)), 10, 64)
}
