// Package digits substitutes ASCII digits with Persian digit glyphs and back.
//
// Conversion is per rune; anything that is not a digit passes through
// untouched, so the functions are safe on arbitrary text.
package digits

import "strings"

// Persian digit glyphs: ۰۱۲۳۴۵۶۷۸۹
// Arabic-Indic glyphs:  ٠١٢٣٤٥٦٧٨٩
const (
	persianZero = '۰'
	arabicZero  = '٠'
)

// ToPersian replaces every ASCII digit in s with its Persian glyph.
func ToPersian(s string) string {
	if !strings.ContainsFunc(s, isASCIIDigit) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s) * 2)
	for _, char := range s {
		if isASCIIDigit(char) {
			result.WriteRune(persianZero + (char - '0'))
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

// ToEnglish replaces every Persian or Arabic-Indic digit in s with its ASCII
// digit. Pasted text from Arabic keyboards is common enough that both
// Eastern sets are accepted.
func ToEnglish(s string) string {
	if !strings.ContainsFunc(s, isEasternDigit) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))
	for _, char := range s {
		switch {
		case char >= persianZero && char <= persianZero+9:
			result.WriteRune('0' + (char - persianZero))
		case char >= arabicZero && char <= arabicZero+9:
			result.WriteRune('0' + (char - arabicZero))
		default:
			result.WriteRune(char)
		}
	}
	return result.String()
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isEasternDigit(r rune) bool {
	return (r >= persianZero && r <= persianZero+9) || (r >= arabicZero && r <= arabicZero+9)
}
