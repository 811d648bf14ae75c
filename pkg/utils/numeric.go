package utils

import (
	"strings"
	"unicode"
)

/**************************************************************************************************
** decimalPoints holds every rune some locale uses to separate the integer part of a number from
** its fraction (or to group digits): full stop, comma, apostrophe, space, middle dot, thin
** space, narrow no-break space, dot above, arabic decimal and thousands separators and the APL
** decimal separator key symbol.
**************************************************************************************************/
var decimalPoints = map[rune]struct{}{
	'.':      {},
	',':      {},
	'\'':     {},
	' ':      {},
	'\u00B7': {},
	'\u2009': {},
	'\u202F': {},
	'\u02D9': {},
	'\u066B': {},
	'\u066C': {},
	'\u2396': {},
}

/**************************************************************************************************
** IsDecimalPoint reports whether r is used as a decimal separator by some locale.
**************************************************************************************************/
func IsDecimalPoint(r rune) bool {
	_, ok := decimalPoints[r]
	return ok
}

/**************************************************************************************************
** IsNumeric reports whether s only contains signs, exponent markers, decimal separators and
** digits. It does not validate the number's shape: "1-e," is numeric by this definition.
**************************************************************************************************/
func IsNumeric(s string) bool {
	for _, r := range s {
		if r != '+' && r != '-' && unicode.ToLower(r) != 'e' && !IsDecimalPoint(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

/**************************************************************************************************
** ConvertNumericString rewrites every foreign decimal separator of a numeric string to
** decimalPoint. Non numeric strings are left untouched.
**
** @param s - Value to normalise
** @param decimalPoint - Separator of the target locale
** @return string - Normalised value
** @return bool - True if s was changed
**************************************************************************************************/
func ConvertNumericString(s string, decimalPoint rune) (string, bool) {
	if !IsNumeric(s) {
		return s, false
	}
	return replaceDecimalPoints(s, decimalPoint, func(r rune) bool { return r != decimalPoint })
}

/**************************************************************************************************
** ConvertDecimalPoints rewrites decimal separators to decimalPoint in any string (e.g. a
** rectangle "0,5 0,5 10,25 10,25") unless it already contains decimalPoint. Spaces are kept since
** they delimit fields.
**
** @param s - Value to normalise
** @param decimalPoint - Separator of the target locale
** @return string - Normalised value
** @return bool - True if s was changed
**************************************************************************************************/
func ConvertDecimalPoints(s string, decimalPoint rune) (string, bool) {
	if strings.ContainsRune(s, decimalPoint) {
		return s, false
	}
	return replaceDecimalPoints(s, decimalPoint, func(r rune) bool { return r != ' ' })
}

func replaceDecimalPoints(s string, decimalPoint rune, eligible func(rune) bool) (string, bool) {
	changed := false
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != decimalPoint && eligible(r) && IsDecimalPoint(r) {
			r = decimalPoint
			changed = true
		}
		b.WriteRune(r)
	}
	if !changed {
		return s, false
	}
	return b.String(), true
}
