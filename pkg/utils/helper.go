package utils

/**************************************************************************************************
** AreArraysEqual checks if two string arrays contain the same elements, regardless of their order.
** Uses frequency counting to ensure elements appear the same number of times in both arrays.
**
** @param arr1 - First array to compare
** @param arr2 - Second array to compare
** @return bool - True if arrays contain the same elements with same frequencies
**************************************************************************************************/
func AreArraysEqual(arr1, arr2 []string) bool {
	if len(arr1) != len(arr2) {
		return false
	}

	/******************************************************************************************
	** A single frequency map is enough: count up on the first array and down on the second.
	******************************************************************************************/
	freq := make(map[string]int, len(arr1))
	for _, item := range arr1 {
		freq[item]++
	}
	for _, item := range arr2 {
		freq[item]--
		if freq[item] < 0 {
			return false
		}
	}

	for _, count := range freq {
		if count != 0 {
			return false
		}
	}
	return true
}

/**************************************************************************************************
** RemoveEmptyStrings removes all empty strings from a string array and returns a new array
** without the empty strings. Preserves the order of non-empty strings.
**
** @param arr - Array to process
** @return []string - New array containing only non-empty strings
**************************************************************************************************/
func RemoveEmptyStrings(arr []string) []string {
	result := make([]string, 0, len(arr))

	for _, str := range arr {
		if str != "" {
			result = append(result, str)
		}
	}

	return result
}

/**************************************************************************************************
** Contains checks if a string is present in a slice of strings.
**
** @param list - Slice of strings to search
** @param s - String to search for
** @return bool - True if string is present in slice, false otherwise
**************************************************************************************************/
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

/**************************************************************************************************
** CoerceMultiple rounds value up to the nearest multiple of multiple. Values already on a
** multiple are returned unchanged.
**
** @param value - Non-negative value to round
** @param multiple - Strictly positive step
** @return int - Smallest multiple of multiple that is >= value
**************************************************************************************************/
func CoerceMultiple(value, multiple int) int {
	return (value + multiple - 1) / multiple * multiple
}
