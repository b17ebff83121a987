package utils

// ToStringSlice converts a decoded JSON array to strings. ok is false if any
// element is not a string; the returned slice then holds only the strings seen.
func ToStringSlice(slice []any) (out []string, ok bool) {
	out = make([]string, 0, len(slice))
	ok = true
	for _, v := range slice {
		s, isString := v.(string)
		if !isString {
			ok = false
			continue
		}
		out = append(out, s)
	}
	return out, ok
}
