package service

// truncate cuts s to max characters and appends "..." when it was longer.
// Characters are runes so multi-byte text is never split mid-sequence.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// prefix returns at most max characters of s, without a marker.
func prefix(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
