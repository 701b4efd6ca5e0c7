package usecase

import "strings"

// stripCodeFence removes surrounding markdown code-fence markers from
// oracle output so the JSON inside can be parsed. Output without fences
// passes through unchanged.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop a language tag such as "json" on the opening fence line
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first != "" && !strings.ContainsAny(first, "{}[]") {
			s = s[idx+1:]
		}
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
