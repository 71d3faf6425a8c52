package git

import "strings"

// parseVersionOutput extracts "major.minor.patch" from `git version` output such as
// "git version 2.39.3 (Apple Git-146)" or "git version 2.41.0.windows.1".
func parseVersionOutput(output string) (string, bool) {
	s := strings.TrimSpace(output)
	if idx := strings.Index(s, "git version"); idx >= 0 {
		s = strings.TrimSpace(s[idx+len("git version"):])
	}

	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	parts := strings.Split(strings.Trim(s[:end], "."), ".")
	if len(parts) < 2 || parts[0] == "" {
		return "", false
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return strings.Join(parts[:3], "."), true
}
