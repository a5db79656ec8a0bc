package document

import "strings"

// Extract returns the contiguous span of lines belonging to the section whose
// header sits at line start: the header line itself, then every following line
// that is blank or indented, stopping at the first non-blank non-indented
// line. This trusts consistent indentation rather than real block parsing.
func Extract(lines []string, start int) string {
	if start < 0 || start >= len(lines) {
		return ""
	}
	end := End(lines, start)
	return strings.Join(lines[start:end], "\n")
}

// End returns the exclusive end line of the section starting at start.
func End(lines []string, start int) int {
	end := start + 1
	for end < len(lines) {
		line := lines[end]
		if trimmed := strings.TrimSpace(line); trimmed != "" && !isIndented(line) {
			break
		}
		end++
	}
	return end
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}
