package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"schemadoc/internal/document"
	"schemadoc/internal/domain"
	"schemadoc/internal/port"
)

// QuickValidate performs structural sanity checks without building a parse
// tree. Empty content is an error; tab characters, control characters, zero
// detected sections, and suspicious indentation are warnings.
func (e *Engine) QuickValidate(text string) *domain.ValidationReport {
	start := time.Now()
	ev := port.ParseEvent{OpID: uuid.New(), Operation: "quick_validate", ContentBytes: len(text)}
	e.logger.ParseStarted(ev)

	report := &domain.ValidationReport{Errors: []string{}, Warnings: []string{}}
	if strings.TrimSpace(text) == "" {
		report.Errors = append(report.Errors, "content is empty")
		ev.Elapsed = time.Since(start)
		e.logger.ParseCompleted(ev)
		return report
	}

	lines := document.SplitLines(text)
	for i, line := range lines {
		if strings.Contains(line, "\t") {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("line %d: tab characters (use spaces for indentation)", i+1))
		}
		if hasControlChars(line) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("line %d: control characters", i+1))
		}
	}

	if document.IndexLines(lines).Len() == 0 {
		report.Warnings = append(report.Warnings, "no top-level sections detected")
	}

	report.Warnings = append(report.Warnings, indentWarnings(lines)...)

	ev.Elapsed = time.Since(start)
	e.logger.ParseCompleted(ev)
	return report
}

// indentWarnings checks indentation consistency: the GCD of every observed
// indentation width should be the document's indent unit. A unit above 4 is
// suspiciously wide; a unit of 1 across mixed widths means the widths do not
// share a step.
func indentWarnings(lines []string) []string {
	unit := 0
	widths := map[int]struct{}{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent == 0 {
			continue
		}
		widths[indent] = struct{}{}
		unit = gcd(unit, indent)
	}

	switch {
	case unit > 4:
		return []string{fmt.Sprintf("large indentation (%d spaces)", unit)}
	case unit == 1 && len(widths) > 1:
		return []string{"inconsistent indentation"}
	default:
		return nil
	}
}

// hasControlChars reports non-printable characters other than tab, which is
// warned about separately.
func hasControlChars(line string) bool {
	for _, r := range line {
		if r < 0x20 && r != '\t' {
			return true
		}
	}
	return false
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
