package compiler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultEntry names the expression of a source that is a single bare
// expression. It applies to every operation.
const DefaultEntry = "*"

var entryPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*|\*)\s*:\s*(.+)$`)

// parseTable splits source into named expressions. Each non-blank line that
// is not a # comment is either "name: expression" or, when it is the only
// line, a bare expression stored under DefaultEntry. "*: expression" names
// the default entry explicitly.
func parseTable(src string) (map[string]string, error) {
	entries := make(map[string]string)
	var bare []string
	var errz []error

	for n, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			bare = append(bare, line)
			continue
		}
		if _, dup := entries[m[1]]; dup {
			errz = append(errz, fmt.Errorf("%w: %q on line %d", ErrDuplicateEntry, m[1], n+1))
			continue
		}
		entries[m[1]] = strings.TrimSpace(m[2])
	}

	switch {
	case len(bare) == 1 && len(entries) == 0:
		entries[DefaultEntry] = bare[0]
	case len(bare) > 0:
		errz = append(errz, fmt.Errorf(
			"%w: %d lines are not \"name: expression\" entries",
			ErrValidationFailed, len(bare),
		))
	}

	if len(errz) > 0 {
		return nil, errors.Join(errz...)
	}
	if len(entries) == 0 {
		return nil, ErrNoInstructions
	}
	return entries, nil
}
