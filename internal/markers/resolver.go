// Package markers resolves marker names to positional indices within an
// externally supplied column ordering. Input files may list markers in any
// order; resolution pins every downstream buffer to the schema's canonical
// layout regardless.
package markers

import "fmt"

// LookupError reports a marker name missing from a dataset's column names.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("markers: %q not found in column names", e.Name)
}

// Resolve maps each name in subset to its position within columnOrder.
// Output order tracks subset, not columnOrder, so the caller gets a fixed
// canonical layout however the input file ordered its columns.
func Resolve(subset, columnOrder []string) ([]int, error) {
	pos := make(map[string]int, len(columnOrder))
	for i, name := range columnOrder {
		if _, seen := pos[name]; !seen {
			pos[name] = i
		}
	}

	indices := make([]int, 0, len(subset))
	for _, name := range subset {
		i, ok := pos[name]
		if !ok {
			return nil, &LookupError{Name: name}
		}
		indices = append(indices, i)
	}
	return indices, nil
}
