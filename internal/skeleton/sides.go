package skeleton

import "strings"

// SideRule classifies a moving marker name as right-side or left-side.
// A name may be neither (midline markers), never both.
type SideRule interface {
	IsRight(name string) bool
	IsLeft(name string) bool
}

// SubstringRule classifies by substring: names containing "right" are
// right-side, names containing "left" are left-side. Suits skeletons with
// named bilateral markers ("right_wingtip").
type SubstringRule struct{}

func (SubstringRule) IsRight(name string) bool { return strings.Contains(name, "right") }
func (SubstringRule) IsLeft(name string) bool  { return strings.Contains(name, "left") }

// NumericSuffixRule classifies by the trailing integer of a marker name
// ("coxa3" → 3). Suits radially numbered appendages; the right/left sets
// can express a range split (1-4 vs 5-8) or a parity split.
type NumericSuffixRule struct {
	Right []int
	Left  []int
}

func (r NumericSuffixRule) IsRight(name string) bool {
	n, ok := trailingInt(name)
	return ok && containsInt(r.Right, n)
}

func (r NumericSuffixRule) IsLeft(name string) bool {
	n, ok := trailingInt(name)
	return ok && containsInt(r.Left, n)
}

// trailingInt extracts the decimal suffix of a name, if any.
func trailingInt(name string) (int, bool) {
	end := len(name)
	start := end
	for start > 0 && name[start-1] >= '0' && name[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n := 0
	for i := start; i < end; i++ {
		n = n*10 + int(name[i]-'0')
	}
	return n, true
}

func containsInt(set []int, n int) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}
