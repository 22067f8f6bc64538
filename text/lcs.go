package text

// Step is a single backtracking decision over an LCS table.
type Step int

const (
	StepMatch  Step = iota // consume one element from each side as equal
	StepModify             // consume one line from each side as an edited pair
	StepInsert             // consume one element from the revised side
	StepDelete             // consume one element from the original side
)

// String returns the string representation of a Step
func (s Step) String() string {
	switch s {
	case StepMatch:
		return "match"
	case StepModify:
		return "modify"
	case StepInsert:
		return "insert"
	case StepDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// lcsTable holds LCS prefix lengths: cell (i, j) is the LCS length of
// a[0:i] and b[0:j]. Rows share one backing array.
type lcsTable struct {
	cols  int
	cells []int
}

// buildTable fills an (m+1)x(n+1) LCS table using eq as the match predicate.
func buildTable(m, n int, eq func(i, j int) bool) *lcsTable {
	t := &lcsTable{
		cols:  n + 1,
		cells: make([]int, (m+1)*(n+1)),
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if eq(i-1, j-1) {
				t.set(i, j, t.at(i-1, j-1)+1)
			} else {
				t.set(i, j, max(t.at(i-1, j), t.at(i, j-1)))
			}
		}
	}
	return t
}

func (t *lcsTable) at(i, j int) int {
	return t.cells[i*t.cols+j]
}

func (t *lcsTable) set(i, j, v int) {
	t.cells[i*t.cols+j] = v
}

// length returns the LCS length of the full sequences.
func (t *lcsTable) length() int {
	return t.cells[len(t.cells)-1]
}

// prefersRevised reports whether backtracking from (i, j) should consume
// from the revised side. Ties go to the revised side (insert over delete).
func (t *lcsTable) prefersRevised(i, j int) bool {
	if j == 0 {
		return false
	}
	if i == 0 {
		return true
	}
	return t.at(i, j-1) >= t.at(i-1, j)
}

// WordStep decides the backtracking step at (i, j) for the word differ.
// matched reports whether a[i-1] equals b[j-1].
func WordStep(revisedPreferred, matched bool) Step {
	if matched {
		return StepMatch
	}
	if revisedPreferred {
		return StepInsert
	}
	return StepDelete
}

// LineStep decides the backtracking step at (i, j) for the line differ.
// matched reports trimmed equality of the current lines; related reports
// whether the current lines are similar enough to pair. originalLeft is
// false once the original side is exhausted.
func LineStep(revisedPreferred, originalLeft, matched, related bool) Step {
	switch {
	case matched:
		return StepMatch
	case revisedPreferred && originalLeft && related:
		return StepModify
	case revisedPreferred || !originalLeft:
		return StepInsert
	default:
		return StepDelete
	}
}
