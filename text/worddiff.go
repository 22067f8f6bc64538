package text

// Op tags a word-level edit run
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// String returns the string representation of an Op
func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Run is a span of consecutive tokens sharing one Op.
type Run struct {
	Op     Op
	Tokens []Token
}

// Text returns the concatenated text of the run's tokens
func (r Run) Text() string {
	return joinTokens(r.Tokens)
}

// DiffWords aligns two token sequences by LCS over exact token text and
// returns the run-length merged edit script. Adjacent runs never share an Op.
func DiffWords(a, b []Token) []Run {
	table := buildTable(len(a), len(b), func(i, j int) bool {
		return a[i].Text == b[j].Text
	})

	type edit struct {
		op  Op
		tok Token
	}
	edits := make([]edit, 0, len(a)+len(b))

	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		matched := i > 0 && j > 0 && a[i-1].Text == b[j-1].Text
		switch WordStep(table.prefersRevised(i, j), matched) {
		case StepMatch:
			edits = append(edits, edit{OpEqual, a[i-1]})
			i--
			j--
		case StepInsert:
			edits = append(edits, edit{OpInsert, b[j-1]})
			j--
		default:
			edits = append(edits, edit{OpDelete, a[i-1]})
			i--
		}
	}

	var runs []Run
	for k := len(edits) - 1; k >= 0; k-- {
		e := edits[k]
		if n := len(runs); n > 0 && runs[n-1].Op == e.op {
			runs[n-1].Tokens = append(runs[n-1].Tokens, e.tok)
			continue
		}
		runs = append(runs, Run{Op: e.op, Tokens: []Token{e.tok}})
	}
	return runs
}

// DiffLineWords tokenizes two lines and diffs their tokens
func DiffLineWords(original, revised string) []Run {
	return DiffWords(Tokenize(original), Tokenize(revised))
}
