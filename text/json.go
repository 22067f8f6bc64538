package text

import (
	"encoding/json"
	"fmt"
)

type jsonLine struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type jsonRun struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

type jsonRecord struct {
	Tag      string    `json:"tag"`
	Original *jsonLine `json:"original,omitempty"`
	Revised  *jsonLine `json:"revised,omitempty"`
	Runs     []jsonRun `json:"runs,omitempty"`
}

type jsonStats struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

type jsonResult struct {
	Records []jsonRecord `json:"records"`
	Stats   jsonStats    `json:"stats"`
}

func toJSONLine(l Line) *jsonLine {
	return &jsonLine{Index: l.Index, Text: l.Text}
}

// MarshalJSON encodes the result with string tags for records and runs
func (r *Result) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		Records: make([]jsonRecord, 0, len(r.Records)),
		Stats: jsonStats{
			Added:    r.Stats.Added,
			Removed:  r.Stats.Removed,
			Modified: r.Stats.Modified,
		},
	}

	for _, rec := range r.Records {
		jr := jsonRecord{Tag: rec.Tag().String()}
		if orig, ok := OriginalSide(rec); ok {
			jr.Original = toJSONLine(orig)
		}
		if rev, ok := RevisedSide(rec); ok {
			jr.Revised = toJSONLine(rev)
		}
		if mod, ok := rec.(ModifyRecord); ok {
			jr.Runs = make([]jsonRun, len(mod.Runs))
			for i, run := range mod.Runs {
				jr.Runs[i] = jsonRun{Tag: run.Op.String(), Text: run.Text()}
			}
		}
		out.Records = append(out.Records, jr)
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a result produced by MarshalJSON
func (r *Result) UnmarshalJSON(data []byte) error {
	var in jsonResult
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	records := make([]Record, 0, len(in.Records))
	for i, jr := range in.Records {
		rec, err := jr.record()
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	r.Records = records
	r.Stats = Stats{
		Added:    in.Stats.Added,
		Removed:  in.Stats.Removed,
		Modified: in.Stats.Modified,
	}
	return nil
}

func (jr jsonRecord) record() (Record, error) {
	original := func() (Line, error) {
		if jr.Original == nil {
			return Line{}, fmt.Errorf("%s record missing original line", jr.Tag)
		}
		return Line{Index: jr.Original.Index, Text: jr.Original.Text}, nil
	}
	revised := func() (Line, error) {
		if jr.Revised == nil {
			return Line{}, fmt.Errorf("%s record missing revised line", jr.Tag)
		}
		return Line{Index: jr.Revised.Index, Text: jr.Revised.Text}, nil
	}

	switch jr.Tag {
	case "equal":
		orig, err := original()
		if err != nil {
			return nil, err
		}
		rev, err := revised()
		if err != nil {
			return nil, err
		}
		return EqualRecord{Original: orig, Revised: rev}, nil
	case "delete":
		orig, err := original()
		if err != nil {
			return nil, err
		}
		return DeleteRecord{Original: orig}, nil
	case "insert":
		rev, err := revised()
		if err != nil {
			return nil, err
		}
		return InsertRecord{Revised: rev}, nil
	case "modify":
		orig, err := original()
		if err != nil {
			return nil, err
		}
		rev, err := revised()
		if err != nil {
			return nil, err
		}
		runs := make([]Run, len(jr.Runs))
		for i, run := range jr.Runs {
			op, err := parseOp(run.Tag)
			if err != nil {
				return nil, err
			}
			runs[i] = Run{Op: op, Tokens: Tokenize(run.Text)}
		}
		return ModifyRecord{Original: orig, Revised: rev, Runs: runs}, nil
	default:
		return nil, fmt.Errorf("unknown record tag %q", jr.Tag)
	}
}

func parseOp(s string) (Op, error) {
	switch s {
	case "equal":
		return OpEqual, nil
	case "delete":
		return OpDelete, nil
	case "insert":
		return OpInsert, nil
	default:
		return 0, fmt.Errorf("unknown run tag %q", s)
	}
}
