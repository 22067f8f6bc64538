package text

// Tag identifies the kind of a line record
type Tag int

const (
	TagEqual Tag = iota
	TagDelete
	TagInsert
	TagModify
)

// String returns the string representation of a Tag
func (t Tag) String() string {
	switch t {
	case TagEqual:
		return "equal"
	case TagDelete:
		return "delete"
	case TagInsert:
		return "insert"
	case TagModify:
		return "modify"
	default:
		return "unknown"
	}
}

// Line is one side of a line record: the line text and its 0-based index
// in its source text.
type Line struct {
	Index int
	Text  string
}

// Record is a line-level diff record. The concrete type is one of
// EqualRecord, DeleteRecord, InsertRecord or ModifyRecord.
type Record interface {
	Tag() Tag
	isRecord()
}

// EqualRecord is a line present in both texts (after trimming).
type EqualRecord struct {
	Original Line
	Revised  Line
}

// DeleteRecord is a line present only in the original text.
type DeleteRecord struct {
	Original Line
}

// InsertRecord is a line present only in the revised text.
type InsertRecord struct {
	Revised Line
}

// ModifyRecord pairs an original line with its edited revision.
// Runs is the word-level diff between the untrimmed line texts.
type ModifyRecord struct {
	Original Line
	Revised  Line
	Runs     []Run
}

func (EqualRecord) Tag() Tag  { return TagEqual }
func (DeleteRecord) Tag() Tag { return TagDelete }
func (InsertRecord) Tag() Tag { return TagInsert }
func (ModifyRecord) Tag() Tag { return TagModify }

func (EqualRecord) isRecord()  {}
func (DeleteRecord) isRecord() {}
func (InsertRecord) isRecord() {}
func (ModifyRecord) isRecord() {}

// OriginalSide returns the original line carried by r, if any
func OriginalSide(r Record) (Line, bool) {
	switch rec := r.(type) {
	case EqualRecord:
		return rec.Original, true
	case DeleteRecord:
		return rec.Original, true
	case ModifyRecord:
		return rec.Original, true
	default:
		return Line{}, false
	}
}

// RevisedSide returns the revised line carried by r, if any
func RevisedSide(r Record) (Line, bool) {
	switch rec := r.(type) {
	case EqualRecord:
		return rec.Revised, true
	case InsertRecord:
		return rec.Revised, true
	case ModifyRecord:
		return rec.Revised, true
	default:
		return Line{}, false
	}
}
