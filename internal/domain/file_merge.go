package domain

// Blob identifies a file version inside a commit tree
type Blob struct {
	Hash string
	Path string
}

// FileMerge is one textually conflicting file within a MergeScenario.
// Base is nil when the path does not exist in the base commit (add/add).
type FileMerge struct {
	Base     *Blob
	Expected Blob
	Left     Blob
	Right    Blob
	Scenario MergeScenario
}

// FileMergeMetainfo is the flat, fully stringified projection of a FileMerge.
// Empty base fields mean the FileMerge has no base blob.
type FileMergeMetainfo struct {
	MergeCommit      string
	ExpectedBlob     string
	ExpectedFilepath string
	BaseCommit       string
	BaseBlob         string
	BaseFilepath     string
	LeftCommit       string
	LeftBlob         string
	LeftFilepath     string
	RightCommit      string
	RightBlob        string
	RightFilepath    string
}

// NewFileMergeMetainfo flattens a FileMerge
func NewFileMergeMetainfo(fm FileMerge) FileMergeMetainfo {
	ms := fm.Scenario

	var baseBlob, baseFilepath string
	if fm.Base != nil {
		baseBlob = fm.Base.Hash
		baseFilepath = fm.Base.Path
	}

	return FileMergeMetainfo{
		MergeCommit:      ms.Expected.Hash,
		ExpectedBlob:     fm.Expected.Hash,
		ExpectedFilepath: fm.Expected.Path,
		BaseCommit:       ms.Base.Hash,
		BaseBlob:         baseBlob,
		BaseFilepath:     baseFilepath,
		LeftCommit:       ms.Left.Hash,
		LeftBlob:         fm.Left.Hash,
		LeftFilepath:     fm.Left.Path,
		RightCommit:      ms.Right.Hash,
		RightBlob:        fm.Right.Hash,
		RightFilepath:    fm.Right.Path,
	}
}

// Scenario returns the serializable scenario the metainfo belongs to
func (m FileMergeMetainfo) Scenario() SerializableMergeScenario {
	return SerializableMergeScenario{
		Base:     m.BaseCommit,
		Expected: m.MergeCommit,
		Left:     m.LeftCommit,
		Right:    m.RightCommit,
	}
}

// HasBase reports whether the metainfo carries a base blob
func (m FileMergeMetainfo) HasBase() bool {
	return m.BaseFilepath != ""
}
