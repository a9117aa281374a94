package domain

// Commit is a reference to a commit owned by the version-control store.
// Values are only ever produced by a HistoryReader.
type Commit struct {
	Hash         string
	ParentHashes []string
	TreeHash     string
}

// IsMerge reports whether the commit is a binary merge (exactly two parents)
func (c Commit) IsMerge() bool {
	return len(c.ParentHashes) == 2
}

// MergeScenario is one historical three-way merge.
// Expected is the recorded merge commit, Left and Right its parents in
// recorded order and Base their merge base.
type MergeScenario struct {
	Base     Commit
	Expected Commit
	Left     Commit
	Right    Commit
}

// ToSerializable projects the scenario onto its four commit hashes
func (ms MergeScenario) ToSerializable() SerializableMergeScenario {
	return SerializableMergeScenario{
		Base:     ms.Base.Hash,
		Expected: ms.Expected.Hash,
		Left:     ms.Left.Hash,
		Right:    ms.Right.Hash,
	}
}

// Commits returns the four commits in base, left, right, expected order
func (ms MergeScenario) Commits() []Commit {
	return []Commit{ms.Base, ms.Left, ms.Right, ms.Expected}
}

// SerializableMergeScenario holds the hex digests of a MergeScenario.
// Resolving it back into a MergeScenario requires a repository.
type SerializableMergeScenario struct {
	Base     string `json:"base"`
	Expected string `json:"expected"`
	Left     string `json:"left"`
	Right    string `json:"right"`
}
