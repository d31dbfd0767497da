// Package state persists per-branch working sets and the live open-file
// list for a repository.
//
// State lives in a single JSON document inside the repository's git
// directory. Two keys exist: "branchStates" (branch name to saved file
// list) and "openFiles" (the live open set). Writes replace the whole
// document atomically via temp file + rename; the two keys are updated
// independently with no cross-key transactionality.
package state

// BranchState is the saved working set for one branch.
// A branch with nothing saved has no entry at all; an empty file list is
// never persisted.
type BranchState struct {
	// Files is the ordered, deduplicated list of absolute file paths
	Files []string `json:"files"`
}

// Document is the on-disk shape of the state file
type Document struct {
	// BranchStates maps branch names to their saved working sets
	BranchStates map[string]BranchState `json:"branchStates"`

	// OpenFiles is the live open-file list for the active branch
	OpenFiles []string `json:"openFiles,omitempty"`
}

// newDocument returns an empty document ready for writes
func newDocument() *Document {
	return &Document{BranchStates: make(map[string]BranchState)}
}
