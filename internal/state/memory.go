package state

import "sort"

// MemoryStore implements Store in memory, for tests and dry runs.
type MemoryStore struct {
	branchStates map[string]BranchState
	openFiles    []string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{branchStates: make(map[string]BranchState)}
}

// GetBranchState returns the saved state for a branch, or nil when nothing is saved
func (s *MemoryStore) GetBranchState(branch string) (*BranchState, error) {
	bs, ok := s.branchStates[branch]
	if !ok {
		return nil, nil
	}
	return &bs, nil
}

// PutBranchState overwrites the saved state for a branch
func (s *MemoryStore) PutBranchState(branch string, bs *BranchState) error {
	s.branchStates[branch] = *bs
	return nil
}

// DeleteBranchState removes the saved state for a branch
func (s *MemoryStore) DeleteBranchState(branch string) error {
	delete(s.branchStates, branch)
	return nil
}

// ListBranches returns the names of all branches with saved state
func (s *MemoryStore) ListBranches() ([]string, error) {
	branches := make([]string, 0, len(s.branchStates))
	for branch := range s.branchStates {
		branches = append(branches, branch)
	}
	sort.Strings(branches)
	return branches, nil
}

// GetOpenFiles returns the live open-file list
func (s *MemoryStore) GetOpenFiles() ([]string, error) {
	return s.openFiles, nil
}

// SetOpenFiles replaces the live open-file list
func (s *MemoryStore) SetOpenFiles(files []string) error {
	s.openFiles = files
	return nil
}

// ClearAll removes all persisted state
func (s *MemoryStore) ClearAll() error {
	s.branchStates = make(map[string]BranchState)
	s.openFiles = nil
	return nil
}
