package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// StateFileName is the name of the state document inside the git directory
const StateFileName = ".worksets_state"

// Store provides an interface for persisting branch working sets.
type Store interface {
	// GetBranchState returns the saved state for a branch, or nil when
	// nothing is saved.
	GetBranchState(branch string) (*BranchState, error)

	// PutBranchState overwrites the saved state for a branch.
	PutBranchState(branch string, bs *BranchState) error

	// DeleteBranchState removes the saved state for a branch. Removing an
	// absent entry is a no-op.
	DeleteBranchState(branch string) error

	// ListBranches returns the names of all branches with saved state,
	// sorted for stable output.
	ListBranches() ([]string, error)

	// GetOpenFiles returns the live open-file list.
	GetOpenFiles() ([]string, error)

	// SetOpenFiles replaces the live open-file list.
	SetOpenFiles(files []string) error

	// ClearAll removes all persisted state.
	ClearAll() error
}

// FileStore implements Store using a JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewFileStoreInGitDir creates a store backed by the state document inside
// the given git directory.
func NewFileStoreInGitDir(gitDir string) *FileStore {
	return &FileStore{path: filepath.Join(gitDir, StateFileName)}
}

func (s *FileStore) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newDocument(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if doc.BranchStates == nil {
		doc.BranchStates = make(map[string]BranchState)
	}
	return &doc, nil
}

// save writes the document atomically using temp file + rename, so a
// concurrent reader never observes a partial write.
func (s *FileStore) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, StateFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// GetBranchState returns the saved state for a branch, or nil when nothing is saved
func (s *FileStore) GetBranchState(branch string) (*BranchState, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	bs, ok := doc.BranchStates[branch]
	if !ok {
		return nil, nil
	}
	return &bs, nil
}

// PutBranchState overwrites the saved state for a branch
func (s *FileStore) PutBranchState(branch string, bs *BranchState) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.BranchStates[branch] = *bs
	return s.save(doc)
}

// DeleteBranchState removes the saved state for a branch
func (s *FileStore) DeleteBranchState(branch string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.BranchStates[branch]; !ok {
		return nil
	}
	delete(doc.BranchStates, branch)
	return s.save(doc)
}

// ListBranches returns the names of all branches with saved state
func (s *FileStore) ListBranches() ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	branches := make([]string, 0, len(doc.BranchStates))
	for branch := range doc.BranchStates {
		branches = append(branches, branch)
	}
	sort.Strings(branches)
	return branches, nil
}

// GetOpenFiles returns the live open-file list
func (s *FileStore) GetOpenFiles() ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.OpenFiles, nil
}

// SetOpenFiles replaces the live open-file list
func (s *FileStore) SetOpenFiles(files []string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.OpenFiles = files
	return s.save(doc)
}

// ClearAll removes all persisted state
func (s *FileStore) ClearAll() error {
	return s.save(newDocument())
}
