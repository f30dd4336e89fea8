package params

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDir is where trees are stored unless told otherwise.
	DefaultDir = "trees"
	// Extension is appended to a tree's name to get its file name.
	Extension = ".json"
)

// Store keeps one record file per named tree in a directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{Dir: dir}
}

// Path is the file holding the tree called name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name+Extension)
}

// Exists reports whether a tree called name has been saved.
func (s *Store) Exists(name string) (bool, error) {
	if err := checkName(name); err != nil {
		return false, err
	}

	_, err := os.Stat(s.Path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Load reads the tree called name. All failures are *LoadError.
func (s *Store) Load(name string) (Params, error) {
	if err := checkName(name); err != nil {
		return Params{}, &LoadError{Name: name, Err: err}
	}

	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return Params{}, &LoadError{Name: name, Err: err}
	}

	p, err := FromRecord(data)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Name = name
			return Params{}, loadErr
		}
		return Params{}, &LoadError{Name: name, Err: err}
	}

	return p, nil
}

// Save writes p as the tree called name, replacing any existing record.
// All failures are *SaveError.
func (s *Store) Save(name string, p Params) error {
	if err := checkName(name); err != nil {
		return &SaveError{Name: name, Err: err}
	}

	if err := p.Validate(); err != nil {
		return &SaveError{Name: name, Err: err}
	}

	data, err := ToRecord(p)
	if err != nil {
		return &SaveError{Name: name, Err: err}
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return &SaveError{Name: name, Err: fmt.Errorf("creating %s: %w", s.Dir, err)}
	}

	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return &SaveError{Name: name, Err: err}
	}

	return nil
}

// checkName rejects names which would escape the store directory.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
