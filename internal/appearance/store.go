// Package appearance persists the public pages' background setting.
package appearance

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

const (
	TypeDefault = "default"
	TypeColor   = "color"
	TypeImage   = "image"
	TypeVideo   = "video"
)

type Background struct {
	Type  string `json:"type"`  // default, color, image or video
	Value string `json:"value"` // hex color, or filename under the upload dir
}

// Store keeps the background setting in a small JSON file. One mutex
// serializes writers; the file is tiny and read rarely.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get reads the current background, falling back to the default when the
// file does not exist yet.
func (s *Store) Get() (Background, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Background{Type: TypeDefault}, nil
		}
		return Background{}, fmt.Errorf("read background file: %w", err)
	}

	var bg Background
	if err := json.Unmarshal(b, &bg); err != nil {
		return Background{}, fmt.Errorf("decode background file: %w", err)
	}
	return bg, nil
}

func (s *Store) Set(bg Background) error {
	if !ValidType(bg.Type) {
		return fmt.Errorf("unknown background type %q", bg.Type)
	}

	b, err := json.Marshal(bg)
	if err != nil {
		return fmt.Errorf("encode background: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write background file: %w", err)
	}
	return nil
}

func ValidType(t string) bool {
	switch t {
	case TypeDefault, TypeColor, TypeImage, TypeVideo:
		return true
	}
	return false
}
