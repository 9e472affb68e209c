// Package highscore persists the best score as a decimal integer in a text file
package highscore

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyPath is returned when the store has no file to write
var ErrEmptyPath = errors.New("highscore file path is empty")

// FileStore reads and writes the highscore file
// The file holds one ASCII integer with no delimiter
type FileStore struct {
	Path string
}

// NewFileStore creates a store for path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored highscore
// A missing, unreadable, malformed or negative file reads as 0
func (s *FileStore) Load() int {
	if s.Path == "" {
		return 0
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Highscore read %s: %v", s.Path, err)
		}
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		log.Printf("Highscore file %s is malformed, starting from 0: %v", s.Path, err)
		return 0
	}
	if score < 0 {
		log.Printf("Highscore file %s holds negative value %d, starting from 0", s.Path, score)
		return 0
	}

	log.Printf("Loaded highscore %d from %s", score, s.Path)
	return score
}

// Save overwrites the file with score
func (s *FileStore) Save(score int) error {
	if s.Path == "" {
		return ErrEmptyPath
	}
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("write highscore %s: %w", s.Path, err)
	}
	log.Printf("Saved highscore %d to %s", score, s.Path)
	return nil
}
