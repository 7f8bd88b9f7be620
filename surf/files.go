// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package surf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creachadair/jsurf/tree"
)

// FileError is the concrete type of errors reported by file operations.
type FileError struct {
	Op   string // "read", "write", or "stat"
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }

// Unwrap supports error wrapping.
func (e *FileError) Unwrap() error { return e.Err }

// ReadFile returns the complete text of the file at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// WriteFile replaces the contents of the file at path with text, creating the
// file if it does not exist.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// FileInfo describes a document file.
type FileInfo struct {
	Path    string
	Name    string // base name of Path
	Size    int64
	ModTime time.Time
	Content string
}

// Stat reads the file at path and reports its metadata and contents.
func Stat(path string) (*FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &FileError{Op: "stat", Path: path, Err: err}
	}
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		Path:    path,
		Name:    filepath.Base(path),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		Content: text,
	}, nil
}

// IsJSONFile reports whether path names a file the editor treats as JSON,
// based on its extension alone.
func IsJSONFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".info":
		return true
	}
	return false
}

// ParseFile reads the file at path and parses its contents as strict JSON.
// A parse failure is reported in the result, not as an error.
func (s *Service) ParseFile(path string) (tree.ParseResult, error) {
	text, err := ReadFile(path)
	if err != nil {
		return tree.ParseResult{}, err
	}
	s.log().Debug("parse file", "path", path, "size", len(text))
	return s.ParseToTree(text), nil
}

// SaveFile renders root and writes it to the file at path.
func (s *Service) SaveFile(path string, root *tree.Node) error {
	text, err := s.SerializeFromTree(root)
	if err != nil {
		return err
	}
	if err := WriteFile(path, text); err != nil {
		return err
	}
	s.log().Debug("saved file", "path", path, "size", len(text))
	return nil
}
