// Package docstore persists each record collection as a single JSON
// document on disk. There is no database underneath: every mutation is a
// load-modify-save of the whole file, serialized by a per-store mutex, and
// the save goes through a temp file plus rename so a failed write never
// leaves a half-written collection behind.
package docstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store owns one JSON document of type T. A missing file yields the init
// default; a file that exists but does not decode is reported as
// KindCorrupt rather than being clobbered.
type Store[T any] struct {
	mu   sync.Mutex
	path string
	init func() T
}

func NewStore[T any](path string, init func() T) *Store[T] {
	return &Store[T]{path: path, init: init}
}

// Update runs fn inside the store's critical section and persists the
// document afterwards. If fn returns an error nothing is written.
func (s *Store[T]) Update(fn func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.save(doc)
}

// View runs fn on a loaded copy of the document without writing back.
func (s *Store[T]) View(fn func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(&doc)
}

func (s *Store[T]) load() (T, error) {
	var doc T

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.init(), nil
		}
		return doc, wrapStoreErr(KindIO, "read collection file "+s.path, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, wrapStoreErr(KindCorrupt, "decode collection file "+s.path, err)
	}
	return doc, nil
}

func (s *Store[T]) save(doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return wrapStoreErr(KindIO, "encode collection file "+s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapStoreErr(KindIO, "create data directory "+dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return wrapStoreErr(KindIO, "create temp file for "+s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return wrapStoreErr(KindIO, "write temp file for "+s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return wrapStoreErr(KindIO, "close temp file for "+s.path, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return wrapStoreErr(KindIO, "replace collection file "+s.path, err)
	}
	return nil
}
