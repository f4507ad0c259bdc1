// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/irnix/irnix/internal/namespace"
)

type (
	// memStore is an in-memory namespace.Store with symbolic links.
	memStore struct {
		files map[string]string
		dirs  map[string]bool
		links map[string]string
	}

	memInfo struct {
		name string
		dir  bool
	}
)

var _ namespace.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		files: make(map[string]string),
		dirs:  map[string]bool{string(filepath.Separator): true},
		links: make(map[string]string),
	}
}

func (s *memStore) mkdir(path string) *memStore {
	for p := filepath.Clean(path); !s.dirs[p]; p = filepath.Dir(p) {
		s.dirs[p] = true
	}
	return s
}

func (s *memStore) file(path, content string) *memStore {
	s.mkdir(filepath.Dir(path))
	s.files[filepath.Clean(path)] = content
	return s
}

func (s *memStore) link(path, target string) *memStore {
	s.mkdir(filepath.Dir(path))
	s.links[filepath.Clean(path)] = filepath.Clean(target)
	return s
}

func (s *memStore) Stat(path string) (fs.FileInfo, error) {
	resolved, err := s.ResolveLink(path)
	if err != nil {
		return nil, err
	}
	switch {
	case s.dirs[resolved]:
		return memInfo{name: filepath.Base(path), dir: true}, nil
	case hasKey(s.files, resolved):
		return memInfo{name: filepath.Base(path)}, nil
	default:
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
}

func (s *memStore) ReadDir(dir string) ([]namespace.Entry, error) {
	resolved, err := s.ResolveLink(dir)
	if err != nil {
		return nil, err
	}
	if !s.dirs[resolved] {
		return nil, &fs.PathError{Op: "readdir", Path: dir, Err: fs.ErrNotExist}
	}
	var entries []namespace.Entry
	add := func(p string, isDir, isLink bool) {
		if p != resolved && filepath.Dir(p) == resolved {
			name := filepath.Base(p)
			entries = append(entries, namespace.Entry{Name: name, Path: filepath.Join(dir, name), IsDir: isDir, IsLink: isLink})
		}
	}
	for p := range s.dirs {
		add(p, true, false)
	}
	for p := range s.files {
		add(p, false, false)
	}
	for p := range s.links {
		add(p, false, true)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (s *memStore) ReadManifest(dir string) ([]byte, bool, error) {
	resolved, err := s.ResolveLink(dir)
	if err != nil {
		return nil, false, err
	}
	content, ok := s.files[filepath.Join(resolved, namespace.ManifestName)]
	if !ok {
		return nil, false, nil
	}
	return []byte(content), true, nil
}

func (s *memStore) ResolveLink(path string) (string, error) {
	current := filepath.Clean(path)
	for hops := 0; ; hops++ {
		target, ok := s.links[current]
		if !ok {
			return current, nil
		}
		if hops > 16 {
			return "", &namespace.LinkCycleError{Path: path}
		}
		current = target
	}
}

func hasKey(m map[string]string, k string) bool {
	_, ok := m[k]
	return ok
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return 0 }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o755
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }
