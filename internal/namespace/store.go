// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// ManifestName is the file name of an object's contract manifest.
	ManifestName = ".self"

	maxLinkHops = 255
)

type (
	// Entry is one directory entry as seen without following links.
	Entry struct {
		Name   string
		Path   string
		IsDir  bool
		IsLink bool
	}

	// Store is the read-only view of the namespace the resolver and the
	// validation stages work against.
	Store interface {
		// Stat describes path, following links.
		Stat(path string) (fs.FileInfo, error)
		// ReadDir lists dir sorted by name.
		ReadDir(dir string) ([]Entry, error)
		// ReadManifest returns the manifest of dir. found is false when dir has
		// no manifest, which is not an error.
		ReadManifest(dir string) (data []byte, found bool, err error)
		// ResolveLink returns the absolute path with every symbolic link
		// along it followed. A path free of links resolves to itself.
		ResolveLink(path string) (string, error)
	}

	aferoStore struct {
		fs afero.Fs
	}
)

// NewStore returns a Store backed by fsys.
func NewStore(fsys afero.Fs) Store {
	return &aferoStore{fs: fsys}
}

// OSStore returns a read-only Store over the host filesystem.
func OSStore() Store {
	return NewStore(afero.NewReadOnlyFs(afero.NewOsFs()))
}

func (s *aferoStore) Stat(path string) (fs.FileInfo, error) {
	return s.fs.Stat(path)
}

func (s *aferoStore) ReadDir(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Name:   info.Name(),
			Path:   filepath.Join(dir, info.Name()),
			IsDir:  info.IsDir(),
			IsLink: info.Mode()&fs.ModeSymlink != 0,
		})
	}
	return entries, nil
}

func (s *aferoStore) ReadManifest(dir string) ([]byte, bool, error) {
	data, err := afero.ReadFile(s.fs, filepath.Join(dir, ManifestName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *aferoStore) ResolveLink(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	lstater, ok := s.fs.(afero.Lstater)
	if !ok {
		return abs, nil
	}
	reader, _ := s.fs.(afero.LinkReader)

	sep := string(filepath.Separator)
	dest := filepath.VolumeName(abs) + sep
	rest := abs[len(dest):]
	hops := 0
	for rest != "" {
		var comp string
		comp, rest, _ = strings.Cut(rest, sep)
		switch comp {
		case "", ".":
			continue
		case "..":
			dest = filepath.Dir(dest)
			continue
		}

		next := filepath.Join(dest, comp)
		info, _, err := lstater.LstatIfPossible(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			dest = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &LinkCycleError{Path: path}
		}
		if reader == nil {
			return "", fmt.Errorf("read link %s: %w", next, afero.ErrNoReadlink)
		}
		target, err := reader.ReadlinkIfPossible(next)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(target) {
			dest = filepath.VolumeName(target) + sep
			target = target[len(filepath.VolumeName(target)):]
		}
		if rest != "" {
			target += sep + rest
		}
		rest = target
	}
	return filepath.Clean(dest), nil
}
