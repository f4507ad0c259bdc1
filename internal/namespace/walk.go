// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"errors"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

type walker struct {
	store  Store
	active map[string]struct{}
	names  []string
}

// ListMethods walks the namespace below root and returns every invocable
// name, sorted. Entries whose names contain a dot are skipped. Linked
// directories are followed, but a directory is never re-entered while it is
// being listed. An interface contributes the contract names of its manifest
// instead of its entries. Files directly under root are not methods.
func ListMethods(store Store, root string) ([]string, error) {
	w := &walker{store: store, active: make(map[string]struct{})}
	if err := w.walk(root, nil); err != nil {
		return nil, err
	}
	sort.Strings(w.names)
	return w.names, nil
}

func (w *walker) walk(dir string, prefix []string) error {
	canonical, err := w.store.ResolveLink(dir)
	if err != nil {
		return err
	}
	if _, busy := w.active[canonical]; busy {
		slog.Debug("skipping directory already being listed", "path", dir)
		return nil
	}
	w.active[canonical] = struct{}{}
	defer delete(w.active, canonical)

	entries, err := w.store.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if strings.Contains(e.Name, Separator) {
			continue
		}

		isDir := e.IsDir
		if e.IsLink {
			var ok bool
			isDir, ok, err = w.followLink(e)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}

		name := append(append([]string(nil), prefix...), e.Name)
		switch {
		case isDir && IsInterfaceName(e.Name):
			set, found, err := LoadManifest(w.store, e.Path)
			if err != nil {
				return err
			}
			if !found {
				return &InterfaceManifestError{Path: e.Path}
			}
			object := strings.Join(name, Separator)
			for _, method := range set.Names() {
				w.names = append(w.names, object+Separator+method)
			}
		case isDir:
			if err := w.walk(e.Path, name); err != nil {
				return err
			}
		case len(prefix) > 0:
			w.names = append(w.names, strings.Join(name, Separator))
		}
	}
	return nil
}

// followLink reports whether a linked entry is a directory. ok is false for
// dangling or looping links, which are skipped.
func (w *walker) followLink(e Entry) (isDir, ok bool, err error) {
	target, err := w.store.ResolveLink(e.Path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrLinkCycle) {
		slog.Debug("skipping unresolvable link", "path", e.Path, "error", err)
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	info, err := w.store.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("skipping dangling link", "path", e.Path)
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return info.IsDir(), true, nil
}
