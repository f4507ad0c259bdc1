// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"path/filepath"

	"github.com/irnix/irnix/pkg/contract"
)

// LoadManifest reads and parses the manifest of dir. found is false when dir
// has no manifest; the returned set is then empty and non-nil. Parse failures
// are reported as *ManifestError naming the manifest path and line.
func LoadManifest(store Store, dir string) (set contract.Set, found bool, err error) {
	data, found, err := store.ReadManifest(dir)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return contract.Set{}, false, nil
	}
	set, err = contract.ParseManifest(string(data))
	if err != nil {
		return nil, true, &ManifestError{Path: filepath.Join(dir, ManifestName), Err: err}
	}
	return set, true, nil
}
