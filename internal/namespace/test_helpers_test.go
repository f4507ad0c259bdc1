// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// osNamespace returns a temporary namespace root and a store over the host
// filesystem, for tests that need real symbolic links.
func osNamespace(t *testing.T) (string, afero.Fs, Store) {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks() error = %v", err)
	}
	fsys := afero.NewOsFs()
	return root, fsys, NewStore(fsys)
}
