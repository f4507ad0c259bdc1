// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/irnix/irnix/internal/testutil"
	"github.com/irnix/irnix/pkg/contract"
	"github.com/spf13/afero"
)

func TestObject_Contracts(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fsys, "/ns/io/.self", "write: stdin! path!\nread: path! stdout!\n")
	testutil.MustWriteFile(t, fsys, "/ns/io/write", "#!/bin/sh\n")

	r := NewResolver("/ns", NewStore(fsys))
	m, err := r.Resolve("io.write")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	isDir, err := m.Object.IsDir()
	if err != nil || !isDir {
		t.Fatalf("IsDir() = %v, %v, want true, nil", isDir, err)
	}
	set, err := m.Object.Contracts()
	if err != nil {
		t.Fatalf("Contracts() error = %v", err)
	}
	write, ok := set.Lookup("write")
	if !ok {
		t.Fatalf("Contracts() = %v, want write", set.Names())
	}
	if write.Stdin != contract.StreamRequired {
		t.Errorf("write.Stdin = %s, want required", write.Stdin)
	}
}

func TestObject_NoManifest(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fsys, "/ns/tools/fmt", "")

	obj := NewResolver("/ns", NewStore(fsys)).Object("/ns/tools")
	set, err := obj.Contracts()
	if err != nil {
		t.Fatalf("Contracts() error = %v", err)
	}
	if len(set) != 0 {
		t.Errorf("len(Contracts()) = %d, want 0", len(set))
	}
	if found, _ := obj.HasManifest(); found {
		t.Error("HasManifest() = true, want false")
	}
}

func TestObject_BrokenManifest(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fsys, "/ns/io/.self", "ok: arg!\nbad arg\n")

	_, err := NewResolver("/ns", NewStore(fsys)).Object("/ns/io").Contracts()
	if !errors.Is(err, ErrManifest) {
		t.Fatalf("Contracts() error = %v, want ErrManifest", err)
	}
	if !errors.Is(err, contract.ErrAmbiguousRequiredness) {
		t.Errorf("Contracts() error = %v, want ErrAmbiguousRequiredness in chain", err)
	}
	var le *contract.LineError
	if !errors.As(err, &le) || le.Line != 2 {
		t.Errorf("Contracts() error = %v, want line 2", err)
	}
}

func TestMethod_Retarget(t *testing.T) {
	t.Parallel()

	r := NewResolver("/ns", NewStore(afero.NewMemMapFs()))
	m, err := r.Resolve("__io__.write")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	m.Retarget(r.Object("/ns/objects/file"))

	if want := filepath.FromSlash("/ns/objects/file/write"); m.Path != want {
		t.Errorf("Path = %q, want %q", m.Path, want)
	}
	if m.Object.Name != "file" {
		t.Errorf("Object.Name = %q, want %q", m.Object.Name, "file")
	}
}

func TestExpandInterface(t *testing.T) {
	t.Parallel()

	root, fsys, store := osNamespace(t)
	testutil.MustWriteFile(t, fsys, filepath.Join(root, "file", ".self"), "write: stdin! path!\n")
	testutil.MustWriteFile(t, fsys, filepath.Join(root, "file", "write"), "")
	testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: stdin! path!\n")
	testutil.MustSymlink(t, filepath.Join("..", "file"), filepath.Join(root, "__io__", "target"))

	r := NewResolver(root, store)
	target, err := ExpandInterface(r.Object(filepath.Join(root, "__io__")))
	if err != nil {
		t.Fatalf("ExpandInterface() error = %v", err)
	}
	if want := filepath.Join(root, "file"); target.Path != want {
		t.Errorf("target.Path = %q, want %q", target.Path, want)
	}
}

func TestExpandInterface_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T, root string, fsys afero.Fs)
		wantErr error
	}{
		{
			name: "no manifest",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustSymlink(t, filepath.Join(root, "file"), filepath.Join(root, "__io__", "target"))
			},
			wantErr: ErrInterfaceManifest,
		},
		{
			name: "extra entry",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: path!\n")
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", "stray"), "")
				testutil.MustSymlink(t, filepath.Join(root, "file"), filepath.Join(root, "__io__", "target"))
			},
			wantErr: ErrInterfaceLayout,
		},
		{
			name: "manifest only",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: path!\n")
			},
			wantErr: ErrInterfaceLayout,
		},
		{
			name: "regular file instead of link",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: path!\n")
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", "target"), "")
			},
			wantErr: ErrInterfaceLayout,
		},
		{
			name: "link to a file",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: path!\n")
				testutil.MustSymlink(t, filepath.Join(root, "file", "write"), filepath.Join(root, "__io__", "target"))
			},
			wantErr: ErrInterfaceLayout,
		},
		{
			name: "dangling link",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: path!\n")
				testutil.MustSymlink(t, filepath.Join(root, "missing"), filepath.Join(root, "__io__", "target"))
			},
			wantErr: ErrInterfaceLayout,
		},
		{
			name: "link to itself",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: path!\n")
				testutil.MustSymlink(t, ".", filepath.Join(root, "__io__", "target"))
			},
			wantErr: ErrLinkCycle,
		},
		{
			name: "looping link chain",
			setup: func(t *testing.T, root string, fsys afero.Fs) {
				testutil.MustWriteFile(t, fsys, filepath.Join(root, "__io__", ".self"), "write: path!\n")
				testutil.MustSymlink(t, filepath.Join(root, "b"), filepath.Join(root, "a"))
				testutil.MustSymlink(t, filepath.Join(root, "a"), filepath.Join(root, "b"))
				testutil.MustSymlink(t, filepath.Join(root, "a"), filepath.Join(root, "__io__", "target"))
			},
			wantErr: ErrLinkCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, fsys, store := osNamespace(t)
			testutil.MustWriteFile(t, fsys, filepath.Join(root, "file", "write"), "")
			tt.setup(t, root, fsys)

			_, err := ExpandInterface(NewResolver(root, store).Object(filepath.Join(root, "__io__")))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ExpandInterface() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
