// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"path/filepath"

	"github.com/irnix/irnix/pkg/contract"
)

type (
	// Resolver turns invocation names into namespace coordinates under a
	// fixed root.
	Resolver struct {
		root  string
		store Store
	}

	// Object is a namespace directory and its lazily loaded contracts.
	Object struct {
		Path string
		Name string

		store       Store
		loaded      bool
		hasManifest bool
		contracts   contract.Set
	}

	// Method is one resolved invocation target.
	Method struct {
		Name MethodName
		// Path is the executable the call runs. Interface expansion rewrites
		// it to point into the linked object.
		Path   string
		Object *Object
	}
)

// NewResolver returns a resolver rooted at root.
func NewResolver(root string, store Store) *Resolver {
	return &Resolver{root: filepath.Clean(root), store: store}
}

// Root returns the namespace root.
func (r *Resolver) Root() string { return r.root }

// Store returns the store the resolver reads from.
func (r *Resolver) Store() Store { return r.store }

// Resolve validates raw and computes the method and object coordinates.
// It performs no filesystem access.
func (r *Resolver) Resolve(raw string) (*Method, error) {
	name, err := ParseMethodName(raw)
	if err != nil {
		return nil, err
	}
	return &Method{
		Name:   name,
		Path:   name.MethodPath(r.root),
		Object: r.Object(name.ObjectPath(r.root)),
	}, nil
}

// Object returns a handle on the object directory at path.
func (r *Resolver) Object(path string) *Object {
	return newObject(r.store, path)
}

func newObject(store Store, path string) *Object {
	return &Object{Path: path, Name: filepath.Base(path), store: store}
}

// Ident returns the method identifier, the last name segment.
func (m *Method) Ident() string { return m.Name.Method() }

// Retarget moves the method onto obj, keeping its identifier.
func (m *Method) Retarget(obj *Object) {
	m.Object = obj
	m.Path = filepath.Join(obj.Path, m.Ident())
}

// IsInterface reports whether the object is named like an interface.
func (o *Object) IsInterface() bool { return IsInterfaceName(o.Name) }

// IsDir reports whether the object path exists and is a directory.
func (o *Object) IsDir() (bool, error) {
	info, err := o.store.Stat(o.Path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Contracts loads the object's manifest on first use. An object without a
// manifest has an empty set.
func (o *Object) Contracts() (contract.Set, error) {
	if err := o.load(); err != nil {
		return nil, err
	}
	return o.contracts, nil
}

// HasManifest reports whether the object owns a manifest.
func (o *Object) HasManifest() (bool, error) {
	if err := o.load(); err != nil {
		return false, err
	}
	return o.hasManifest, nil
}

func (o *Object) load() error {
	if o.loaded {
		return nil
	}
	set, found, err := LoadManifest(o.store, o.Path)
	if err != nil {
		return err
	}
	o.contracts, o.hasManifest, o.loaded = set, found, true
	return nil
}

// ExpandInterface returns the object an interface links to. The interface
// must own a manifest and contain exactly one other entry: a link resolving
// to a directory other than the interface itself.
func ExpandInterface(iface *Object) (*Object, error) {
	found, err := iface.HasManifest()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &InterfaceManifestError{Path: iface.Path}
	}

	entries, err := iface.store.ReadDir(iface.Path)
	if err != nil {
		return nil, err
	}
	if len(entries) != 2 {
		return nil, &InterfaceLayoutError{
			Path:   iface.Path,
			Reason: "interfaces must only contain two files: a self file with contracts and a link to an object",
		}
	}

	var link Entry
	for _, e := range entries {
		if e.Name != ManifestName {
			link = e
		}
	}
	if !link.IsLink {
		return nil, &InterfaceLayoutError{Path: iface.Path, Reason: link.Name + " is not a link to an object"}
	}

	target, err := iface.store.ResolveLink(link.Path)
	if err != nil {
		return nil, &InterfaceLayoutError{Path: iface.Path, Reason: "cannot follow " + link.Name, Err: err}
	}
	self, err := iface.store.ResolveLink(iface.Path)
	if err != nil {
		return nil, err
	}
	if target == self {
		return nil, &LinkCycleError{Path: link.Path}
	}

	info, err := iface.store.Stat(target)
	if err != nil {
		return nil, &InterfaceLayoutError{Path: iface.Path, Reason: "cannot follow " + link.Name, Err: err}
	}
	if !info.IsDir() {
		return nil, &InterfaceLayoutError{Path: iface.Path, Reason: link.Name + " does not point to a directory"}
	}

	return newObject(iface.store, target), nil
}
