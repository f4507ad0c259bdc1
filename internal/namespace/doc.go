// SPDX-License-Identifier: MPL-2.0

// Package namespace maps dotted method names onto a directory tree of
// executables.
//
// The namespace root holds objects (directories) which hold methods
// (executable files) and, optionally, a ".self" manifest declaring the
// contracts of those methods. An invocation name such as "net.http.get"
// addresses the executable <root>/net/http/get, owned by the object
// <root>/net/http.
//
// An object whose name is wrapped in double underscores (for example
// "__io__") is an interface. It holds exactly two entries: its manifest and a
// symbolic link to the object it re-exposes. Calls through an interface run
// the linked object's executables, restricted to the contracts the interface
// declares.
//
// All filesystem access goes through the read-only Store interface.
package namespace
