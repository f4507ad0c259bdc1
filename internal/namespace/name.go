// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// Separator joins the segments of an invocation name.
	Separator = "."

	interfaceAffix = "__"
)

// Segments are runs of Unicode word characters and hyphens.
var methodNamePattern = regexp.MustCompile(`^[\p{L}\p{M}\p{Nd}\p{Pc}-]+(\.[\p{L}\p{M}\p{Nd}\p{Pc}-]+)+$`)

// MethodName is a validated invocation name with at least two segments.
type MethodName struct {
	segments []string
}

// ParseMethodName validates raw after trimming surrounding whitespace. It
// never touches the filesystem.
func ParseMethodName(raw string) (MethodName, error) {
	name := strings.TrimSpace(raw)
	if !methodNamePattern.MatchString(name) {
		return MethodName{}, &MalformedNameError{Name: raw}
	}
	return MethodName{segments: strings.Split(name, Separator)}, nil
}

// String returns the dotted name.
func (n MethodName) String() string {
	return strings.Join(n.segments, Separator)
}

// Segments returns a copy of the name's segments.
func (n MethodName) Segments() []string {
	return append([]string(nil), n.segments...)
}

// Method returns the last segment.
func (n MethodName) Method() string {
	return n.segments[len(n.segments)-1]
}

// ObjectName returns the second-to-last segment.
func (n MethodName) ObjectName() string {
	return n.segments[len(n.segments)-2]
}

// ObjectPath joins every segment but the last under root.
func (n MethodName) ObjectPath(root string) string {
	return filepath.Join(append([]string{root}, n.segments[:len(n.segments)-1]...)...)
}

// MethodPath joins every segment under root.
func (n MethodName) MethodPath(root string) string {
	return filepath.Join(append([]string{root}, n.segments...)...)
}

// IsInterfaceName reports whether an object name has the __name__ form with
// at least one character between the underscores.
func IsInterfaceName(name string) bool {
	return len(name) > 2*len(interfaceAffix) &&
		strings.HasPrefix(name, interfaceAffix) &&
		strings.HasSuffix(name, interfaceAffix)
}
