// SPDX-License-Identifier: MPL-2.0

package contract

import (
	"encoding/json"
	"strings"
	"testing"
)

func mustParse(t *testing.T, line string) Contract {
	t.Helper()
	c, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", line, err)
	}
	return c
}

func TestContract_Equal(t *testing.T) {
	t.Parallel()

	base := "write: stdin! path! --mode=? -> [1]"
	tests := []struct {
		name  string
		other string
		want  bool
	}{
		{"identical", base, true},
		{"different arg names", "write: stdin! file! --mode=? -> [1]", true},
		{"reordered tokens", "write: path! -> [1] --mode=? stdin!", true},
		{"extra optional arg", "write: stdin! path! extra? --mode=? -> [1]", false},
		{"stdin optional", "write: stdin? path! --mode=? -> [1]", false},
		{"flag without value", "write: stdin! path! --mode? -> [1]", false},
		{"different error codes", "write: stdin! path! --mode=? -> [2]", false},
		{"different name", "put: stdin! path! --mode=? -> [1]", false},
	}

	left := mustParse(t, base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			right := mustParse(t, tt.other)
			if got := left.Equal(right); got != tt.want {
				t.Errorf("Equal(%q) = %v, want %v", tt.other, got, tt.want)
			}
			if got := right.Equal(left); got != tt.want {
				t.Errorf("Equal is not symmetric for %q", tt.other)
			}
		})
	}
}

func TestContract_Counts(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "m: a! b? c! --x! --y? --z=!")
	if got := c.RequiredArgs(); got != 2 {
		t.Errorf("RequiredArgs() = %d, want 2", got)
	}
	if got := c.OptionalArgs(); got != 1 {
		t.Errorf("OptionalArgs() = %d, want 1", got)
	}
	if got := strings.Join(c.RequiredFlags(), ","); got != "--x,--z" {
		t.Errorf("RequiredFlags() = %q, want %q", got, "--x,--z")
	}
	if got := strings.Join(c.FlagNames(), ","); got != "--x,--y,--z" {
		t.Errorf("FlagNames() = %q, want %q", got, "--x,--y,--z")
	}
}

func TestContract_String(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "run: --verbose? stdout! arg! stdin? -> [2, 1]")
	want := "run: stdin? arg1! --verbose? stdout! -> [2, 1]"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	back := mustParse(t, c.String())
	if !back.Equal(c) {
		t.Errorf("Parse(String()) = %+v, want %+v", back, c)
	}
}

func TestStream_JSON(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "m: stdin! stdout?")
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"stdin":"required"`) || !strings.Contains(string(data), `"stdout":"optional"`) {
		t.Errorf("json.Marshal() = %s, want textual stream modes", data)
	}

	var s Stream
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) error = nil, want error")
	}
}
