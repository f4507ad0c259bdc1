// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ColorScheme
		want  bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{"", false},
		{"neon", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v", valid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("IsValid() errs = %v, want ErrInvalidColorScheme", errs)
				}
			}
		})
	}
}

func TestNamespacePath_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range []NamespacePath{"", "/srv/ns", "relative/ns"} {
		if valid, errs := p.IsValid(); !valid {
			t.Errorf("%q.IsValid() = false, %v", p, errs)
		}
	}
	valid, errs := NamespacePath(" \t").IsValid()
	if valid || len(errs) != 1 || !errors.Is(errs[0], ErrInvalidNamespacePath) {
		t.Errorf("whitespace IsValid() = %v, %v", valid, errs)
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Fatalf("DefaultConfig().IsValid() = false, %v", errs)
	}

	cfg := Config{Namespace: "  ", UI: UIConfig{ColorScheme: "neon"}}
	valid, errs := cfg.IsValid()
	if valid || len(errs) != 1 {
		t.Fatalf("IsValid() = %v, %v", valid, errs)
	}
	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("IsValid() error = %T, want *InvalidConfigError", errs[0])
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("error does not wrap ErrInvalidConfig")
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Fatalf("FieldErrors = %v, want namespace and ui errors", cfgErr.FieldErrors)
	}
	if !errors.Is(cfgErr.FieldErrors[0], ErrInvalidNamespacePath) {
		t.Errorf("FieldErrors[0] = %v, want ErrInvalidNamespacePath", cfgErr.FieldErrors[0])
	}
	var uiErr *InvalidUIConfigError
	if !errors.As(cfgErr.FieldErrors[1], &uiErr) || !errors.Is(uiErr.FieldErrors[0], ErrInvalidColorScheme) {
		t.Errorf("FieldErrors[1] = %v, want UI color scheme error", cfgErr.FieldErrors[1])
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"namespace"}, "namespace"},
		{[]string{"ui", "verbose"}, "ui.verbose"},
		{[]string{"list", "0", "name"}, "list[0].name"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
