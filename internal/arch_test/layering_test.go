package arch_test

import (
	"strings"
	"testing"
)

// layers orders the internal packages. A package may import packages on its
// own layer or below.
var layers = map[string]int{
	"ansi":      0,
	"config":    0,
	"ephemeris": 0,
	"logging":   0,
	"telemetry": 0,
	"watch":     0,

	"position": 1,
	"scene":    2,
	"ui":       3,
	"tui":      4,
}

func TestLayering(t *testing.T) {
	t.Parallel()

	for _, p := range loadPackages(t) {
		from, ok := layers[p.Name]
		if !ok {
			t.Errorf("package %s has no layer; add it to layers", p.Name)
			continue
		}
		for _, imp := range p.Internal() {
			to, ok := layers[imp]
			if !ok {
				continue
			}
			if to > from {
				t.Errorf("%s (layer %d) imports %s (layer %d)", p.Name, from, imp, to)
			}
		}
	}
}

// forbidden lists import prefixes a package must not use.
var forbidden = map[string][]string{
	// Resolution and scene building are drawn by both the TUI and the
	// static printer.
	"ephemeris": {"github.com/charmbracelet/", "github.com/spf13/", "github.com/fsnotify/"},
	"position":  {"github.com/charmbracelet/", "github.com/spf13/", "github.com/fsnotify/"},
	"scene":     {"github.com/charmbracelet/", "github.com/spf13/", "github.com/fsnotify/"},

	"tui":   {"github.com/spf13/", "github.com/fsnotify/"},
	"ui":    {"github.com/spf13/", "github.com/charmbracelet/bubbletea"},
	"watch": {"github.com/charmbracelet/", "github.com/spf13/"},
}

func TestForbiddenImports(t *testing.T) {
	t.Parallel()

	for _, p := range loadPackages(t) {
		for path, files := range p.Imports {
			for _, prefix := range forbidden[p.Name] {
				if strings.HasPrefix(path, prefix) {
					t.Errorf("%s imports %s (in %s)", p.Name, path, strings.Join(files, ", "))
				}
			}
		}
	}
}

// Only config talks to viper; everything else receives a config.Config.
func TestViperOnlyInConfig(t *testing.T) {
	t.Parallel()

	for _, p := range loadPackages(t) {
		if p.Name == "config" {
			continue
		}
		if files, ok := p.Imports["github.com/spf13/viper"]; ok {
			t.Errorf("%s imports viper in %s; read settings through config.Load", p.Name, strings.Join(files, ", "))
		}
	}
}
