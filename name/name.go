// Package name provides the identifier types threaded through the IR:
// simple names, hierarchical module paths, and fully-qualified names.
// The IR never interprets these; it only stores and compares them.
package name

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Name is a single identifier.  It is comparable and usable as a map key.
type Name string

func (n Name) String() string {
	return string(n)
}

// A Path is a hierarchical name, e.g. the path of a module within a package.
// A root is an empty slice (not nil).
type Path []Name

func NewPath(names ...Name) Path {
	return Path(names)
}

// Dotted parses "a.b.c" into a Path.
func Dotted(s string) Path {
	parts := strings.Split(s, ".")
	path := make(Path, 0, len(parts))
	for _, p := range parts {
		path = append(path, Name(p))
	}
	return path
}

func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, n := range p {
		parts = append(parts, string(n))
	}
	return strings.Join(parts, ".")
}

func (p Path) Leaf() Name {
	return p[len(p)-1]
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

func (p Path) Equal(to Path) bool {
	if len(p) != len(to) {
		return false
	}
	for k := range p {
		if p[k] != to[k] {
			return false
		}
	}
	return true
}

func (p Path) HasPrefix(prefix Path) bool {
	return len(p) >= len(prefix) && prefix.Equal(p[:len(prefix)])
}

// An FQName locates a definition: the package it lives in, the module
// within that package, and the local name within that module.
type FQName struct {
	PackagePath Path
	ModulePath  Path
	LocalName   Name
}

func NewFQName(pkg, module Path, local Name) FQName {
	return FQName{PackagePath: pkg, ModulePath: module, LocalName: local}
}

func (f FQName) String() string {
	var b strings.Builder
	if !f.PackagePath.IsRoot() {
		b.WriteString(f.PackagePath.String())
		b.WriteByte(':')
	}
	if !f.ModulePath.IsRoot() {
		b.WriteString(f.ModulePath.String())
		b.WriteByte(':')
	}
	b.WriteString(string(f.LocalName))
	return b.String()
}

func (f FQName) Equal(to FQName) bool {
	return f.LocalName == to.LocalName &&
		f.ModulePath.Equal(to.ModulePath) &&
		f.PackagePath.Equal(to.PackagePath)
}

// A Set is an unordered collection of Names with set semantics.
type Set map[Name]struct{}

func NewSet(names ...Name) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s Set) Add(n Name) {
	s[n] = struct{}{}
}

func (s Set) Has(n Name) bool {
	_, ok := s[n]
	return ok
}

func (s Set) Union(other Set) {
	for n := range other {
		s[n] = struct{}{}
	}
}

func (s Set) Equal(to Set) bool {
	if len(s) != len(to) {
		return false
	}
	for n := range s {
		if !to.Has(n) {
			return false
		}
	}
	return true
}

// Ordered returns the members sorted lexically, for deterministic output.
func (s Set) Ordered() []Name {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}
