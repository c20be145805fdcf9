package analyze

import (
	"go/token"
	"slices"

	"transformer-generator/internal/diagnostic"
	"transformer-generator/internal/schema"
)

// UnionID uniquely identifies a union by its package path and name.
type UnionID struct {
	PkgPath string // e.g., "transformer-generator/examples/expr"
	Name    string // e.g., "Expr"
}

// String returns a human-readable representation of the UnionID.
func (u UnionID) String() string {
	if u.PkgPath == "" {
		return u.Name
	}

	return u.PkgPath + "." + u.Name
}

// UnionInfo describes one union declaration.
type UnionInfo struct {
	ID     UnionID
	Schema *schema.Union
	Decl   string         // Name of the declaring struct type
	Pos    token.Position // Position of the declaration
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path   string    // Import path
	Name   string    // Package name
	Dir    string    // Directory holding the package sources
	Unions []UnionID // Unions declared in this package, in source order
}

// UnionGraph holds all unions found in the loaded packages.
type UnionGraph struct {
	// Unions maps UnionID to UnionInfo for all valid declarations.
	Unions map[UnionID]*UnionInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Diagnostics collects every rejected declaration.
	Diagnostics diagnostic.Diagnostics
}

// NewUnionGraph creates a new empty UnionGraph.
func NewUnionGraph() *UnionGraph {
	return &UnionGraph{
		Unions:   make(map[UnionID]*UnionInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetUnion returns the UnionInfo for a given UnionID, or nil if not found.
func (g *UnionGraph) GetUnion(id UnionID) *UnionInfo {
	return g.Unions[id]
}

// PackageUnions returns the schemas of a package in source order.
func (g *UnionGraph) PackageUnions(pkgPath string) []*schema.Union {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	out := make([]*schema.Union, 0, len(pkg.Unions))
	for _, id := range pkg.Unions {
		if info := g.Unions[id]; info != nil {
			out = append(out, info.Schema)
		}
	}

	return out
}

// SortedPackages returns the package paths in lexical order.
func (g *UnionGraph) SortedPackages() []string {
	paths := make([]string, 0, len(g.Packages))
	for p := range g.Packages {
		paths = append(paths, p)
	}

	slices.Sort(paths)

	return paths
}

// Names returns the names of every union found, sorted.
func (g *UnionGraph) Names() []string {
	names := make([]string, 0, len(g.Unions))
	for id := range g.Unions {
		names = append(names, id.Name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}
