package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"transformer-generator/internal/analyze"
	"transformer-generator/internal/diagnostic"
	"transformer-generator/internal/gen"
	"transformer-generator/internal/match"
	"transformer-generator/internal/schema"
)

// unionSet is a group of unions generated into one package directory.
type unionSet struct {
	Source string // Package path or schema file
	Dir    string
	Unions []*schema.Union
}

var sourceFlags = []cli.Flag{
	cli.StringSliceFlag{
		Name:  "pkg,p",
		Usage: "Go package pattern holding union declarations (repeatable)",
	},
	cli.StringFlag{
		Name:  "schema,s",
		Usage: "YAML schema file",
	},
	cli.StringSliceFlag{
		Name:  "type,t",
		Usage: "only handle the named union (repeatable)",
	},
}

func genCommand() cli.Command {
	return cli.Command{
		Name:  "gen",
		Usage: "generate Transform dispatchers and transformer interfaces",
		Flags: append(slices.Clone(sourceFlags),
			cli.StringFlag{
				Name:  "out,o",
				Usage: "output directory (default: next to the declarations)",
			},
			cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print generated code instead of writing files",
			},
		),
		Action: runGen,
	}
}

func checkCommand() cli.Command {
	return cli.Command{
		Name:   "check",
		Usage:  "validate union declarations without generating code",
		Flags:  sourceFlags,
		Action: runCheck,
	}
}

func runGen(c *cli.Context) error {
	sets, err := loadUnions(c)
	if err != nil {
		return err
	}

	if err := checkOutDir(sets, c.String("out")); err != nil {
		return err
	}

	for _, set := range sets {
		outDir := set.Dir
		if out := c.String("out"); out != "" {
			outDir = out
		}

		cfg := settings.GeneratorConfig()
		cfg.OutputDir = outDir

		files, err := gen.NewGenerator(cfg).Generate(set.Unions)
		if err != nil {
			return fmt.Errorf("%s: %w", set.Source, err)
		}

		if c.Bool("dry-run") {
			for _, f := range files {
				fmt.Printf("// %s\n%s\n", filepath.Join(outDir, f.Filename), f.Content)
			}

			continue
		}

		paths, err := gen.WriteFiles(files, outDir)
		if err != nil {
			return err
		}

		for _, p := range paths {
			pterm.Success.Println("wrote", p)
		}
	}

	return nil
}

// checkOutDir rejects --out when the unions come from several packages:
// their files would share one directory under different package clauses.
func checkOutDir(sets []unionSet, out string) error {
	if out == "" || len(sets) < 2 {
		return nil
	}

	sources := make([]string, 0, len(sets))
	for _, set := range sets {
		sources = append(sources, set.Source)
	}

	return fmt.Errorf("--out needs a single source package, got %d: %s", len(sets), strings.Join(sources, ", "))
}

func runCheck(c *cli.Context) error {
	sets, err := loadUnions(c)
	if err != nil {
		return err
	}

	for _, set := range sets {
		for _, u := range set.Unions {
			pterm.Success.Printfln("%s: %s ok (%d variants)", set.Source, u.Name(), u.Len())
		}
	}

	return nil
}

// loadUnions reads unions from --pkg patterns or from a --schema file,
// printing every diagnostic before failing.
func loadUnions(c *cli.Context) ([]unionSet, error) {
	patterns := c.StringSlice("pkg")
	schemaPath := c.String("schema")
	types := c.StringSlice("type")

	switch {
	case len(patterns) > 0 && schemaPath != "":
		return nil, errors.New("--pkg and --schema are mutually exclusive")
	case schemaPath != "":
		return loadSchema(schemaPath, types)
	case len(patterns) > 0:
		return loadPackages(patterns, types)
	default:
		return nil, errors.New("one of --pkg or --schema is required")
	}
}

func loadPackages(patterns, types []string) ([]unionSet, error) {
	graph, err := analyze.NewAnalyzer(settings.AnalyzerOptions(types)).LoadPackages(patterns...)
	if graph == nil {
		return nil, err
	}

	printDiagnostics(graph.Diagnostics)

	if err != nil {
		return nil, fmt.Errorf("loading packages: %d invalid declaration(s)", len(graph.Diagnostics.Errors))
	}

	var sets []unionSet

	for _, path := range graph.SortedPackages() {
		unions := graph.PackageUnions(path)
		if len(unions) == 0 {
			continue
		}

		sets = append(sets, unionSet{
			Source: path,
			Dir:    graph.Packages[path].Dir,
			Unions: unions,
		})
	}

	if len(sets) == 0 {
		logrus.Warn("no union declarations found")
	}

	return sets, nil
}

func loadSchema(path string, types []string) ([]unionSet, error) {
	file, diags, err := schema.LoadFile(path, settings.SchemaOptions())
	if err != nil {
		printDiagnostics(diags)

		return nil, err
	}

	unions := file.Unions

	if len(types) > 0 {
		var filtered diagnostic.Diagnostics

		unions, filtered = filterUnions(unions, types)
		diags.Merge(filtered)
	}

	printDiagnostics(diags)

	if err := diags.Error(); err != nil {
		return nil, err
	}

	return []unionSet{{
		Source: path,
		Dir:    filepath.Dir(path),
		Unions: unions,
	}}, nil
}

// filterUnions keeps the unions named in types, reporting unknown names.
func filterUnions(unions []*schema.Union, types []string) ([]*schema.Union, diagnostic.Diagnostics) {
	var (
		diags diagnostic.Diagnostics
		kept  []*schema.Union
		names []string
	)

	for _, u := range unions {
		names = append(names, u.Name())

		if slices.Contains(types, u.Name()) {
			kept = append(kept, u)
		} else {
			diags.AddInfo(diagnostic.CodeFiltered, "skipped by type filter", u.Name(), "")
		}
	}

	for _, want := range types {
		if slices.Contains(names, want) {
			continue
		}

		diags.AddError(diagnostic.CodeUnknownUnion, "no union named "+want, want, "", match.Suggest(want, names)...)
	}

	return kept, diags
}

func printDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.DiagnosticError:
			pterm.Error.Println(d.String())
		case diagnostic.DiagnosticWarning:
			pterm.Warning.Println(d.String())
		default:
			pterm.Info.Println(d.String())
		}
	}
}
