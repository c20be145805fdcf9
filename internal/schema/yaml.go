package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"transformer-generator/internal/common"
	"transformer-generator/internal/diagnostic"
)

// File is a parsed YAML schema file.
type File struct {
	// Package is the Go package name of the generated code.
	Package string
	// Unions are the validated unions, in declaration order.
	Unions []*Union
}

type yamlFile struct {
	Package string      `yaml:"package"`
	Imports []string    `yaml:"imports"`
	Unions  []yamlUnion `yaml:"unions"`
}

type yamlUnion struct {
	Name     string    `yaml:"name"`
	Variants yaml.Node `yaml:"variants"`
	Fields   yaml.Node `yaml:"fields"`
}

type yamlVariant struct {
	Name    string    `yaml:"name"`
	Payload yaml.Node `yaml:"payload"`
}

// LoadFile loads and validates a YAML schema file.
func LoadFile(path string, opts Options) (*File, diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return parseFile(path, data, opts)
}

// ParseFile parses and validates YAML schema data. Every union is checked;
// if any fails, File is nil, the returned Diagnostics list each failure and
// the error joins them.
func ParseFile(data []byte, opts Options) (*File, diagnostic.Diagnostics, error) {
	return parseFile("", data, opts)
}

func parseFile(path string, data []byte, opts Options) (*File, diagnostic.Diagnostics, error) {
	var (
		raw   yamlFile
		diags diagnostic.Diagnostics
	)

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, diags, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	if raw.Package == "" {
		return nil, diags, fmt.Errorf("schema %s: package is required", path)
	}

	imports, err := parseImports(raw.Imports)
	if err != nil {
		return nil, diags, err
	}

	file := &File{Package: raw.Package}

	for _, yu := range raw.Unions {
		u, err := buildYAMLUnion(raw.Package, yu, opts, imports)
		if err != nil {
			diags.Report(err, position(path, yu.Variants.Line))

			continue
		}

		file.Unions = append(file.Unions, u)
	}

	if diags.IsValid() {
		if err := CheckPackage(file.Unions); err != nil {
			diags.Report(err, path)
		}
	}

	if err := diags.Error(); err != nil {
		return nil, diags, err
	}

	return file, diags, nil
}

// parseImports reads entries of the form "path" or "name path".
func parseImports(entries []string) ([]Import, error) {
	imports := make([]Import, 0, len(entries))

	for _, e := range entries {
		parts := strings.Fields(e)

		switch len(parts) {
		case 1:
			imports = append(imports, Import{Name: common.PkgAlias(parts[0]), Path: parts[0]})
		case 2:
			imports = append(imports, Import{Name: parts[0], Path: parts[1]})
		default:
			return nil, fmt.Errorf("invalid import entry %q", e)
		}
	}

	return imports, nil
}

func buildYAMLUnion(pkg string, yu yamlUnion, opts Options, imports []Import) (*Union, error) {
	if yu.Fields.Kind != 0 {
		return nil, &ShapeError{Union: yu.Name, Reason: "declares record fields instead of variants"}
	}

	switch yu.Variants.Kind {
	case 0:
		return nil, &ShapeError{Union: yu.Name, Reason: "no variants declared"}
	case yaml.SequenceNode:
	default:
		return nil, &ShapeError{Union: yu.Name, Reason: "variants must be a list"}
	}

	variants := make([]Variant, 0, len(yu.Variants.Content))

	for _, node := range yu.Variants.Content {
		var yv yamlVariant
		if err := node.Decode(&yv); err != nil {
			return nil, &ShapeError{Union: yu.Name, Reason: fmt.Sprintf("line %d: %v", node.Line, err)}
		}

		payload, err := yamlPayload(yv.Payload)
		if err != nil {
			return nil, &VariantShapeError{Union: yu.Name, Variant: yv.Name, Err: err}
		}

		variants = append(variants, NewVariant(yv.Name, payload...))
	}

	return NewUnion(pkg, yu.Name, variants, opts, imports...)
}

func yamlPayload(node yaml.Node) ([]PayloadType, error) {
	switch {
	case node.Kind == 0, node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return nil, nil
	case node.Kind == yaml.SequenceNode:
	case node.Kind == yaml.MappingNode:
		return nil, ErrNamedFields
	default:
		return nil, ErrNotList
	}

	payload := make([]PayloadType, 0, len(node.Content))

	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			if item.Kind == yaml.MappingNode {
				return nil, ErrNamedFields
			}

			return nil, fmt.Errorf("%w: line %d", ErrUnsupportedSyntax, item.Line)
		}

		p, err := ParsePayloadString(item.Value, nil)
		if err != nil {
			return nil, err
		}

		payload = append(payload, p)
	}

	return payload, nil
}

func position(path string, line int) string {
	switch {
	case path == "" && line == 0:
		return ""
	case path == "":
		return fmt.Sprintf("line %d", line)
	case line == 0:
		return path
	default:
		return fmt.Sprintf("%s:%d", path, line)
	}
}
