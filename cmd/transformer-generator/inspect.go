package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli"

	"transformer-generator/internal/schema"
)

func inspectCommand() cli.Command {
	return cli.Command{
		Name:   "inspect",
		Usage:  "show unions, variants and the hooks generated for them",
		Flags:  sourceFlags,
		Action: runInspect,
	}
}

func runInspect(c *cli.Context) error {
	sets, err := loadUnions(c)
	if err != nil {
		return err
	}

	for _, set := range sets {
		pterm.DefaultSection.Println(set.Source)

		for _, u := range set.Unions {
			if err := pterm.DefaultTable.WithHasHeader().WithData(unionTable(u)).Render(); err != nil {
				return err
			}

			root := pterm.NewTreeFromLeveledList(unionTree(u))
			if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
				return err
			}
		}
	}

	return nil
}

// unionTable lists one row per variant.
func unionTable(u *schema.Union) pterm.TableData {
	data := pterm.TableData{{"Variant", "Canonical", "Arity", "Payload"}}

	for _, v := range u.Variants() {
		var payload []string
		for _, p := range v.Payload() {
			payload = append(payload, p.Expr+" ("+p.Kind.String()+")")
		}

		data = append(data, []string{
			v.Name(),
			v.Canonical(),
			strconv.Itoa(v.Arity()),
			strings.Join(payload, ", "),
		})
	}

	return data
}

// unionTree shows the generated types and the hooks per variant.
func unionTree(u *schema.Union) pterm.LeveledList {
	ll := pterm.LeveledList{
		{Level: 0, Text: u.Name() + " (" + u.Canonical() + ")"},
		{Level: 1, Text: u.TransformerName()},
	}

	for _, v := range u.Variants() {
		ll = append(ll,
			pterm.LeveledListItem{Level: 2, Text: "Visit" + v.Hook()},
			pterm.LeveledListItem{Level: 2, Text: "Transform" + v.Hook()},
		)
	}

	ll = append(ll, pterm.LeveledListItem{Level: 1, Text: u.BaseName()})

	for _, imp := range u.Imports() {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "import " + imp.Name + " " + imp.Path})
	}

	return ll
}
