package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered key types with their catalog and locales",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.listTypes()
		},
	}
}

func (a *app) listTypes() error {
	names := a.registry.Names()
	if len(names) == 0 {
		return &exitError{code: exitFatal, err: ErrNoKeyTypes}
	}

	meta := verifier.InterfaceMetadata{}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY TYPE\tCATALOG\tLOCALES\tKEYS")
	for _, name := range names {
		kt, _ := a.registry.Lookup(name)
		catalogName, ok := meta.CatalogName(kt)
		if !ok {
			catalogName = "-"
		}
		locales := strings.Join(meta.LocaleNames(kt), ",")
		if locales == "" {
			locales = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", name, catalogName, locales, len(kt.MessageKeys()))
	}
	return tw.Flush()
}
