package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vitalvas/waypoint/config"
	"github.com/vitalvas/waypoint/router"
)

func routesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		Long: `List every route in matching order with its patterns.

Translated configurations list the shared routes followed by the table
of each language.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			if !translated(cfg) {
				table, err := router.TableFromConfig(cfg, flags.key)
				if err != nil {
					return err
				}
				printTable(w, table)
				return nil
			}

			if _, ok := cfg.Get(router.SharedRoutesKey); ok {
				table, err := router.TableFromConfig(cfg, router.SharedRoutesKey)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "[%s]\n", router.SharedRoutesKey)
				printTable(w, table)
			}

			v, _ := cfg.Get(router.TranslatedRoutesKey)
			langs, ok := v.(config.Section)
			if !ok {
				return fmt.Errorf("%s: expected a mapping, got %T", router.TranslatedRoutesKey, v)
			}
			for _, lang := range langs.Keys() {
				table, err := router.TableFromConfig(langs, lang)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "[%s]\n", lang)
				printTable(w, table)
			}
			return nil
		},
	}
}

func printTable(w io.Writer, table *router.Table) {
	for _, e := range table.Entries() {
		fmt.Fprintf(w, "%s\t%s\n", e.Key, strings.Join(e.Patterns, "\t"))
	}
}
