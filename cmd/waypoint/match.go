package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/waypoint/router"
)

func matchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "match METHOD PATH",
		Short: "Match a request against the route table",
		Long: `Route a request and print the matched controller/action, the
pattern that matched and the extracted parameters.`,
		Example: `  waypoint match GET /user/42
  waypoint -c site.yaml match POST /fr/users`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			req := router.NewRequest(strings.ToUpper(args[0]), args[1])
			r, err := newRouter(cfg, flags, req, flags.options(cmd))
			if err != nil {
				return err
			}

			m, err := r.Route(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "route:   %s\n", m.Key)
			if m.Pattern != "" {
				fmt.Fprintf(out, "pattern: %s\n", m.Pattern)
			}
			if lr, ok := r.(*router.LanguageRouter); ok {
				fmt.Fprintf(out, "lang:    %s\n", lr.Language())
			}

			params := req.Params()
			names := make([]string, 0, len(params))
			for name := range params {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(out, "param:   %s=%s\n", name, params[name])
			}
			return nil
		},
	}
}
