package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/waypoint/router"
)

func urlCmd(flags *globalFlags) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "url CONTROLLER/ACTION [name=value...]",
		Short: "Build the path of a controller/action",
		Example: `  waypoint url User/View id=42
  waypoint url Page/Contact --lang fr`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, action, ok := strings.Cut(args[0], "/")
			if !ok || controller == "" || action == "" {
				return fmt.Errorf("invalid route %q: expected CONTROLLER/ACTION", args[0])
			}
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			target := "/"
			if lang != "" {
				target = "/" + lang
			}
			r, err := newRouter(cfg, flags, router.NewRequest(http.MethodGet, target), flags.options(cmd))
			if err != nil {
				return err
			}

			var path string
			if lr, ok := r.(router.LanguageReverser); ok && lang != "" {
				path, err = lr.ReverseInLanguage(controller, action, lang, params)
			} else {
				if lang != "" {
					return fmt.Errorf("--lang requires a %q section", router.LanguagesKey)
				}
				path, err = r.Reverse(controller, action, params)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language to build the path in")

	return cmd
}

// parseParams turns name=value arguments into a parameter map.
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected name=value", arg)
		}
		if _, dup := params[name]; dup {
			return nil, fmt.Errorf("parameter %q given twice", name)
		}
		params[name] = value
	}
	return params, nil
}
