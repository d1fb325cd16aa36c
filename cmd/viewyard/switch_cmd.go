package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/log"
	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/prompt"
	"github.com/dheater/viewyard/internal/viewset"
)

func newSwitchCmd() *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:     "switch [view]",
		Short:   "Print a view's path for cd",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the path of a view on stdout so the shell can change into it:

  cd $(viewyard switch fix-auth)

Without an argument, pick from the current viewset's views
interactively. With --copy, the path also goes to the clipboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				_, path, err = findView(cfg, args[0])
				if err != nil {
					return err
				}
			} else {
				path, err = pickView(cfg)
				if err != nil {
					return err
				}
				if path == "" {
					return nil
				}
			}

			out.Println(path)
			if copyPath {
				if err := clipboard.WriteAll(path); err != nil {
					log.FromContext(ctx).Printf("warning: clipboard unavailable: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}

// pickView lets the user choose a view from the resolved viewset.
// Returns "" if cancelled.
func pickView(cfg *config.Config) (string, error) {
	vc, err := resolveViewset(cfg, "")
	if err != nil {
		return "", err
	}
	views, err := viewset.ListViews(vc)
	if err != nil {
		return "", err
	}
	if len(views) == 0 {
		return "", fmt.Errorf("no views in viewset %q", vc.Name)
	}

	result, err := prompt.Select("Switch to view", views)
	if err != nil {
		return "", err
	}
	if result.Cancelled {
		return "", nil
	}
	return vc.ViewPath(result.Value), nil
}
