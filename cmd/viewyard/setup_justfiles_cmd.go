package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/justfile"
	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/styles"
	"github.com/dheater/viewyard/internal/viewset"
)

func newSetupJustfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "setup-justfiles",
		Short:   "Generate justfiles for every viewset",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Install (or refresh) the per-viewset justfile so view commands can be
run as short just recipes from the viewset directory. Justfiles not
generated by viewyard are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var failed bool
			for _, vs := range cfg.Names() {
				root := viewset.Root(envv, vs)
				if err := justfile.Write(root, vs); err != nil {
					out.Printf("%s %s: %v\n", styles.ErrorStyle.Render(styles.Cross), vs, err)
					failed = true
					continue
				}
				out.Printf("%s %s: %s\n", styles.SuccessStyle.Render(styles.Check), vs, justfile.Path(root))
			}
			if failed {
				return fmt.Errorf("some justfiles could not be generated")
			}
			return nil
		},
	}

	return cmd
}
