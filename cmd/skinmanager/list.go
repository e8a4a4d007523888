package skinmanager

import (
	"fmt"

	"github.com/arthur-debert/skinmanager/pkg/commands"
	"github.com/arthur-debert/skinmanager/pkg/ui"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.paths(cmd)
			if err != nil {
				return err
			}

			name := output
			if name == "" {
				name = a.cfg.Output.Format
			}
			format, err := ui.ParseFormat(name)
			if err != nil {
				return fmt.Errorf(MsgErrUnknownFormat, err)
			}
			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := commands.ListLiveries(commands.ListLiveriesOptions{
				FileSystem: a.fs,
				Paths:      p,
			})
			if err != nil {
				// scripts reading stdout still get a parseable document
				if format.Structured() {
					_ = renderer.RenderError(err)
				}
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagListOutput)
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
