package skinmanager

import (
	"fmt"

	"github.com/arthur-debert/skinmanager/pkg/commands"
	"github.com/arthur-debert/skinmanager/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			result, err := commands.GenConfig(commands.GenConfigOptions{
				FileSystem: a.fs,
				Path:       a.configFile(),
				Write:      write,
				Force:      force,
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForceConfig)

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.Render(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", a.configFile(), content)
			return err
		},
	}
}
