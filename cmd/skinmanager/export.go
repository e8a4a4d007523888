package skinmanager

import (
	"github.com/arthur-debert/skinmanager/pkg/commands"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:               "export <livery>...",
		Short:             MsgExportShort,
		Long:              MsgExportLong,
		Example:           MsgExportExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: a.liveryKeysCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.paths(cmd)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ExportLiveries(commands.ExportLiveriesOptions{
				FileSystem: a.fs,
				Paths:      p,
				Keys:       args,
				Output:     paths.ExpandHome(output),
				Dir:        paths.ExpandHome(a.cfg.Export.Dir),
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagExportOutput)

	return cmd
}

// liveryKeysCompletion completes installed livery keys not already given
func (a *app) liveryKeysCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.cfg == nil {
		if err := a.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	p, err := a.paths(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	result, err := commands.ListLiveries(commands.ListLiveriesOptions{FileSystem: a.fs, Paths: p})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	given := make(map[string]bool, len(args))
	for _, arg := range args {
		given[arg] = true
	}
	var keys []string
	for _, l := range result.Liveries {
		if !given[l.Key] {
			keys = append(keys, l.Key)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
