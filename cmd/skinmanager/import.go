package skinmanager

import (
	"fmt"

	"github.com/arthur-debert/skinmanager/pkg/commands"
	"github.com/arthur-debert/skinmanager/pkg/config"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/arthur-debert/skinmanager/pkg/ui"
	"github.com/arthur-debert/skinmanager/pkg/ui/progress"
	"github.com/arthur-debert/skinmanager/pkg/ui/prompt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var force, skipExisting bool

	cmd := &cobra.Command{
		Use:     "import <archive.zip>...",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		Example: MsgImportExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.paths(cmd)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			opts := commands.ImportArchivesOptions{
				FileSystem: a.fs,
				Paths:      p,
				Archives:   args,
				Resolver:   a.resolver(cmd, force, skipExisting),
				LockPath:   p.LockPath(),
			}
			if a.cfg.Output.Progress && ui.IsTerminal(cmd.ErrOrStderr()) {
				bar := progress.New(cmd.ErrOrStderr())
				defer bar.Stop()
				opts.Progress = bar.Update
			}

			result, err := commands.ImportArchives(opts)
			if result != nil {
				if renderErr := renderer.RenderResult(result); renderErr != nil {
					return renderErr
				}
			}
			if err != nil {
				return err
			}

			if n := result.Count(types.ImportFailed); n > 0 {
				return fmt.Errorf(MsgErrImportFailed, n, len(result.Liveries))
			}
			if n := len(result.FailedArchives); n > 0 {
				return fmt.Errorf(MsgErrArchiveFailed, n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, MsgFlagSkipExisting)
	cmd.MarkFlagsMutuallyExclusive("force", "skip-existing")

	return cmd
}

// resolver picks the conflict policy: flags first, then import.on_conflict.
// Asking needs an interactive stdin; without one conflicts are skipped.
func (a *app) resolver(cmd *cobra.Command, force, skipExisting bool) types.ConflictResolver {
	switch {
	case force:
		return commands.FixedResolver{Override: true}
	case skipExisting:
		return commands.FixedResolver{}
	}

	switch a.cfg.Import.OnConflict {
	case config.ConflictOverride:
		return commands.FixedResolver{Override: true}
	case config.ConflictSkip:
		return commands.FixedResolver{}
	}

	if in := cmd.InOrStdin(); ui.IsTerminal(in) {
		return prompt.NewResolver(in, cmd.OutOrStdout())
	}
	log.Warn().Msg(MsgNoTerminal)
	return commands.FixedResolver{}
}
