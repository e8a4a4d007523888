package skinmanager

import (
	"github.com/arthur-debert/skinmanager/pkg/commands"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/spf13/cobra"
)

func newModeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "mode [on|off|toggle|status]",
		Short:     MsgModeShort,
		Long:      MsgModeLong,
		Example:   MsgModeExample,
		GroupID:   "core",
		ValidArgs: []string{"on", "off", "toggle", "status"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.paths(cmd)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			var result *types.ModeResult
			if len(args) == 0 || args[0] == "status" {
				result, err = commands.ModeStatus(commands.ModeStatusOptions{
					FileSystem: a.fs,
					Paths:      p,
				})
			} else {
				var action commands.ModeAction
				action, err = commands.ParseModeAction(args[0])
				if err != nil {
					return err
				}
				result, err = commands.SwitchMode(commands.SwitchModeOptions{
					FileSystem: a.fs,
					Paths:      p,
					Action:     action,
					LockPath:   p.LockPath(),
				})
			}
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.AddCommand(newModeSetCmd(a))

	return cmd
}

func newModeSetCmd(a *app) *cobra.Command {
	var (
		dds, fullscreen bool
		resolution      string
		master, music   float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: MsgModeSetShort,
		Long:  MsgModeSetLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.paths(cmd)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			opts := commands.SetModeValuesOptions{
				FileSystem: a.fs,
				Paths:      p,
				LockPath:   p.LockPath(),
			}
			flags := cmd.Flags()
			if flags.Changed("dds") {
				opts.DDSGeneration = &dds
			}
			if flags.Changed("fullscreen") {
				opts.Fullscreen = &fullscreen
			}
			if flags.Changed("resolution") {
				r, err := types.ParseResolution(resolution)
				if err != nil {
					return err
				}
				opts.Resolution = &r
			}
			if flags.Changed("master") {
				opts.MasterVolume = &master
			}
			if flags.Changed("music") {
				opts.MusicVolume = &music
			}

			result, err := commands.SetModeValues(opts)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&dds, "dds", true, MsgFlagDDS)
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, MsgFlagFullscreen)
	cmd.Flags().StringVar(&resolution, "resolution", "", MsgFlagResolution)
	cmd.Flags().Float64Var(&master, "master", 0, MsgFlagMaster)
	cmd.Flags().Float64Var(&music, "music", 0, MsgFlagMusic)

	return cmd
}
