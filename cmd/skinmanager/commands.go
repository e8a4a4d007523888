package skinmanager

import (
	"fmt"

	"github.com/arthur-debert/skinmanager/internal/version"
	"github.com/arthur-debert/skinmanager/pkg/config"
	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/arthur-debert/skinmanager/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the global flags and what PersistentPreRunE loads from them
type app struct {
	verbosity  int
	root       string
	configPath string

	fs  types.FS
	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fs types.FS) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:     "skinmanager",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newImportCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newModeCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration and initializes logging. A broken config file
// still gets a console logger so the failure is reported.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if a.root != "" {
		overrides["install.root"] = a.root
	}
	cfg, err := config.LoadWithOverrides(a.configFile(), overrides)
	if err != nil {
		logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr(), false)
		return err
	}
	a.cfg = cfg

	logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr(), cfg.Logging.File)
	log.Debug().Str("command", cmd.Name()).Str("config", a.configFile()).Msg("Command started")
	return nil
}

func (a *app) configFile() string {
	if a.configPath != "" {
		return paths.ExpandHome(a.configPath)
	}
	return paths.DefaultConfigFilePath()
}

// paths resolves the install root from install.root (which --root overrides),
// discovering it when empty. A warning is printed when no game folder was
// found on disk.
func (a *app) paths(cmd *cobra.Command) (paths.Paths, error) {
	p, err := paths.New(a.cfg.Install.Root)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning+"\n", p.Root())
	}
	log.Debug().Str("root", p.Root()).Bool("fallback", p.UsedFallback()).Msg("Using install root")
	return p, nil
}

// renderer creates the human-readable renderer for the command's output
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	return ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
