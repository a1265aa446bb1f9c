package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/factory/internal/version"
	"github.com/arthur-debert/factory/pkg/cobrax/topics"
	"github.com/arthur-debert/factory/pkg/config"
	"github.com/arthur-debert/factory/pkg/logging"
	"github.com/arthur-debert/factory/pkg/output"
	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFiles embed.FS

type rootOptions struct {
	verbosity  int
	format     string
	configFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "factory",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.SetUsageTemplate(usageTemplate)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return output.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newCreateCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if sub, err := fs.Sub(helpFiles, "help"); err == nil {
		_, _ = topics.InitializeWithOptions(rootCmd, sub, topics.Options{Renderer: topicRenderer()})
	}

	return rootCmd
}

// setup loads the configuration, configures logging and seals the
// registries. Every production has registered by the time a command runs.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.configFile != "" {
		cfg, err := config.Load(config.LoadOptions{ConfigFile: o.configFile})
		if err != nil {
			return err
		}
		config.Initialize(cfg)
	}
	cfg := config.Get()

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: max(o.verbosity, cfg.Logging.Verbosity),
		Console:   cmd.ErrOrStderr(),
		LogFile:   cfg.Logging.File,
	})

	sealed := registry.SealAll()
	log.Debug().
		Str("command", cmd.Name()).
		Int("sealed", sealed).
		Msg("Command started")
	return nil
}

// renderer creates the output renderer for the --format flag, falling back
// to the configured format
func (o *rootOptions) renderer(cmd *cobra.Command) (output.Renderer, error) {
	format := o.format
	if format == "" {
		format = config.Get().Output.Format
	}
	return output.NewFromString(cmd.OutOrStdout(), format)
}

func topicRenderer() topics.Renderer {
	if os.Getenv("NO_COLOR") != "" || !stdoutIsTerminal() {
		return &topics.PlainRenderer{}
	}
	return topics.NewGlamourRenderer()
}
