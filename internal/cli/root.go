package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/importglob/internal/version"
	"github.com/arthur-debert/importglob/pkg/cobrax/topics"
	"github.com/arthur-debert/importglob/pkg/config"
	"github.com/arthur-debert/importglob/pkg/engine"
	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/rules"
	"github.com/arthur-debert/importglob/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions are the persistent flags shared by all commands
type globalOptions struct {
	verbosity  int
	configFile string
	projectDir string
	debug      bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "importglob",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			style.ConfigureWriter(cmd.OutOrStdout())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.projectDir, "project", "p", ".", MsgFlagProject)
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, MsgFlagDebug)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newTransformCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newInitConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds the embedded help topics. Topics that fail to load are
// skipped with a warning.
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		var tm *topics.TopicManager
		tm, err = topics.New(sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
		if err == nil {
			tm.Install(rootCmd)
			return
		}
	}
	log.Warn().Err(err).Msg("Help topics unavailable")
}

// loadConfig reads the layered configuration for the global flags
func (o *globalOptions) loadConfig() (*config.Config, error) {
	loadOpts := config.LoadOptions{
		ProjectDir: o.projectDir,
		ConfigFile: o.configFile,
	}
	if o.debug {
		loadOpts.Overrides = map[string]interface{}{"debug": true}
	}
	return config.Load(loadOpts)
}

// buildPlugin creates the plugin for one run from cfg
func (o *globalOptions) buildPlugin(cfg *config.Config) (*engine.Plugin, error) {
	ruleList, err := rules.FromConfig(cfg.Rules)
	if err != nil {
		return nil, err
	}

	projectDir, err := filepath.Abs(o.projectDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid project directory %s", o.projectDir)
	}

	buildOpts := engine.Options{
		Debug:     cfg.Debug,
		CacheSize: cfg.CacheSize,
	}
	if len(cfg.Aliases) > 0 {
		buildOpts.RemoveAliases = cfg.AliasMap(projectDir).Remove
	}

	logging.GetLogger("cli").Debug().
		Str("project", projectDir).
		Int("rules", len(ruleList)).
		Strs("sources", cfg.Sources).
		Msg("Building plugin")

	return engine.Build(buildOpts, ruleList), nil
}
