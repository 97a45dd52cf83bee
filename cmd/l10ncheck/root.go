package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/l10ncheck/pkg/config"
	"github.com/dmitrymomot/l10ncheck/pkg/logger"
	"github.com/dmitrymomot/l10ncheck/pkg/manifest"
	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

// app is the state shared by all commands of one invocation.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	envFiles []string
	cfg      Config
	log      *slog.Logger
	registry *verifier.Registry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, registry: verifier.NewRegistry()}

	cmd := &cobra.Command{
		Use:           "l10ncheck",
		Short:         "Verify localization catalogs against declared message keys",
		Long:          "l10ncheck compares the message keys declared by key types with the entries of their localization catalogs and reports missing, extra and unreadable catalogs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.PersistentFlags()
	f.StringSliceVar(&a.envFiles, "env-file", nil, "additional .env files to read")
	f.String("log-level", "", "log level: debug, info, warn, error (env L10N_LOG_LEVEL)")
	f.String("log-format", "", "log format: text or json (env L10N_LOG_FORMAT)")
	f.StringSliceP("manifest", "m", nil, "key type manifest files or doublestar patterns (env L10N_MANIFEST)")
	f.String("source", "", "catalog source: fs, redis, postgres, mongo, s3 (env L10N_SOURCE)")
	f.StringP("dir", "d", "", "catalog directory for the fs source (env L10N_CATALOG_DIR)")
	f.StringSlice("formats", nil, "catalog file formats in lookup order (env L10N_CATALOG_FORMATS)")
	f.Int("cache-size", -1, "catalogs kept in memory, 0 disables caching (env L10N_CACHE_SIZE)")

	cmd.AddCommand(newVerifyCmd(a), newWatchCmd(a), newTypesCmd(a))
	return cmd
}

// setup loads configuration, applies flag overrides, builds the logger and
// registers the manifest key types.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg, a.envFiles...); err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	a.applyFlags(cmd)
	if err := a.cfg.Validate(); err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	a.log = logger.New(
		logger.WithOutput(a.stderr),
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(a.cfg.LogFormat)),
		logger.WithContextValue("run", runKey{}),
	)

	if len(a.cfg.Manifests) > 0 {
		m, err := manifest.Glob(a.cfg.Manifests...)
		if err != nil {
			return &exitError{code: exitFatal, err: err}
		}
		if err := m.Register(a.registry); err != nil {
			return &exitError{code: exitFatal, err: err}
		}
		a.log.Debug("loaded manifests", logger.Count(len(m.KeyTypes)))
	}
	return nil
}

// applyFlags overrides configuration with flags set on the command line.
func (a *app) applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	str := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	slice := func(name string, dst *[]string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetStringSlice(name)
		}
	}

	str("log-level", &a.cfg.LogLevel)
	str("log-format", &a.cfg.LogFormat)
	str("source", &a.cfg.Source)
	str("dir", &a.cfg.Dir)
	slice("manifest", &a.cfg.Manifests)
	slice("formats", &a.cfg.Formats)
	if flags.Changed("cache-size") {
		a.cfg.CacheSize, _ = flags.GetInt("cache-size")
	}

	// Command-specific flags.
	str("format", &a.cfg.ReportFormat)
	slice("ignore", &a.cfg.Ignore)
	str("metrics-addr", &a.cfg.Metrics.Addr)
	if flags.Changed("debounce") {
		a.cfg.WatchDebounce, _ = flags.GetDuration("debounce")
	}
}

// typeNames returns args, or every registered key type when args is empty.
func (a *app) typeNames(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	names := a.registry.Names()
	if len(names) == 0 {
		return nil, ErrNoKeyTypes
	}
	return names, nil
}
