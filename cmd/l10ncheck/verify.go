package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10ncheck/pkg/catalog"
	"github.com/dmitrymomot/l10ncheck/pkg/logger"
	"github.com/dmitrymomot/l10ncheck/pkg/report"
	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

func newVerifyCmd(a *app) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "verify [key-type...]",
		Short: "Verify catalogs of the given key types, or of all registered key types",
		Long: "verify checks every declared locale of each key type, or only --locale when given. " +
			"It exits with status 1 when findings are reported and 2 when a key type cannot be verified.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd.Context(), args, locale)
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "verify a single locale, e.g. fr_CA")
	addReportFlags(cmd)
	return cmd
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "report format: text, json, markdown (env L10N_FORMAT)")
	cmd.Flags().StringSlice("ignore", nil, "finding kinds to leave out of the report (env L10N_IGNORE)")
}

// verifyOptions are the run settings derived from configuration and flags.
type verifyOptions struct {
	locale *language.Tag
	ignore []verifier.Kind
	format report.Format
}

func (a *app) verifyOptions(localeName string) (verifyOptions, error) {
	var opts verifyOptions
	if localeName != "" {
		tag, err := catalog.ParseLocale(localeName)
		if err != nil {
			return opts, err
		}
		opts.locale = &tag
	}
	for _, name := range a.cfg.Ignore {
		kind, err := verifier.ParseKind(name)
		if err != nil {
			return opts, err
		}
		opts.ignore = append(opts.ignore, kind)
	}
	format, err := report.ParseFormat(a.cfg.ReportFormat)
	if err != nil {
		return opts, err
	}
	opts.format = format
	return opts, nil
}

func (a *app) runVerify(ctx context.Context, args []string, localeName string) error {
	opts, err := a.verifyOptions(localeName)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	names, err := a.typeNames(args)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	src, err := openSource(ctx, a.cfg, a.log)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	defer src.close()

	rep, err := verifyTypes(ctx, a.registry, names, src.loader, opts, a.log)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	if err := report.Render(a.stdout, rep, opts.format); err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	return exitFor(rep)
}

// verifyTypes verifies each named key type and collects the outcome.
// It returns ctx.Err() wrapped in ErrInterrupted, and no report, once ctx is done.
func verifyTypes(ctx context.Context, reg *verifier.Registry, names []string, loader catalog.Loader, opts verifyOptions, log *slog.Logger) (*report.Report, error) {
	rep := report.New()
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrInterrupted, err)
		}

		v, err := verifier.NewFromName(name, loader,
			verifier.WithRegistry(reg),
			verifier.WithLogger(log),
		)
		if err != nil {
			rep.AddError(name, err)
			continue
		}

		if opts.locale != nil {
			findings := v.Verify(ctx, *opts.locale)
			if err := ctx.Err(); err != nil {
				return nil, errors.Join(ErrInterrupted, err)
			}
			rep.AddType(name, []language.Tag{*opts.locale}, report.Filter(findings, opts.ignore...))
			continue
		}

		findings, err := v.VerifyAllLocales(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Join(ErrInterrupted, ctxErr)
		}
		if err != nil {
			log.ErrorContext(ctx, "key type cannot be verified", logger.KeyType(name), logger.Error(err))
			rep.AddError(name, err)
			continue
		}
		rep.AddType(name, declaredLocales(v), report.Filter(findings, opts.ignore...))
	}

	counts := rep.Counts()
	for _, kind := range verifier.Kinds() {
		if n := counts[kind]; n > 0 {
			log.DebugContext(ctx, "findings by kind", logger.Kind(kind.String()), logger.Count(n))
		}
	}
	log.InfoContext(ctx, "verification finished",
		slog.Int("key_types", len(names)),
		logger.Count(rep.Total()),
	)
	return rep, nil
}

// declaredLocales parses the locales of v. VerifyAllLocales has already
// rejected invalid ones.
func declaredLocales(v *verifier.Verifier) []language.Tag {
	names := v.LocaleNames()
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		if tag, err := catalog.ParseLocale(name); err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

// exitFor maps a report to the verify exit status.
func exitFor(rep *report.Report) error {
	switch {
	case rep.HasErrors():
		return &exitError{code: exitFatal}
	case rep.HasFindings():
		return &exitError{code: exitFindings}
	default:
		return nil
	}
}
