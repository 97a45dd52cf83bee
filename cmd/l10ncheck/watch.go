package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/l10ncheck/pkg/httpserver"
	"github.com/dmitrymomot/l10ncheck/pkg/logger"
	"github.com/dmitrymomot/l10ncheck/pkg/metrics"
	"github.com/dmitrymomot/l10ncheck/pkg/report"
	"github.com/dmitrymomot/l10ncheck/pkg/watch"
)

// runKey holds the watch run number in the context for log records.
type runKey struct{}

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [key-type...]",
		Short: "Re-verify catalogs whenever catalog files change",
		Long:  "watch runs verify once, then again after every change below the catalog directory. It requires the fs source.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWatch(cmd.Context(), args)
		},
	}
	addReportFlags(cmd)
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090 (env L10N_METRICS_ADDR)")
	cmd.Flags().Duration("debounce", 0, "wait this long for more changes before re-running (env L10N_WATCH_DEBOUNCE)")
	return cmd
}

func (a *app) runWatch(ctx context.Context, args []string) error {
	if a.cfg.Source != SourceFS {
		return &exitError{code: exitFatal, err: ErrWatchRequiresFS}
	}
	opts, err := a.verifyOptions("")
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

	parsers, err := parsersFor(a.cfg.Formats)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	var exts []string
	for _, p := range parsers {
		exts = append(exts, p.Extensions()...)
	}
	w, err := watch.New(a.cfg.Dir, watch.Config{Debounce: a.cfg.WatchDebounce, Extensions: exts}, a.log)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	collector := metrics.New()
	if a.cfg.Metrics.Enabled() {
		metricsCtx, stopMetrics := context.WithCancel(ctx)
		served := a.serveMetrics(metricsCtx, collector)
		defer func() {
			stopMetrics()
			<-served
		}()
	}

	var runs atomic.Int64
	verifyOnce := func(ctx context.Context) {
		ctx = context.WithValue(ctx, runKey{}, runs.Add(1))
		rep, err := verifyTypes(ctx, a.registry, names, src.loader, opts, a.log)
		if err != nil {
			a.log.DebugContext(ctx, "verification run abandoned", logger.Error(err))
			return
		}
		collector.Observe(rep)
		if err := report.Render(a.stdout, rep, opts.format); err != nil {
			a.log.ErrorContext(ctx, "failed to render report", logger.Error(err))
		}
	}

	verifyOnce(ctx)
	return w.Run(ctx, func(ctx context.Context, paths []string) {
		a.log.InfoContext(ctx, "catalogs changed", logger.Count(len(paths)))
		if src.cache != nil {
			src.cache.Purge()
		}
		verifyOnce(ctx)
	})
}

// serveMetrics runs the metrics endpoint until ctx is done. The returned
// channel is closed once the server has stopped.
func (a *app) serveMetrics(ctx context.Context, collector *metrics.Collector) <-chan struct{} {
	log := a.log.With(logger.Component("metrics"))
	srv := httpserver.NewFromConfig(a.cfg.Metrics,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(log *slog.Logger, addr string) {
			log.InfoContext(ctx, "serving metrics", logger.Path(addr+"/metrics"))
		}),
		httpserver.WithStopHook(func(log *slog.Logger) {
			log.DebugContext(ctx, "metrics server stopped")
		}),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Run(ctx, mux); err != nil {
			log.ErrorContext(ctx, "metrics server failed", logger.Error(err))
		}
	}()
	return done
}
