// Command inspectree scores system labels against gold labels by feeding a
// YAML corpus through an inspector tree.
//
// Usage:
//
//	inspectree -config config.yml [-input corpus.yml] [-format text|json]
//	inspectree -version
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/inspectree/inspector"
	"github.com/kbukum/inspectree/internal/corpus"
	"github.com/kbukum/inspectree/internal/scoring"
	"github.com/kbukum/inspectree/logger"
	"github.com/kbukum/inspectree/observability"
	"github.com/kbukum/inspectree/version"
)

const serviceName = "inspectree"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Error("inspectree failed", logger.ErrorFields("run", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	configPath := fs.String("config", "", "path to the YAML config file")
	input := fs.String("input", "", "corpus file, overrides config input")
	format := fs.String("format", "", "report format (text or json), overrides config")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintln(stdout, version.GetShortVersion())
		return err
	}

	cfg, err := loadConfig(*configPath, *input, *format)
	if err != nil {
		return err
	}
	if cfg.Version == "dev" {
		cfg.Version = version.GetShortVersion()
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger().WithComponent(serviceName)

	shutdown, err := observability.Init(ctx, cfg.Telemetry, cfg.Name, cfg.Version, cfg.Environment)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}()

	var metrics *observability.Metrics
	if cfg.Telemetry.Enabled {
		if metrics, err = observability.NewMetrics(observability.Meter(serviceName)); err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
	}

	t := buildTree(cfg, log, metrics)
	if err := score(ctx, t, cfg.Input, log); err != nil {
		return err
	}
	return scoring.Write(stdout, cfg.Report.Format, t.results()...)
}

// score drains the corpus at path into the tree.
func score(ctx context.Context, t *tree, path string, log *logger.Logger) error {
	ctx, span := observability.StartSpan(ctx, serviceName+".score")
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrGraphID, t.graph.ID())

	start := time.Now()
	reader, err := corpus.Open(path)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return err
	}
	feed, err := inspector.Open(t.graph, t.root)
	if err != nil {
		_ = reader.Close()
		return err
	}
	if err := inspector.Drain[corpus.Labels](ctx, reader, feed); err != nil {
		observability.SetSpanError(ctx, err)
		return fmt.Errorf("scoring %s (document %q): %w", path, reader.Current().ID, err)
	}

	log.WithContext(ctx).Info("corpus scored", logger.Fields(
		logger.FieldGraphID, t.graph.ID(),
		logger.FieldItems, t.docs.Count(),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return nil
}
