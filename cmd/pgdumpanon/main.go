// Command pgdumpanon anonymises a PostgreSQL dump file, streaming it
// from stdin (or a file) to stdout (or a file) while leaving its
// structure byte-for-byte intact except where anon: rules mutate
// column values.
package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/config"
	"github.com/rorycl/pgdumpanon/internal/customfmt"
	"github.com/rorycl/pgdumpanon/internal/demux"
	"github.com/rorycl/pgdumpanon/internal/plainfmt"
	"github.com/rorycl/pgdumpanon/internal/relate"
	"github.com/rorycl/pgdumpanon/internal/rewrite"
	"github.com/rorycl/pgdumpanon/internal/rules"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error().Err(err).Msg("anonymisation failed")
		os.Exit(anonerr.ExitCode(err))
	}
}

func run(ctx context.Context, log zerolog.Logger) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	defer cfg.Output.Close()
	if cfg.Input != os.Stdin {
		defer cfg.Input.Close()
	}

	store := rules.NewStore(cfg.DeletePatterns)
	relateStore := relate.NewStore()
	rng := rand.New(rand.NewSource(1))
	rewriter := rewrite.New(store, relateStore, cfg.Locale, cfg.Secrets, rng)

	format, initial, in, err := demux.Sniff(cfg.Input, cfg.Format)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		switch format {
		case demux.FormatCustom:
			done <- customfmt.New(store, rewriter, log).Run(in, cfg.Output, initial)
		default:
			done <- plainfmt.New(store, rewriter, cfg.Delimiter, log).Run(in, cfg.Output)
		}
	}()

	select {
	case <-ctx.Done():
		return anonerr.New(anonerr.KindIO, "", ctx.Err())
	case err := <-done:
		return err
	}
}
