// Package config resolves the command-line flags, environment
// variables, and optional locale overlay file into the settings the
// rest of the pipeline needs. Flag parsing follows the teacher's
// parseflags.go, generalised from its fixed settings-file flag to
// this program's anonymisation-specific options.
package config

import (
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/demux"
	"github.com/rorycl/pgdumpanon/internal/locale"
	"github.com/rorycl/pgdumpanon/internal/mutate"
	"github.com/rorycl/pgdumpanon/internal/rules"
)

var usage = `: a streaming postgresql dump anonymiser.

Reads a pg_dump plain or custom format dump from stdin (or a file) and
writes an anonymised equivalent to stdout (or a file), applying the
mutation rules declared via anon: schema comments.

pgdumpanon [-l locale] [-d delimiter] [-f format] [--delete-table-pattern P]... [input]`

// Options are the raw go-flags CLI options.
type Options struct {
	Locale              string   `short:"l" long:"locale" default:"en" description:"locale for generated replacement values (en, ru)"`
	Delimiter           string   `short:"d" long:"delimiter" description:"COPY row field delimiter (default: tab)"`
	Format              string   `short:"f" long:"format" description:"force input format: plain (p) or custom (c); default auto-detect"`
	DeleteTablePatterns []string `long:"delete-table-pattern" description:"regex matching tables whose data should be dropped entirely; may be repeated"`
	LocaleFile          string   `long:"locale-file" description:"TOML file overriding locale word lists"`
	Output              string   `short:"o" long:"output" description:"output file (default: stdout)"`
	Args                struct {
		Input string `description:"input file (default: stdin)"`
	} `positional-args:"yes"`
}

// Config is the resolved, ready-to-use configuration the pipeline
// consumes.
type Config struct {
	Input          io.ReadCloser
	Output         io.WriteCloser
	Delimiter      string
	Format         demux.Format
	Locale         *locale.Catalog
	Secrets        mutate.Secrets
	DeletePatterns []rules.TablePattern
}

// Parse parses os.Args (via go-flags) and resolves environment
// variables into a Config.
func Parse() (Config, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = usage

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		return Config{}, anonerr.New(anonerr.KindConfig, "", err)
	}

	return resolve(opts)
}
