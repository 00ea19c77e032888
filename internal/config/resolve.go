package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/demux"
	"github.com/rorycl/pgdumpanon/internal/locale"
	"github.com/rorycl/pgdumpanon/internal/mutate"
	"github.com/rorycl/pgdumpanon/internal/rules"
)

func resolve(opts Options) (Config, error) {
	cfg := Config{
		Delimiter: opts.Delimiter,
		Format:    demux.ParseFormatFlag(opts.Format),
		Secrets: mutate.Secrets{
			Key:   os.Getenv("SECRET_KEY"),
			Nonce: os.Getenv("SECRET_KEY_NONCE"),
		},
	}

	localeName := locale.Parse(opts.Locale)
	cat := *locale.Get(localeName) // copy: overlays must not mutate the shared default
	if opts.LocaleFile != "" {
		overlay, err := loadLocaleOverlay(opts.LocaleFile, localeName)
		if err != nil {
			return Config{}, err
		}
		cat.Override(overlay)
	}
	cfg.Locale = &cat

	patterns, err := compilePatterns(opts.DeleteTablePatterns)
	if err != nil {
		return Config{}, err
	}
	cfg.DeletePatterns = patterns

	input, err := openInput(opts.Args.Input)
	if err != nil {
		return Config{}, err
	}
	cfg.Input = input

	output, err := openOutput(opts.Output)
	if err != nil {
		return Config{}, err
	}
	cfg.Output = output

	return cfg, nil
}

func compilePatterns(raw []string) ([]rules.TablePattern, error) {
	out := make([]rules.TablePattern, 0, len(raw))
	for _, p := range raw {
		tp, err := rules.CompilePattern(p)
		if err != nil {
			return nil, anonerr.New(anonerr.KindRegexInvalid, p, err)
		}
		out = append(out, tp)
	}
	return out, nil
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, anonerr.New(anonerr.KindIO, path, err)
	}
	return f, nil
}

func openOutput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, anonerr.New(anonerr.KindIO, path, err)
	}
	return f, nil
}

// loadLocaleOverlay decodes a --locale-file TOML document and returns
// the Overlay for the active locale, if the file declares one.
func loadLocaleOverlay(path string, name locale.Name) (*locale.Overlay, error) {
	var file locale.OverlayFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, anonerr.New(anonerr.KindConfig, path, fmt.Errorf("parsing locale file: %w", err))
	}
	overlay, ok := file[string(name)]
	if !ok {
		return nil, nil
	}
	return &overlay, nil
}
