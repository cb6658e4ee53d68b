package main

import (
	"io"
	"os"

	xterm "golang.org/x/term"

	"github.com/mosaicmc/chatrender/internal/config"
	"github.com/mosaicmc/chatrender/internal/logger"
	"github.com/mosaicmc/chatrender/internal/render"
	"github.com/mosaicmc/chatrender/internal/translate"
)

type rootFlags struct {
	configPath string
	lang       string
	logLevel   string
	verbose    bool
}

// resolveConfig merges the optional configuration file with command-line
// overrides. Flags win over the file.
func (f *rootFlags) resolveConfig() (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if f.lang != "" {
		cfg.Locale = f.lang
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	} else if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	return cfg, nil
}

// newLogger builds the diagnostics channel. Console formatting is used when
// stderr is a terminal or the configuration asks for it.
func newLogger(cfg *config.Config) (*logger.Logger, error) {
	human := cfg.Log.Human || xterm.IsTerminal(int(os.Stderr.Fd()))
	return logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: human,
		Writer:        os.Stderr,
	})
}

// buildRenderer wires the translation table and warning sink into a
// renderer.
func buildRenderer(cfg *config.Config, log *logger.Logger) (*render.Renderer, error) {
	table := translate.Table{}
	if cfg.Locale != "" {
		loaded, err := translate.LoadTable(cfg.Locale)
		if err != nil {
			return nil, err
		}
		table = loaded
	}
	return render.New(translate.New(table, log), log), nil
}

// readMessage reads the message payload from path, or from stdin when path
// is "-".
func readMessage(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
