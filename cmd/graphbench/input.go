package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphbench/config"
)

// Input holds the persistent flags and the state resolved from them before
// any subcommand runs.
type Input struct {
	configPath string
	dir        string
	verbose    bool
	logFormat  string

	cfg    config.Config
	logger *logrus.Logger
}

// resolve loads the config file (or the defaults) and applies the
// persistent flags that were set on the command line.
func (i *Input) resolve(flags *pflag.FlagSet, stderr io.Writer) error {
	cfg := config.Default()
	if i.configPath != "" {
		var err error
		if cfg, err = config.Load(i.configPath); err != nil {
			return err
		}
	}
	if flags.Changed("dir") {
		cfg.Dir = i.dir
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = i.logFormat
	}
	if i.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	i.cfg = cfg
	i.logger = newLogger(cfg.Log, stderr)
	return nil
}

func newLogger(c config.Log, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	if lvl, err := logrus.ParseLevel(c.Level); err == nil {
		l.SetLevel(lvl)
	}
	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors: !isTerminal(out),
			FullTimestamp: true,
		})
	}
	return l
}

func isTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}
