package main

import (
	"io"

	"github.com/spf13/pflag"
)

type options struct {
	help     bool
	key      bool
	quiet    bool
	logLevel string
}

func newFlagSet(output io.Writer) (*pflag.FlagSet, *options) {
	opts := &options{}
	fs := pflag.NewFlagSet("cryptopals", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SetInterspersed(true)

	fs.BoolVarP(&opts.help, "help", "h", false,
		"print this help menu")

	fs.BoolVarP(&opts.key, "key", "k", false,
		"print the recovered key before each plaintext (break)")

	fs.StringVar(&opts.logLevel, "log-level", defaultLogLevel(),
		"log level: trace, debug, info, warn, error or off\n(default from $"+envLogLevel+")")

	fs.BoolVarP(&opts.quiet, "quiet", "q", false,
		"log only errors (overrides --log-level)")

	/* Order flags as declared, help first. */
	fs.SortFlags = false
	return fs, opts
}
