package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/TheusHen/cryptopals/cryptopals/challenge"
)

const success, failure, invalid = 0, 1, 2

var (
	errUsage        = errors.New("invalid usage")
	errStdinReused  = errors.New("standard input can only be read once")
	errVerifyFailed = errors.New("verification failed")
)

type command struct {
	name    string
	args    string
	summary string
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(c *cli, args []string) error
}

var commands = []command{
	{"hex2b64", "HEX...", "convert hex text to base64", 1, -1, (*cli).hexToBase64},
	{"xor", "HEX HEX", "XOR two equal-length hex buffers", 2, 2, (*cli).fixedXOR},
	{"break", "HEX...", "decrypt single-byte XOR ciphertexts", 1, -1, (*cli).breakSingleByteXOR},
	{"list", "", "list the available challenges", 0, 0, (*cli).list},
	{"verify", "", "solve every challenge and check its answer", 0, 0, (*cli).verify},
}

func main() { os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)) }

// run executes one command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return invalid
	}
	if opts.quiet {
		opts.logLevel = "error"
	}
	if !validLogLevel(opts.logLevel) {
		fmt.Fprintf(stderr, "unknown log level %q\n", opts.logLevel)
		return invalid
	}
	logger := newLogger(opts.logLevel, stderr)

	if opts.help || fs.NArg() == 0 {
		usage(stderr, fs)
		return success
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	cmd, ok := findCommand(name)
	if !ok {
		logger.Error("unknown command", "command", name)
		usage(stderr, fs)
		return invalid
	}
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		logger.Error("wrong number of arguments", "command", name, "got", len(rest))
		fmt.Fprintf(stderr, "usage: cryptopals %s %s\n", cmd.name, cmd.args)
		return invalid
	}

	c := &cli{
		stdin:  stdin,
		stdout: bufio.NewWriter(stdout),
		logger: logger.Named(name),
		opts:   opts,
	}
	err := cmd.run(c, rest)
	if flushErr := c.stdout.Flush(); err == nil {
		err = flushErr
	}
	switch {
	case err == nil:
		return success
	case errors.Is(err, errUsage):
		logger.Error("invalid usage", "command", name, "error", err)
		return invalid
	default:
		logger.Error("command failed", "command", name, "error", err)
		return failure
	}
}

func findCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

// usage prints the help menu. It should stay within 80 columns.
func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, "Solutions to the cryptopals set 1 challenges.\n\n"+
		"Usage:\n"+
		"  cryptopals [-h] [-k] [-q] [--log-level LEVEL] COMMAND [ARG...]\n\n"+
		"Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %-8s %s\n", cmd.name, cmd.args, cmd.summary)
	}
	fmt.Fprint(w, "\nOptions:\n")
	fs.PrintDefaults()
	fmt.Fprint(w, "\nAn argument of `-` reads hex text from standard input.\n")
}

type cli struct {
	stdin     io.Reader
	stdout    *bufio.Writer
	logger    hclog.Logger
	opts      *options
	stdinUsed bool
}

// input resolves an argument to hex text, reading standard input for "-".
func (c *cli) input(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	if c.stdinUsed {
		return "", fmt.Errorf("%w: %w", errUsage, errStdinReused)
	}
	c.stdinUsed = true
	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	c.logger.Debug("read standard input", "chars", len(text))
	return text, nil
}

func (c *cli) hexToBase64(args []string) error {
	for _, arg := range args {
		text, err := c.input(arg)
		if err != nil {
			return err
		}
		out, err := challenge.HexToBase64(text)
		if err != nil {
			return err
		}
		c.logger.Debug("encoded", "bytes", len(text)/2)
		fmt.Fprintln(c.stdout, out)
	}
	return nil
}

func (c *cli) fixedXOR(args []string) error {
	a, err := c.input(args[0])
	if err != nil {
		return err
	}
	b, err := c.input(args[1])
	if err != nil {
		return err
	}
	out, err := challenge.FixedXORHex(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, out)
	return nil
}

func (c *cli) breakSingleByteXOR(args []string) error {
	for _, arg := range args {
		text, err := c.input(arg)
		if err != nil {
			return err
		}
		res, err := challenge.BreakSingleByteXORKey(text)
		if err != nil {
			return err
		}
		c.logger.Debug("recovered key", "key", fmt.Sprintf("0x%02x", res.Key), "bytes", len(text)/2)
		if c.opts.key {
			fmt.Fprintf(c.stdout, "0x%02x  %s\n", res.Key, res.Plaintext)
		} else {
			fmt.Fprintln(c.stdout, res.Plaintext)
		}
	}
	return nil
}

func (c *cli) list(_ []string) error {
	for _, ch := range challenge.Set1() {
		fmt.Fprintln(c.stdout, ch)
	}
	return nil
}

func (c *cli) verify(_ []string) error {
	failed := 0
	for _, ch := range challenge.Set1() {
		out, err := ch.Solve()
		switch {
		case err != nil:
			c.logger.Error("solve failed", "challenge", ch.Number, "error", err)
			failed++
			fmt.Fprintln(c.stdout, "FAIL", ch)
		case !ch.Verify(out):
			c.logger.Warn("wrong answer", "challenge", ch.Number, "output", out)
			failed++
			fmt.Fprintln(c.stdout, "FAIL", ch)
		default:
			fmt.Fprintln(c.stdout, "ok  ", ch)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d challenges", errVerifyFailed, failed, len(challenge.Set1()))
	}
	return nil
}
