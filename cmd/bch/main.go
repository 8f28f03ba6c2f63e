package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akalin/gobch/bch"
	"github.com/akalin/gobch/errorcode"
	"github.com/akalin/gobch/gf2"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func printUsage(w io.Writer, name string) {
	name = filepath.Base(name)
	fmt.Fprintf(w, `
Usage:
  %s i(nfo) [-n N] [-b B] [-d D]
  %s e(ncode) [-n N] [-b B] [-d D] [--pad] <message bits>
  %s d(ecode) [-n N] [-b B] [-d D] [--flip i,j,...] <codeword bits>

Bits are written most significant first. Bit positions count from
the least significant (rightmost) bit, starting at 0. With --pad, the
message is zero-padded to a multiple of k bits and encoded one block
per line.

`, name, name, name)
}

func exitCode(err error) errorcode.Errorcode {
	switch {
	case err == nil:
		return errorcode.Success
	case errors.Is(err, bch.ErrUncorrectable):
		return errorcode.Uncorrectable
	case errors.Is(err, bch.ErrConfiguration):
		return errorcode.ConfigurationError
	case errors.Is(err, bch.ErrLength), errors.Is(err, gf2.ErrInvalidBit):
		return errorcode.InvalidCommandLineArguments
	}
	return errorcode.LogicError
}

type command struct {
	stdout io.Writer
	logger *log.Logger
	cache  *bch.Cache
}

func (c command) info(p bch.Params) error {
	code, codec, err := c.cache.Get(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "code:      %s\n", code)
	fmt.Fprintf(c.stdout, "field:     GF(2^%d) mod %s\n", code.M, code.Irreducible)
	fmt.Fprintf(c.stdout, "generator: %s (%#x)\n", code.Generator, uint64(code.Generator))
	fmt.Fprintf(c.stdout, "corrects:  %d errors\n", codec.T())
	return nil
}

func (c command) encode(p bch.Params, messageBits string, pad bool) error {
	code, codec, err := c.cache.Get(p)
	if err != nil {
		return err
	}
	message, err := gf2.ParsePoly(messageBits)
	if err != nil {
		return err
	}
	c.logger.Debug("encoding", "code", code, "message", message, "pad", pad)
	if !pad {
		codeword, err := codec.Encode(message)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, codeword)
		return nil
	}

	codewords, err := codec.EncodeBlocks(message)
	if err != nil {
		return err
	}
	for _, codeword := range codewords {
		fmt.Fprintln(c.stdout, codeword)
	}
	return nil
}

func (c command) decode(p bch.Params, codewordBits string, flip []int) ([]int, error) {
	code, codec, err := c.cache.Get(p)
	if err != nil {
		return nil, err
	}
	received, err := gf2.ParsePoly(codewordBits)
	if err != nil {
		return nil, err
	}
	if received.Len() != codec.N() {
		return nil, fmt.Errorf("%w: codeword has %d bits, want %d", bch.ErrLength, received.Len(), codec.N())
	}
	for _, i := range flip {
		if i < 0 || i >= codec.N() {
			return nil, fmt.Errorf("%w: flip position %d out of range", bch.ErrLength, i)
		}
	}
	if len(flip) > 0 {
		received = received.Flip(flip...)
		c.logger.Info("Injected errors", "positions", flip, "received", received)
	}

	c.logger.Debug("decoding", "code", code, "syndromes", codec.Syndromes(received))
	message, positions, err := codec.Decode(received)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(c.stdout, message)
	if len(positions) > 0 {
		fmt.Fprintf(c.stdout, "Corrected positions: %v\n", positions)
	}
	return positions, nil
}

func run(args []string, stdout, stderr io.Writer) errorcode.Errorcode {
	name := args[0]
	if len(args) < 2 {
		printUsage(stderr, name)
		return errorcode.InvalidCommandLineArguments
	}
	switch args[1] {
	case "-h", "--help", "help":
		printUsage(stdout, name)
		return errorcode.Success
	}

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	n := flags.IntP("length", "n", 15, "codeword length; must be odd")
	b := flags.IntP("first-root", "b", 1, "exponent of the first generator root")
	d := flags.IntP("distance", "d", 5, "designed minimum distance")
	flip := flags.IntSlice("flip", nil, "bit positions to flip before decoding")
	pad := flags.Bool("pad", false, "zero-pad the message to a multiple of k and encode it block by block")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Usage = func() {
		printUsage(stderr, name)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[2:]); err != nil {
		// Usage has already been printed for -h.
		if errors.Is(err, pflag.ErrHelp) {
			return errorcode.Success
		}
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return errorcode.InvalidCommandLineArguments
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: filepath.Base(name)})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cache, err := bch.NewCache(1)
	if err != nil {
		logger.Error("Creating code cache failed", "err", err)
		return errorcode.LogicError
	}
	c := command{stdout, logger, cache}
	p := bch.Params{N: *n, B: *b, D: *d}
	positional := flags.Args()

	switch strings.ToLower(args[1]) {
	case "i", "info":
		err = c.info(p)

	case "e", "encode":
		if len(positional) != 1 {
			printUsage(stderr, name)
			return errorcode.InvalidCommandLineArguments
		}
		err = c.encode(p, positional[0], *pad)

	case "d", "decode":
		if len(positional) != 1 {
			printUsage(stderr, name)
			return errorcode.InvalidCommandLineArguments
		}
		var positions []int
		positions, err = c.decode(p, positional[0], *flip)
		if err == nil && len(positions) > 0 {
			return errorcode.Corrected
		}

	default:
		printUsage(stderr, name)
		return errorcode.InvalidCommandLineArguments
	}

	if err != nil {
		code := exitCode(err)
		logger.Error("Failed", "cmd", args[1], "params", p, "err", err, "status", code)
		return code
	}
	return errorcode.Success
}

func main() {
	os.Exit(int(run(os.Args, os.Stdout, os.Stderr)))
}
