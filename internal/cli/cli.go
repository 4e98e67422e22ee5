// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
)

// ParseFlags parses command line flags and returns program and engine options
func ParseFlags() (options.Program, vm.Options, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	vmOptions := vm.NewOptions()
	var breakpoints string
	readOptionFlags(flags, &opts)
	readEngineFlags(flags, &vmOptions, &breakpoints)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, vmOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, vmOptions, err
	}

	if err := validateOptionCombinations(opts, vmOptions); err != nil {
		return opts, vmOptions, err
	}

	vmOptions.Breakpoints, err = parseBreakpoints(breakpoints)
	if err != nil {
		return opts, vmOptions, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, vmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to run, please pass the file to run as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations checks the option values and their combinations
func validateOptionCombinations(opts options.Program, vmOptions vm.Options) error {
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if opts.IPS <= 0 || opts.FPS <= 0 {
		return fmt.Errorf("instructions per second and frames per second need to be positive, got %d and %d",
			opts.IPS, opts.FPS)
	}
	if vmOptions.Height < 0 {
		return fmt.Errorf("invalid frame buffer height %d", vmOptions.Height)
	}
	if _, _, err := opts.PressedKey(); err != nil {
		return err
	}
	if opts.Verify && !opts.Disasm {
		return errors.New("option -verify requires -disasm")
	}
	if opts.Disasm && opts.Realtime {
		return errors.New("option -realtime can not be combined with -disasm")
	}
	return nil
}

// parseBreakpoints parses a comma separated list of hexadecimal addresses.
func parseBreakpoints(s string) ([]data.Address, error) {
	if s == "" {
		return nil, nil
	}

	var addresses []data.Address
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(field)), "0x")
		field = strings.TrimPrefix(field, "$")
		address, err := strconv.ParseUint(field, 16, 12)
		if err != nil {
			return nil, fmt.Errorf("invalid breakpoint address '%s': %w", field, err)
		}
		addresses = append(addresses, data.NewAddress(uint16(address)))
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically output file naming, for example *.ch8")
	flags.BoolVar(&opts.Disasm, "disasm", false, "disassemble the ROM instead of running it")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that the disassembled program recreates the ROM, requires -disasm")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.Frames, "frames", options.DefaultFrames, "number of frames to run before printing the frame buffer")
	flags.IntVar(&opts.IPS, "ips", options.DefaultIPS, "instructions per second")
	flags.IntVar(&opts.FPS, "fps", options.DefaultFPS, "frames per second")
	flags.StringVar(&opts.Key, "key", "", "hexadecimal id of a key to hold pressed while running (0-F)")
	flags.BoolVar(&opts.Realtime, "realtime", false, "pace the frames in real time instead of running as fast as possible")

	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output offsets in comments")
	flags.BoolVar(&opts.ZeroBytes, "z", false, "output the trailing zero bytes of the ROM")
}

func readEngineFlags(flags *flag.FlagSet, opts *vm.Options, breakpoints *string) {
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 seeds from the current time")
	flags.IntVar(&opts.Height, "height", framebuffer.DefaultHeight, "number of frame buffer rows")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.StopOnInvalid, "stop-on-invalid", false, "stop execution at invalid instructions")
	flags.StringVar(breakpoints, "break", "", "comma separated list of hexadecimal breakpoint addresses")
}
