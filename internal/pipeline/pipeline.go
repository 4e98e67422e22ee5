// Package pipeline orchestrates the run and disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/verification"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrochip8/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete run or disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the ROM file and runs or disassembles it.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, vmOptions vm.Options, output io.Writer) error {
	p.detector.Detect(opts.Input)

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, vmOptions, output)
}

// ExecuteWithROM runs the pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	vmOptions vm.Options, output io.Writer) error {

	if vmOptions.StartAddress == 0 {
		vmOptions.StartAddress = memory.ProgramStart
	}

	p.printInfo(opts, rom)

	if opts.Disasm {
		if err := p.disassemble(ctx, rom, opts, vmOptions, output); err != nil {
			return fmt.Errorf("disassembling: %w", err)
		}
		return nil
	}

	machine, err := p.run(ctx, rom, opts, vmOptions)
	if err != nil {
		return fmt.Errorf("running: %w", err)
	}
	if err := writer.WriteFrameBuffer(output, machine.ReadFramebuffer()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// run executes the configured number of frames and returns the engine for
// inspection of the final state.
func (p *Pipeline) run(ctx context.Context, rom []byte, opts options.Program, vmOptions vm.Options) (*vm.VM, error) {
	machine, err := vm.New(p.logger, vmOptions)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	if err := machine.LoadProgram(rom); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	key, pressed, err := opts.PressedKey()
	if err != nil {
		return nil, err
	}
	if pressed {
		machine.PressKey(key)
	}

	var frameTick <-chan time.Time
	if opts.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(max(opts.FPS, 1)))
		defer ticker.Stop()
		frameTick = ticker.C
	}

	cyclesPerFrame := opts.CyclesPerFrame()
	for frame := range opts.Frames {
		if err := waitForFrame(ctx, frameTick); err != nil {
			return nil, err
		}

		if err := machine.RunCycles(cyclesPerFrame); err != nil {
			return nil, fmt.Errorf("frame %d: %w", frame, err)
		}

		if machine.State().Kind == vm.Paused {
			p.logger.Info("Paused at breakpoint",
				log.Int("frame", frame),
				log.Stringer("address", machine.ProgramCounter()),
				log.String("registers", formatRegisters(machine)))
			break
		}
	}

	p.logger.Debug("Run finished",
		log.Stringer("state", machine.State()),
		log.Stringer("address", machine.ProgramCounter()),
		log.Int("cycles", int(machine.Cycles())))
	return machine, nil
}

// waitForFrame waits for the next frame tick if one is set and returns an
// error if the context got canceled.
func waitForFrame(ctx context.Context, frameTick <-chan time.Time) error {
	if frameTick == nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("waiting for frame: %w", err)
		}
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for frame: %w", ctx.Err())
	case <-frameTick:
		return nil
	}
}

// disassemble traces the ROM and writes the listing.
func (p *Pipeline) disassemble(ctx context.Context, rom []byte, opts options.Program,
	vmOptions vm.Options, output io.Writer) error {

	dis, err := disasm.New(p.logger, rom, vmOptions.StartAddress)
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}

	app, err := dis.Process(ctx)
	if err != nil {
		return fmt.Errorf("processing disassembly: %w", err)
	}

	w := writer.New(app, output, config.CreateWriterOptions(opts))
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, rom, app); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}
	return nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, rom []byte) {
	if opts.Quiet {
		return
	}

	if opts.Disasm {
		p.logger.Info("Disassembling CHIP-8 ROM",
			log.String("file", opts.Input),
			log.Int("size", len(rom)))
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.Int("frames", opts.Frames),
		log.Int("cycles_per_frame", opts.CyclesPerFrame()))
}

func formatRegisters(machine *vm.VM) string {
	regs := machine.Registers()
	parts := make([]string, 0, len(regs)+1)
	for i, value := range regs {
		parts = append(parts, fmt.Sprintf("V%X=%s", i, value))
	}
	parts = append(parts, "I="+machine.Index().String())
	return strings.Join(parts, " ")
}
