package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lorenzo-arena/chip8go/internal/audio"
	"github.com/lorenzo-arena/chip8go/internal/chip8"
	"github.com/lorenzo-arena/chip8go/internal/config"
	"github.com/lorenzo-arena/chip8go/internal/display"
	"github.com/lorenzo-arena/chip8go/internal/framebuffer"
	"github.com/lorenzo-arena/chip8go/internal/keypad"
	"github.com/lorenzo-arena/chip8go/internal/timer"
	"github.com/spf13/cobra"
)

// displayRefreshHz is the host thread's render/input-poll cadence. It
// is independent of both the CPU's ~700Hz cycle and the timers' 60Hz
// tick; each runs on its own time base.
const displayRefreshHz = 60

var (
	romFlag  string
	nyanFlag bool
)

// runCmd runs the chip8go emulator and blocks until the presentation
// window is closed or a worker fails fatally.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the chip8go emulator",
	Args:  cobra.NoArgs,
	RunE:  runChip8,
}

func init() {
	runCmd.Flags().StringVarP(&romFlag, "rom", "r", "", "path to the CHIP-8 ROM file (required)")
	runCmd.Flags().BoolVar(&nyanFlag, "nyan", false, "enable the color-rotation presentation mode")
	if err := runCmd.MarkFlagRequired("rom"); err != nil {
		panic(err)
	}
}

func runChip8(cmd *cobra.Command, args []string) error {
	cfg := config.Config{ROMPath: romFlag, Nyan: nyanFlag}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rom, err := os.ReadFile(cfg.ROMPath)
	if err != nil {
		return fmt.Errorf("reading rom %q: %w", cfg.ROMPath, err)
	}

	fb := framebuffer.New()
	kp := keypad.New()
	delay := timer.New()
	sound := timer.NewSound()

	vm, err := chip8.New(rom, fb, kp, delay, sound)
	if err != nil {
		return err
	}

	win, err := display.New(display.Config{Nyan: cfg.Nyan})
	if err != nil {
		return err
	}

	beeper := audio.New()

	delay.Start()
	sound.Start(beeper, func(err error) {
		log.Printf("chip8go: audio playback error (continuing): %v", err)
	})

	stop := make(chan struct{})
	cpuDone := make(chan error, 1)
	go runCPUWorker(vm, stop, cpuDone)

	ticker := time.NewTicker(time.Second / displayRefreshHz)
	defer ticker.Stop()

	for {
		select {
		case err := <-cpuDone:
			close(stop)
			if err != nil {
				chip8.FatalExit(err)
			}
			return nil
		case <-ticker.C:
			if win.Closed() {
				close(stop)
				<-cpuDone
				return nil
			}
			win.DrawGraphics(fb)
			win.HandleKeyInput(kp)
		}
	}
}

// runCPUWorker runs the VM's fetch/decode/execute loop in its own
// goroutine and reports either its terminal error or a recovered panic
// on done, so a panic on any worker goroutine terminates the whole
// process via the caller's chip8.FatalExit.
func runCPUWorker(vm *chip8.VM, stop <-chan struct{}, done chan<- error) {
	defer func() {
		if r := recover(); r != nil {
			done <- fmt.Errorf("cpu worker panic: %v", r)
		}
	}()
	done <- vm.Run(stop)
}
