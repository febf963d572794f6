// Package chip8 implements the CHIP-8 virtual machine core: memory,
// registers, stack, PC and I, the fetch/decode/execute loop, and the
// sprite-drawing and timer side effects those instructions trigger.
// The framebuffer, keypad, and timers it operates on are owned here
// but shared by reference with the presentation layer (see
// internal/display and internal/audio): the CPU is the sole mutator of
// the framebuffer, outside goroutines only read it or (for the keypad)
// write their own slice of shared state.
package chip8

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lorenzo-arena/chip8go/internal/framebuffer"
	"github.com/lorenzo-arena/chip8go/internal/keypad"
	"github.com/lorenzo-arena/chip8go/internal/timer"
)

const (
	// MemorySize is the total addressable CHIP-8 memory, 0x000-0xFFF.
	MemorySize = 4096

	// ROMStart is the fixed load address for ROM bytes and the initial
	// program counter value.
	ROMStart = 0x200

	// MaxROMSize is the largest ROM that fits between ROMStart and the
	// end of memory.
	MaxROMSize = MemorySize - ROMStart

	// StackDepth bounds the call stack, well past the 16 frames any
	// real CHIP-8 program nests calls to.
	StackDepth = 100

	// numRegisters is the count of general purpose V registers, V0-VF.
	numRegisters = 16

	// flagRegister is VF, reused by arithmetic/shift/draw instructions
	// as a carry, borrow, or collision flag.
	flagRegister = 0xF

	// cycleHz is the CPU's fetch/decode/execute rate.
	cycleHz = 700
)

// VM is the CHIP-8 interpreter core.
type VM struct {
	memory [MemorySize]byte
	v      [numRegisters]byte
	i      uint16
	pc     uint16

	stack [StackDepth]uint16
	sp    int // points at the next free stack slot; 0 means empty

	delay *timer.Timer
	sound *timer.SoundTimer

	fb *framebuffer.Framebuffer
	kp *keypad.Keypad

	rng *rand.Rand
}

// New constructs a VM with zeroed memory/registers/stack, the font ROM
// loaded at FontStart, and rom copied in at ROMStart. fb and kp are the
// shared framebuffer and keypad the presentation layer also holds;
// delay and sound are the two independent 60Hz timers. An oversized
// ROM is a load error, not a panic.
func New(rom []byte, fb *framebuffer.Framebuffer, kp *keypad.Keypad, delay *timer.Timer, sound *timer.SoundTimer) (*VM, error) {
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("chip8: rom is %d bytes, max is %d", len(rom), MaxROMSize)
	}

	vm := &VM{
		pc:    ROMStart,
		delay: delay,
		sound: sound,
		fb:    fb,
		kp:    kp,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	copy(vm.memory[FontStart:], fontSet[:])
	copy(vm.memory[ROMStart:], rom)

	return vm, nil
}

// Run executes the fetch/decode/execute loop at cycleHz until stop is
// closed or a cycle returns a fatal error (unknown opcode, stack
// under/overflow, or an out-of-range memory access during FX33/FX55/
// FX65). There is no in-band recovery from such an error; the caller
// is expected to treat it as fatal.
func (vm *VM) Run(stop <-chan struct{}) error {
	ticker := time.NewTicker(time.Second / cycleHz)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			if err := vm.Step(); err != nil {
				return err
			}
		}
	}
}

// Step runs a single fetch/decode/execute cycle.
func (vm *VM) Step() error {
	opcode, err := vm.fetch()
	if err != nil {
		return err
	}

	instr, err := decode(opcode)
	if err != nil {
		return err
	}

	return vm.execute(instr)
}

// fetch reads the big-endian 16-bit word at memory[pc] and advances pc
// by two. A PC that runs off the end of memory is a fatal bounds error.
func (vm *VM) fetch() (uint16, error) {
	if int(vm.pc)+1 >= MemorySize {
		return 0, fmt.Errorf("chip8: pc 0x%04X out of range", vm.pc)
	}
	opcode := uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1])
	vm.pc += 2
	return opcode, nil
}

func (vm *VM) push(addr uint16) error {
	if vm.sp >= StackDepth {
		return fmt.Errorf("chip8: call stack overflow (depth %d)", StackDepth)
	}
	vm.stack[vm.sp] = addr
	vm.sp++
	return nil
}

func (vm *VM) pop() (uint16, error) {
	if vm.sp == 0 {
		return 0, fmt.Errorf("chip8: return from empty call stack")
	}
	vm.sp--
	return vm.stack[vm.sp], nil
}

// FatalExit prints err as a diagnostic and exits the process with
// status 1. The top-level caller (see cmd/run.go) has no other way to
// recover from a fatal VM error.
func FatalExit(err error) {
	fmt.Fprintf(os.Stderr, "chip8: fatal: %v\n", err)
	os.Exit(1)
}
