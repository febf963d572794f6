package chip8

import (
	"testing"

	"github.com/lorenzo-arena/chip8go/internal/framebuffer"
	"github.com/lorenzo-arena/chip8go/internal/keypad"
	"github.com/lorenzo-arena/chip8go/internal/timer"
	"github.com/stretchr/testify/require"
)

func newTestVM(t *testing.T, rom []byte) *VM {
	t.Helper()
	vm, err := New(rom, framebuffer.New(), keypad.New(), timer.New(), timer.NewSound())
	require.NoError(t, err)
	return vm
}

func TestClearScreen(t *testing.T) {
	vm := newTestVM(t, []byte{0x00, 0xE0})
	vm.fb.Set(5, 5)

	require.NoError(t, vm.Step())

	require.False(t, vm.fb.IsOn(5, 5))
	require.EqualValues(t, ROMStart+2, vm.pc)
}

func TestCallAndReturn(t *testing.T) {
	rom := []byte{
		0x22, 0x04, // 0x200: call 0x204
		0x00, 0x00, // 0x202: (unused)
		0x00, 0xEE, // 0x204: return
	}
	vm := newTestVM(t, rom)

	require.NoError(t, vm.Step())
	require.EqualValues(t, 0x204, vm.pc)
	require.Equal(t, 1, vm.sp)

	require.NoError(t, vm.Step())
	require.EqualValues(t, 0x202, vm.pc)
	require.Equal(t, 0, vm.sp)
}

func TestReturnFromEmptyStackIsFatal(t *testing.T) {
	vm := newTestVM(t, []byte{0x00, 0xEE})
	require.Error(t, vm.Step())
}

func TestCallStackOverflowIsFatal(t *testing.T) {
	// A call instruction that jumps right back to itself, repeated
	// until the stack is exhausted.
	vm := newTestVM(t, []byte{0x22, 0x00})

	for i := 0; i < StackDepth; i++ {
		require.NoError(t, vm.Step())
	}
	require.Error(t, vm.Step())
}

func TestAddWithCarry(t *testing.T) {
	vm := newTestVM(t, []byte{0x80, 0x14}) // 8014: V0 += V1
	vm.v[0] = 0xFF
	vm.v[1] = 0x02

	require.NoError(t, vm.Step())

	require.EqualValues(t, 0x01, vm.v[0])
	require.EqualValues(t, 1, vm.v[0xF])
}

func TestAddImmediateDoesNotTouchFlag(t *testing.T) {
	vm := newTestVM(t, []byte{0x60, 0xFE, 0x70, 0x05}) // V0 = 0xFE; V0 += 5
	vm.v[0xF] = 0x42

	require.NoError(t, vm.Step())
	require.NoError(t, vm.Step())

	require.EqualValues(t, 0x03, vm.v[0]) // (0xFE + 5) mod 256
	require.EqualValues(t, 0x42, vm.v[0xF])
}

func TestSubtractXYBorrow(t *testing.T) {
	vm := newTestVM(t, []byte{0x80, 0x15}) // V0 -= V1
	vm.v[0] = 3
	vm.v[1] = 5

	require.NoError(t, vm.Step())

	require.EqualValues(t, 0xFE, vm.v[0]) // (3 - 5) wraps mod 256
	require.EqualValues(t, 0, vm.v[0xF])        // borrow occurred
}

func TestSubtractXYNoBorrowOnEquality(t *testing.T) {
	vm := newTestVM(t, []byte{0x80, 0x15}) // V0 -= V1
	vm.v[0] = 7
	vm.v[1] = 7

	require.NoError(t, vm.Step())

	require.EqualValues(t, 0, vm.v[0])
	require.EqualValues(t, 1, vm.v[0xF]) // equality counts as "no borrow"
}

func TestShiftRightIgnoresVy(t *testing.T) {
	vm := newTestVM(t, []byte{0x80, 0x16}) // V0 = V0 >> 1 (modern quirk)
	vm.v[0] = 0x03
	vm.v[1] = 0xFF

	require.NoError(t, vm.Step())

	require.EqualValues(t, 0x01, vm.v[0])
	require.EqualValues(t, 1, vm.v[0xF])
}

func TestJumpOffsetUsesV0(t *testing.T) {
	vm := newTestVM(t, []byte{0xB2, 0x00}) // jump to 0x200 + V0
	vm.v[0] = 0x10

	require.NoError(t, vm.Step())

	require.EqualValues(t, 0x210, vm.pc)
}

func TestSpriteDrawCollisionRoundTrip(t *testing.T) {
	vm := newTestVM(t, []byte{0xD0, 0x15, 0xD0, 0x15}) // draw V0,V1,5 twice
	vm.v[0] = 0
	vm.v[1] = 0
	vm.i = FontStart // '0' glyph: F0 90 90 90 F0

	require.NoError(t, vm.Step())
	require.True(t, vm.fb.IsOn(0, 0))
	require.EqualValues(t, 0, vm.v[0xF])

	require.NoError(t, vm.Step())
	require.EqualValues(t, 1, vm.v[0xF])
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			require.False(t, vm.fb.IsOn(x, y), "expected (%d,%d) clear after second draw", x, y)
		}
	}
}

func TestSpriteClipsAtScreenEdge(t *testing.T) {
	vm := newTestVM(t, []byte{0xD0, 0x18}) // draw V0,V1,8 rows
	vm.v[0] = 60                           // only 4 of 8 columns fit
	vm.v[1] = 30                           // only 2 of 8 rows fit
	vm.i = FontStart

	require.NoError(t, vm.Step())
	// Nothing should panic for the clipped columns/rows; spot check a
	// column that was clipped never got drawn.
	require.False(t, vm.fb.IsOn(0, 0))
}

func TestKeypadSkipPressed(t *testing.T) {
	vm := newTestVM(t, []byte{0xE0, 0x9E})
	vm.v[0] = 0x5
	vm.kp.Press(0x5)

	require.NoError(t, vm.Step())

	require.EqualValues(t, ROMStart+4, vm.pc)
}

func TestKeypadSkipNotPressed(t *testing.T) {
	vm := newTestVM(t, []byte{0xE0, 0xA1})
	vm.v[0] = 0x5

	require.NoError(t, vm.Step())

	require.EqualValues(t, ROMStart+4, vm.pc)
}

func TestWaitKeyBlocksUntilPressed(t *testing.T) {
	vm := newTestVM(t, []byte{0xF0, 0x0A})

	require.NoError(t, vm.Step())
	require.EqualValues(t, ROMStart, vm.pc) // re-executes, no key yet

	vm.kp.Press(0x7)
	require.NoError(t, vm.Step())

	require.EqualValues(t, ROMStart+2, vm.pc)
	require.EqualValues(t, 0x7, vm.v[0])
}

func TestBCDConversion(t *testing.T) {
	vm := newTestVM(t, []byte{0xF0, 0x33})
	vm.v[0] = 156
	vm.i = 0x300

	require.NoError(t, vm.Step())

	require.EqualValues(t, 1, vm.memory[0x300])
	require.EqualValues(t, 5, vm.memory[0x301])
	require.EqualValues(t, 6, vm.memory[0x302])
}

func TestStoreAndLoadRegsDoNotMutateI(t *testing.T) {
	storeVM := newTestVM(t, []byte{0xF2, 0x55}) // store V0..V2
	storeVM.v[0], storeVM.v[1], storeVM.v[2] = 1, 2, 3
	storeVM.i = 0x300

	require.NoError(t, storeVM.Step())

	require.EqualValues(t, 0x300, storeVM.i)
	require.EqualValues(t, 1, storeVM.memory[0x300])
	require.EqualValues(t, 2, storeVM.memory[0x301])
	require.EqualValues(t, 3, storeVM.memory[0x302])

	loadVM := newTestVM(t, []byte{0xF2, 0x65})
	loadVM.i = 0x300
	loadVM.memory[0x300], loadVM.memory[0x301], loadVM.memory[0x302] = 9, 8, 7

	require.NoError(t, loadVM.Step())

	require.EqualValues(t, 0x300, loadVM.i)
	require.EqualValues(t, 9, loadVM.v[0])
	require.EqualValues(t, 8, loadVM.v[1])
	require.EqualValues(t, 7, loadVM.v[2])
}

func TestAddIndexOverflowSetsFlag(t *testing.T) {
	vm := newTestVM(t, []byte{0xF0, 0x1E})
	vm.i = 0xFFFF
	vm.v[0] = 0x01

	require.NoError(t, vm.Step())

	require.EqualValues(t, 0, vm.i)
	require.EqualValues(t, 1, vm.v[0xF])
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	vm := newTestVM(t, []byte{0x50, 0x01}) // 5XY0 requires low nibble 0
	require.Error(t, vm.Step())
}

func TestRomTooLargeIsLoadError(t *testing.T) {
	big := make([]byte, MaxROMSize+1)
	_, err := New(big, framebuffer.New(), keypad.New(), timer.New(), timer.NewSound())
	require.Error(t, err)
}
