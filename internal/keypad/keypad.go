// Package keypad implements the CHIP-8's 16-key hex keypad. The host
// (presentation window) writes pressed/released state; the CPU reads
// it. Both sides serialize through the same mutex.
package keypad

import (
	"fmt"
	"sync"
)

// NumKeys is the number of CHIP-8 keypad codes, 0x0 through 0xF.
const NumKeys = 16

// Keypad is the pressed/released state of all 16 keys.
type Keypad struct {
	mu      sync.Mutex
	pressed [NumKeys]bool
}

// New returns a Keypad with every key released.
func New() *Keypad {
	return &Keypad{}
}

func checkCode(code int) {
	if code < 0 || code >= NumKeys {
		panic(fmt.Sprintf("keypad: code 0x%X out of range", code))
	}
}

// Press marks code as currently held down.
func (k *Keypad) Press(code int) {
	checkCode(code)
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[code] = true
}

// Release marks code as no longer held down.
func (k *Keypad) Release(code int) {
	checkCode(code)
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[code] = false
}

// IsPressed reports whether code is currently held down.
func (k *Keypad) IsPressed(code int) bool {
	checkCode(code)
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pressed[code]
}

// AnyPressed returns the lowest key code currently held down and true,
// or (0, false) if nothing is pressed. It backs the blocking FX0A wait.
func (k *Keypad) AnyPressed() (code int, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i, p := range k.pressed {
		if p {
			return i, true
		}
	}
	return 0, false
}
