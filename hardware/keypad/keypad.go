// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package keypad implements the sixteen key input device and the key-wait
// state machine used by the FX0A instruction.
//
// The keypad is in one of two states: running, or waiting for a key on
// behalf of a register. While waiting the machine must not execute
// instructions; the Chip8.Step() function consults IsWaiting() before
// fetching. A key-down event resolves the wait. A key-up event only ever
// updates the key table.
package keypad

import (
	"github.com/kevinadari/gopher8/curated"
)

// NumKeys is the number of keys on the keypad. Key codes run from 0x0 to
// 0xf.
const NumKeys = 16

// Sentinal error messages.
const (
	InvalidKey = "keypad: invalid key (%#02x)"
)

// value of waitRegister when no key-wait is in progress.
const notWaiting = -1

// Keypad is the input device of the machine.
type Keypad struct {
	keys [NumKeys]bool

	// the register that will receive the next key press, or notWaiting
	waitRegister int
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{waitRegister: notWaiting}
}

// Reset releases all keys and abandons any key-wait in progress.
func (kp *Keypad) Reset() {
	for i := range kp.keys {
		kp.keys[i] = false
	}
	kp.waitRegister = notWaiting
}

// IsPressed returns the state of a single key.
func (kp *Keypad) IsPressed(key uint8) bool {
	return key < NumKeys && kp.keys[key]
}

// WaitForKey puts the keypad into the waiting state on behalf of a register.
// Called by the CPU when executing FX0A.
func (kp *Keypad) WaitForKey(reg uint8) {
	kp.waitRegister = int(reg)
}

// IsWaiting returns true while a key-wait is in progress.
func (kp *Keypad) IsWaiting() bool {
	return kp.waitRegister != notWaiting
}

// KeyDown registers a key press. If a key-wait is in progress it is resolved
// atomically: the second return value is true and the first is the register
// that should receive the key code.
func (kp *Keypad) KeyDown(key uint8) (uint8, bool, error) {
	if key >= NumKeys {
		return 0, false, curated.Errorf(InvalidKey, key)
	}

	kp.keys[key] = true

	if kp.waitRegister == notWaiting {
		return 0, false, nil
	}

	reg := uint8(kp.waitRegister)
	kp.waitRegister = notWaiting
	return reg, true, nil
}

// KeyUp registers a key release. A key-wait in progress is unaffected.
func (kp *Keypad) KeyUp(key uint8) error {
	if key >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}
	kp.keys[key] = false
	return nil
}
