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

package keypad_test

import (
	"testing"

	"github.com/kevinadari/gopher8/hardware/keypad"
	"github.com/kevinadari/gopher8/test"
)

func TestKeyTable(t *testing.T) {
	kp := keypad.NewKeypad()

	test.Equate(t, kp.IsPressed(0x5), false)

	_, _, err := kp.KeyDown(0x5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, kp.IsPressed(0x5), true)

	err = kp.KeyUp(0x5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, kp.IsPressed(0x5), false)
}

func TestInvalidKey(t *testing.T) {
	kp := keypad.NewKeypad()

	_, _, err := kp.KeyDown(0x10)
	test.ExpectedFailure(t, err)

	err = kp.KeyUp(0xff)
	test.ExpectedFailure(t, err)
}

func TestKeyWait(t *testing.T) {
	kp := keypad.NewKeypad()

	test.Equate(t, kp.IsWaiting(), false)

	kp.WaitForKey(0x3)
	test.Equate(t, kp.IsWaiting(), true)

	// a key release does not resolve the wait
	err := kp.KeyUp(0x0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, kp.IsWaiting(), true)

	// a key press resolves the wait, naming the target register
	reg, resolved, err := kp.KeyDown(0xa)
	test.ExpectedSuccess(t, err)
	test.Equate(t, resolved, true)
	test.Equate(t, reg, 0x3)
	test.Equate(t, kp.IsWaiting(), false)

	// the same key press also updated the key table
	test.Equate(t, kp.IsPressed(0xa), true)

	// subsequent key presses resolve nothing
	_, resolved, err = kp.KeyDown(0xb)
	test.ExpectedSuccess(t, err)
	test.Equate(t, resolved, false)
}
