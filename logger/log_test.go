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

package logger_test

import (
	"testing"

	"github.com/kevinadari/gopher8/logger"
	"github.com/kevinadari/gopher8/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &test.CompareWriter{}

	logger.Write(w)
	test.Equate(t, w.Compare(""), true)

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.Equate(t, w.Compare("test: this is a test\n"), true)

	w.Clear()
	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.Equate(t, w.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for more entries than there are in a Tail() is okay
	w.Clear()
	logger.Tail(w, 100)
	test.Equate(t, w.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// and fewer entries is okay too
	w.Clear()
	logger.Tail(w, 1)
	test.Equate(t, w.Compare("test2: this is another test\n"), true)

	w.Clear()
	logger.Tail(w, 0)
	test.Equate(t, w.Compare(""), true)
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	w := &test.CompareWriter{}

	logger.Logf("tag", "detail %d", 1)
	logger.Logf("tag", "detail %d", 1)
	logger.Logf("tag", "detail %d", 1)
	logger.Write(w)
	test.Equate(t, w.Compare("tag: detail 1 (repeat x3)\n"), true)
}
