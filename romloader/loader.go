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

// Package romloader is used to specify the location of a ROM file and to
// load it from disk. The SHA1 hash of the loaded data is recorded so that
// ROMs can be identified regardless of filename.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/hardware/memory"
)

// Error messages.
const (
	LoadError = "romloader: %s: %v"
)

// Loader is used to specify the ROM to use. The Data and Hash fields are
// filled by the Load() function.
type Loader struct {
	Filename string

	// the data of the loaded ROM and the SHA1 hash of that data
	Data []byte
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns the filename without path or extension.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// Load the ROM from disk. A program that cannot fit in machine memory is
// rejected here rather than at attach time.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(LoadError, ld.Filename, err)
	}

	if len(data) > memory.MaxProgramSize {
		return curated.Errorf(memory.ProgramTooLarge, len(data))
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}
