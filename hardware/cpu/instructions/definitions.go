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

package instructions

import (
	"fmt"
)

// OperandFormat describes how the operand fields of an instruction should be
// presented in disassembly output.
type OperandFormat int

// List of operand formats, named for the conventional CHIP-8 assembly
// syntax.
const (
	OperandNone OperandFormat = iota
	OperandAddr               // NNN
	OperandRegByte            // Vx, byte
	OperandRegReg             // Vx, Vy
	OperandReg                // Vx
	OperandSprite             // Vx, Vy, nibble
	OperandV0Addr             // V0, addr
	OperandIAddr              // I, addr
	OperandRegDelay           // Vx, DT
	OperandRegKey             // Vx, K
	OperandDelayReg           // DT, Vx
	OperandSoundReg           // ST, Vx
	OperandIReg               // I, Vx
	OperandFontReg            // F, Vx
	OperandBCDReg             // B, Vx
	OperandRegDump            // [I], Vx
	OperandRegLoad            // Vx, [I]
)

// Definition names a single defined instruction.
type Definition struct {
	Mnemonic string
	Operands OperandFormat
}

// Lookup the definition of a decoded instruction. The second return value is
// false if the instruction word does not name a defined instruction. There
// are no silent no-ops in this machine: an undefined word is an error for
// the executor to deal with.
func Lookup(ins Instruction) (Definition, bool) {
	switch ins.Category {
	case 0x0:
		switch ins.Value {
		case 0x00e0:
			return Definition{"CLS", OperandNone}, true
		case 0x00ee:
			return Definition{"RET", OperandNone}, true
		}
		// machine-code routine calls (0NNN) are deliberately not supported

	case 0x1:
		return Definition{"JP", OperandAddr}, true
	case 0x2:
		return Definition{"CALL", OperandAddr}, true
	case 0x3:
		return Definition{"SE", OperandRegByte}, true
	case 0x4:
		return Definition{"SNE", OperandRegByte}, true
	case 0x5:
		if ins.N == 0x0 {
			return Definition{"SE", OperandRegReg}, true
		}
	case 0x6:
		return Definition{"LD", OperandRegByte}, true
	case 0x7:
		return Definition{"ADD", OperandRegByte}, true

	case 0x8:
		switch ins.N {
		case 0x0:
			return Definition{"LD", OperandRegReg}, true
		case 0x1:
			return Definition{"OR", OperandRegReg}, true
		case 0x2:
			return Definition{"AND", OperandRegReg}, true
		case 0x3:
			return Definition{"XOR", OperandRegReg}, true
		case 0x4:
			return Definition{"ADD", OperandRegReg}, true
		case 0x5:
			return Definition{"SUB", OperandRegReg}, true
		case 0x6:
			return Definition{"SHR", OperandReg}, true
		case 0x7:
			return Definition{"SUBN", OperandRegReg}, true
		case 0xe:
			return Definition{"SHL", OperandReg}, true
		}

	case 0x9:
		if ins.N == 0x0 {
			return Definition{"SNE", OperandRegReg}, true
		}
	case 0xa:
		return Definition{"LD", OperandIAddr}, true
	case 0xb:
		return Definition{"JP", OperandV0Addr}, true
	case 0xc:
		return Definition{"RND", OperandRegByte}, true
	case 0xd:
		return Definition{"DRW", OperandSprite}, true

	case 0xe:
		switch ins.NN {
		case 0x9e:
			return Definition{"SKP", OperandReg}, true
		case 0xa1:
			return Definition{"SKNP", OperandReg}, true
		}

	case 0xf:
		switch ins.NN {
		case 0x07:
			return Definition{"LD", OperandRegDelay}, true
		case 0x0a:
			return Definition{"LD", OperandRegKey}, true
		case 0x15:
			return Definition{"LD", OperandDelayReg}, true
		case 0x18:
			return Definition{"LD", OperandSoundReg}, true
		case 0x1e:
			return Definition{"ADD", OperandIReg}, true
		case 0x29:
			return Definition{"LD", OperandFontReg}, true
		case 0x33:
			return Definition{"LD", OperandBCDReg}, true
		case 0x55:
			return Definition{"LD", OperandRegDump}, true
		case 0x65:
			return Definition{"LD", OperandRegLoad}, true
		}
	}

	return Definition{}, false
}

// String returns the instruction in conventional CHIP-8 assembly syntax, or
// "???" for an undefined instruction word.
func (ins Instruction) String() string {
	def, ok := Lookup(ins)
	if !ok {
		return "???"
	}

	switch def.Operands {
	case OperandNone:
		return def.Mnemonic
	case OperandAddr:
		return fmt.Sprintf("%s %#05x", def.Mnemonic, ins.NNN)
	case OperandRegByte:
		return fmt.Sprintf("%s V%X, %#04x", def.Mnemonic, ins.X, ins.NN)
	case OperandRegReg:
		return fmt.Sprintf("%s V%X, V%X", def.Mnemonic, ins.X, ins.Y)
	case OperandReg:
		return fmt.Sprintf("%s V%X", def.Mnemonic, ins.X)
	case OperandSprite:
		return fmt.Sprintf("%s V%X, V%X, %#03x", def.Mnemonic, ins.X, ins.Y, ins.N)
	case OperandV0Addr:
		return fmt.Sprintf("%s V0, %#05x", def.Mnemonic, ins.NNN)
	case OperandIAddr:
		return fmt.Sprintf("%s I, %#05x", def.Mnemonic, ins.NNN)
	case OperandRegDelay:
		return fmt.Sprintf("%s V%X, DT", def.Mnemonic, ins.X)
	case OperandRegKey:
		return fmt.Sprintf("%s V%X, K", def.Mnemonic, ins.X)
	case OperandDelayReg:
		return fmt.Sprintf("%s DT, V%X", def.Mnemonic, ins.X)
	case OperandSoundReg:
		return fmt.Sprintf("%s ST, V%X", def.Mnemonic, ins.X)
	case OperandIReg:
		return fmt.Sprintf("%s I, V%X", def.Mnemonic, ins.X)
	case OperandFontReg:
		return fmt.Sprintf("%s F, V%X", def.Mnemonic, ins.X)
	case OperandBCDReg:
		return fmt.Sprintf("%s B, V%X", def.Mnemonic, ins.X)
	case OperandRegDump:
		return fmt.Sprintf("%s [I], V%X", def.Mnemonic, ins.X)
	case OperandRegLoad:
		return fmt.Sprintf("%s V%X, [I]", def.Mnemonic, ins.X)
	}

	return def.Mnemonic
}
