// Package ppp turns S-record data into DSP563xx PPP boot packets rendered
// as C byte-array initializers, ready to be compiled into a host MCU
// image and pushed over CHIRP commands.
package ppp

import "fmt"

// Space is the DSP memory space a record loads into, as selected by the
// S0 header of an srec file generated with `srec -S`.
type Space uint8

const (
	SpaceNone Space = 0
	SpaceX    Space = 1
	SpaceY    Space = 2
	SpaceP    Space = 4
)

// spaceInfo maps a memory space to its CHIRP download opcode and the
// letter used in generated symbol names.
var spaceInfo = map[Space]struct {
	opcode byte
	letter byte
}{
	SpaceX: {opcode: 0xC5, letter: 'X'},
	SpaceY: {opcode: 0xC6, letter: 'Y'},
	SpaceP: {opcode: 0xC4, letter: 'P'},
}

func (s Space) String() string {
	if in, ok := spaceInfo[s]; ok {
		return string(in.letter)
	}
	if s == SpaceNone {
		return "none"
	}
	return fmt.Sprintf("0x%02X", uint8(s))
}
