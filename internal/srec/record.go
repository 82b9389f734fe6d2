package srec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the record types the transcoder distinguishes. Anything
// that is not a header, a 24-bit data record or the end-of-file marker is
// Other.
type Kind int

const (
	Header     Kind = iota // S0, selects the DSP memory space
	Data                   // S2, 24-bit addressed data
	Terminator             // S8, end of file
	Other
)

// Record is one parsed S-record. ByteLen, Address and Payload are only
// meaningful for Data records, SpaceCode only for Header records.
type Record struct {
	Kind      Kind
	SpaceCode uint8  // memory space selector carried by an S0 record
	ByteLen   int    // declared length: address, payload and checksum bytes
	Address   uint32 // 24-bit load address
	Payload   []byte // data bytes, checksum excluded
}

// ErrShortRecord reports a record whose token ends before the fields its
// tag or length byte promise.
var ErrShortRecord = errors.New("srec: record shorter than declared length")

// Parse interprets one record token. The trailing checksum byte is
// carried by the input but never validated; the records come straight out
// of the DSP toolchain. Unrecognized tags parse as Other rather than
// failing, since the transcoder treats them as memory-space resets.
func Parse(tok string) (Record, error) {
	if len(tok) < 2 {
		return Record{Kind: Other}, nil
	}
	switch tok[:2] {
	case "S0":
		code, err := hexField(tok, 6, 8, "memory space")
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: Header, SpaceCode: uint8(code)}, nil
	case "S2":
		length, err := hexField(tok, 2, 4, "length")
		if err != nil {
			return Record{}, err
		}
		// The length byte counts the 3 address bytes and the checksum.
		if length < 5 {
			return Record{}, fmt.Errorf("srec: record %q: length 0x%02X leaves no payload", tok, length)
		}
		if len(tok) < 4+2*int(length) {
			return Record{}, fmt.Errorf("srec: record %q: %w", tok, ErrShortRecord)
		}
		addr, err := hexField(tok, 4, 10, "address")
		if err != nil {
			return Record{}, err
		}
		payload, err := hex.DecodeString(tok[10 : 10+2*(int(length)-4)])
		if err != nil {
			return Record{}, fmt.Errorf("srec: record %q: bad payload: %w", tok, err)
		}
		return Record{
			Kind:    Data,
			ByteLen: int(length),
			Address: uint32(addr),
			Payload: payload,
		}, nil
	case "S8":
		return Record{Kind: Terminator}, nil
	default:
		return Record{Kind: Other}, nil
	}
}

func hexField(tok string, lo, hi int, name string) (uint64, error) {
	if len(tok) < hi {
		return 0, fmt.Errorf("srec: record %q: %w", tok, ErrShortRecord)
	}
	v, err := strconv.ParseUint(tok[lo:hi], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("srec: record %q: bad %s field: %w", tok, name, err)
	}
	return v, nil
}
