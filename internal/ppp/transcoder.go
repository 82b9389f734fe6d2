package ppp

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sg-/srec2inc/internal/srec"
)

const (
	// DefaultPacketSize is used when no size, or an unusable one, is
	// configured.
	DefaultPacketSize = 18
	// MinPacketSize is the 6-byte packet header plus one 24-bit word.
	MinPacketSize = 9

	headerSize = 6
)

// NormalizePacketSize returns n if it is a usable packet size (a multiple
// of 3, at least MinPacketSize) and DefaultPacketSize otherwise.
func NormalizePacketSize(n int) int {
	if n%3 != 0 || n < MinPacketSize {
		return DefaultPacketSize
	}
	return n
}

var (
	// ErrNoSpace reports a data record seen before any S0 header selected
	// a memory space.
	ErrNoSpace = errors.New("ppp: data record with no memory space selected")
	// ErrUnknownSpace reports an S0 space code outside {X, Y, P}.
	ErrUnknownSpace = errors.New("ppp: unknown memory space")
)

// Transcoder converts a stream of S-records into rendered PPP packets.
// It is a single-pass state machine; the only state carried between
// records is the active memory space.
type Transcoder struct {
	w     io.Writer
	size  int   // total packet budget, header included
	space Space // selected by S0 records, dropped by S8 and unknown tags
}

func NewTranscoder(w io.Writer, packetSize int) *Transcoder {
	return &Transcoder{w: w, size: NormalizePacketSize(packetSize)}
}

// Run consumes records from r until end of input, writing the rendered
// packets to the underlying writer. The first record that cannot be
// interpreted aborts the run: a silently wrong ROM image is worse than a
// failed build.
func (t *Transcoder) Run(r *srec.Reader) error {
	for {
		tok, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		rec, err := srec.Parse(tok)
		if err != nil {
			return err
		}
		if err := t.Record(rec); err != nil {
			return fmt.Errorf("record %q: %w", tok, err)
		}
	}
}

// Record processes one parsed record. Only data records produce output.
func (t *Transcoder) Record(rec srec.Record) error {
	switch rec.Kind {
	case srec.Header:
		t.space = Space(rec.SpaceCode)
	case srec.Data:
		return t.data(rec)
	default:
		// S8 and anything unrecognized both drop the space; data that
		// follows without a fresh S0 is refused rather than guessed at.
		t.space = SpaceNone
	}
	return nil
}

// data splits one record's payload across as many packets as the size
// budget requires. Each packet carries whole 24-bit words, so the base
// address of a continuation packet advances by the word count of the
// packet before it.
func (t *Transcoder) data(rec srec.Record) error {
	if t.space == SpaceNone {
		return fmt.Errorf("%w (address %06X)", ErrNoSpace, rec.Address)
	}
	in, ok := spaceInfo[t.space]
	if !ok {
		return fmt.Errorf("%w 0x%02X", ErrUnknownSpace, uint8(t.space))
	}
	addr := rec.Address
	data := rec.Payload
	for {
		n := len(data)
		if n > t.size-headerSize {
			n = t.size - headerSize
		}
		if err := t.packet(in.opcode, in.letter, addr, data[:n], len(data)); err != nil {
			return err
		}
		data = data[n:]
		if len(data) == 0 {
			return nil
		}
		addr += uint32(n / 3)
	}
}

// packet renders one length constant and one byte-array declaration.
// chunk is the payload carried by this packet; remaining counts the
// payload left in the record, chunk included, so the declared length
// tells the host how much of the budget this packet actually uses.
func (t *Transcoder) packet(opcode, letter byte, base uint32, chunk []byte, remaining int) error {
	declared := remaining + headerSize
	if declared > t.size {
		declared = t.size
	}
	label := strippedLabel(base)

	var b strings.Builder
	fmt.Fprintf(&b, "uint32_t const PPP_%c%s_LEN = %d;\n", letter, label, declared)
	fmt.Fprintf(&b, "uint8_t  const PPP_%c%s[] = {", letter, label)
	fmt.Fprintf(&b, "0x%02X,0x00,0x%02X", opcode, len(chunk)/3)
	fmt.Fprintf(&b, ",0x%02X,0x%02X,0x%02X", byte(base>>16), byte(base>>8), byte(base))
	for _, d := range chunk {
		fmt.Fprintf(&b, ",0x%02X", d)
	}
	b.WriteString("};\n\n")

	_, err := io.WriteString(t.w, b.String())
	return err
}

// strippedLabel renders a 24-bit address the way generated symbol names
// carry it: six uppercase hex digits with the leading zero run removed.
// An all-zero address collapses to the empty string.
func strippedLabel(addr uint32) string {
	return strings.TrimLeft(fmt.Sprintf("%06X", addr), "0")
}
