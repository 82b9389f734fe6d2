package srec

import (
	"io"
	"strings"
	"testing"

	akif "github.com/akif999/srec"
	"github.com/stretchr/testify/require"
)

// The parser deliberately diverges from general-purpose SREC libraries
// (no checksum validation, fixed-offset space codes, tag resets), but on
// a well-formed image the S2 addresses and payloads must agree with what
// the reference library sees.
func TestParseMatchesReferenceLibrary(t *testing.T) {
	const image = "S00600004844521B\n" +
		"S2070004000A0B0CD3\n" +
		"S20A012345DEADBEEF010251\n" +
		"S804000000FB\n"

	var ours []Record
	r := NewReader(strings.NewReader(image))
	for {
		tok, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rec, err := Parse(tok)
		require.NoError(t, err)
		if rec.Kind == Data {
			ours = append(ours, rec)
		}
	}
	require.Len(t, ours, 2)

	ref := akif.NewSrec()
	require.NoError(t, ref.Parse(strings.NewReader(image)))

	type refData struct {
		addr uint32
		data []byte
	}
	var theirs []refData
	for _, rec := range ref.Records {
		if rec.Srectype != "S2" {
			continue
		}
		theirs = append(theirs, refData{addr: rec.Address, data: rec.Data})
	}

	require.Len(t, theirs, len(ours))
	for i, rec := range ours {
		require.Equal(t, theirs[i].addr, rec.Address)
		require.Equal(t, theirs[i].data, rec.Payload)
	}
}
