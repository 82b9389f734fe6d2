package srec

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderTokens(t *testing.T) {
	in := "S0030001FB\nS2070004000A0B0CD3\r\n\tS8030000FC  \n"
	r := NewReader(strings.NewReader(in))

	var got []string
	for {
		tok, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
	require.Equal(t, []string{"S0030001FB", "S2070004000A0B0CD3", "S8030000FC"}, got)
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader("  \n\t\n"))
	_, err := r.Next()
	require.ErrorIs(t, err, io.EOF)

	// Exhausted readers stay exhausted.
	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}
