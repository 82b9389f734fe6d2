package ppp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpaceTable(t *testing.T) {
	cases := []struct {
		space  Space
		opcode byte
		letter byte
	}{
		{SpaceX, 0xC5, 'X'},
		{SpaceY, 0xC6, 'Y'},
		{SpaceP, 0xC4, 'P'},
	}
	for _, tc := range cases {
		in, ok := spaceInfo[tc.space]
		require.True(t, ok)
		require.Equal(t, tc.opcode, in.opcode)
		require.Equal(t, tc.letter, in.letter)
	}

	_, ok := spaceInfo[SpaceNone]
	require.False(t, ok)
	_, ok = spaceInfo[Space(3)]
	require.False(t, ok)
}

func TestSpaceString(t *testing.T) {
	require.Equal(t, "X", SpaceX.String())
	require.Equal(t, "Y", SpaceY.String())
	require.Equal(t, "P", SpaceP.String())
	require.Equal(t, "none", SpaceNone.String())
	require.Equal(t, "0x03", Space(3).String())
}
