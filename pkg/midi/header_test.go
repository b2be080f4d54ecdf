package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivision(t *testing.T) {
	metrical := Division(480)
	assert.Equal(t, MetricalTF, metrical.TimeFormat())
	assert.Equal(t, uint16(480), metrical.TicksPerQuarterNote())
	fps, tpf := metrical.SMPTE()
	assert.Zero(t, fps)
	assert.Zero(t, tpf)
	assert.Equal(t, "480 ticks per quarter note", metrical.String())

	timeCode := Division(0xE250) // -30 fps, 80 ticks per frame
	assert.Equal(t, TimeCodeTF, timeCode.TimeFormat())
	assert.Zero(t, timeCode.TicksPerQuarterNote())
	fps, tpf = timeCode.SMPTE()
	assert.Equal(t, uint8(30), fps)
	assert.Equal(t, uint8(80), tpf)
	assert.Equal(t, "30 frames per second, 80 ticks per frame", timeCode.String())
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "single track", SingleTrack.String())
	assert.Equal(t, "multiple tracks", MultiTrack.String())
	assert.Equal(t, "multiple songs", MultiSequence.String())
	assert.Equal(t, "unknown format 7", Format(7).String())
}

func TestIDnSize(t *testing.T) {
	tests := []struct {
		in   []byte
		want ChunkType
	}{
		{[]byte("MThd\x00\x00\x00\x06"), ChunkHeader},
		{[]byte("MTrk\x00\x00\x01\x00"), ChunkTrack},
		{[]byte("mtrk\x00\x00\x01\x00"), ChunkUnknown},
		{[]byte("MTrK\x00\x00\x01\x00"), ChunkUnknown},
	}

	for _, tt := range tests {
		c, err := IDnSize(newCursor(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, c.Type, "%q", tt.in[:4])
		assert.Equal(t, 0, c.Offset)
	}

	c, err := IDnSize(newCursor([]byte("MTrk\x01\x02\x03\x04")))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), c.Length)

	_, err = IDnSize(newCursor([]byte("MTrk\x00\x00\x00")))
	assert.True(t, errors.Is(err, ErrPrematureEndOfData))
}

func TestDecodeHeader(t *testing.T) {
	data := header(1, 3, 960)
	c := newCursor(data)

	chunk, err := IDnSize(c)
	require.NoError(t, err)

	h, err := decodeHeader(c, chunk)
	require.NoError(t, err)
	assert.Equal(t, FileHeader{Size: 6, Format: MultiTrack, Tracks: 3, Division: 960}, h)
	assert.True(t, c.AtEnd())
	assert.Equal(t, "multiple tracks, 3 track(s), 960 ticks per quarter note", h.String())
}

func TestDecodeHeader_Truncated(t *testing.T) {
	data := header(0, 1, 96)[:12]
	c := newCursor(data)

	chunk, err := IDnSize(c)
	require.NoError(t, err)

	_, err = decodeHeader(c, chunk)
	assert.True(t, errors.Is(err, ErrPrematureEndOfData))
}

func TestError_Message(t *testing.T) {
	err := Decode(chunk("MThd", 0, 0, 0, 0), nil)
	require.Error(t, err)
	assert.Equal(t, "midi: unexpected header size - 4 at offset 4", err.Error())

	err = Decode(file(header(0, 1, 96), track(0x00, 0xF4)), nil)
	require.Error(t, err)
	assert.Equal(t, "midi: unexpected status byte - 0xf4 at offset 23", err.Error())
}
