package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	data := file(header(1, 2, 480),
		track(
			0x00, 0xFF, 0x03, 0x04, 'b', 'a', 's', 's',
			0x00, 0xC0, 0x21,
			0x00, 0x90, 0x23, 0x64,
			0x83, 0x60, 0x23, 0x00,
			0x87, 0x40, 0x80, 0x23, 0x40,
			0x83, 0x60, 0x90, 0x24, 0x50,
			0x00, 0xFF, 0x2F, 0x00,
		),
		track(0x00, 0xFF, 0x2F, 0x00),
	)

	d := NewCollector()
	require.NoError(t, Decode(data, d, WithSingleDataByteMessages()))

	assert.Equal(t, uint16(480), d.TicksPerQuarterNote)
	assert.Equal(t, MetricalTF, d.TimeFormat)
	assert.Equal(t, MultiTrack, d.Header.Format)
	require.Len(t, d.Tracks, 2)

	bass := d.Tracks[0]
	assert.Equal(t, "bass", bass.Name)
	assert.Equal(t, uint32(33), bass.Length)
	assert.Equal(t, uint64(1920), bass.Time)

	assert.Equal(t, []*Event{
		{Time: 0, TimeDelta: 0, MsgType: NoteOn, Note: 0x23, Velocity: 0x64, VelocityByteOffset: 36, QuarterPosition: 0},
		{Time: 480, TimeDelta: 480, MsgType: NoteOn, Note: 0x23, Velocity: 0, VelocityByteOffset: 40, QuarterPosition: 1},
		{Time: 1440, TimeDelta: 960, MsgType: NoteOff, Note: 0x23, Velocity: 0x40, VelocityByteOffset: 45, QuarterPosition: 3},
		{Time: 1920, TimeDelta: 480, MsgType: NoteOn, Note: 0x24, Velocity: 0x50, VelocityByteOffset: 50, QuarterPosition: 0},
	}, bass.Events)

	assert.Empty(t, d.Tracks[1].Events)
	assert.Len(t, d.Events(), 4)

	for _, e := range d.Events() {
		assert.Equal(t, e.Velocity, data[e.VelocityByteOffset])
	}
}

func TestCollector_TimeCodeDivision(t *testing.T) {
	data := file(header(0, 1, 0xE250), track(0x10, 0x91, 0x30, 0x30, 0x00, 0xFF, 0x2F, 0x00))

	d := NewCollector()
	require.NoError(t, Decode(data, d))

	assert.Equal(t, TimeCodeTF, d.TimeFormat)
	require.Len(t, d.Events(), 1)
	e := d.Events()[0]
	assert.Equal(t, uint8(1), e.Channel)
	assert.Equal(t, uint64(16), e.Time)
	assert.Equal(t, 0, e.QuarterPosition)
}
