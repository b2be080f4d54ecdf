package midi

import "fmt"

const headerSize = 6

// Format is the file format declared by the MThd chunk.
type Format uint16

const (
	SingleTrack   Format = 0
	MultiTrack    Format = 1
	MultiSequence Format = 2
)

func (f Format) String() string {
	switch f {
	case SingleTrack:
		return "single track"
	case MultiTrack:
		return "multiple tracks"
	case MultiSequence:
		return "multiple songs"
	}
	return fmt.Sprintf("unknown format %d", uint16(f))
}

type TimeFormat int

const (
	MetricalTF TimeFormat = iota + 1
	TimeCodeTF
)

// Division is the meaning of delta-time ticks.
type Division uint16

func (d Division) TimeFormat() TimeFormat {
	if d&0x8000 == 0 {
		return MetricalTF
	}
	return TimeCodeTF
}

// TicksPerQuarterNote returns 0 for time code divisions.
func (d Division) TicksPerQuarterNote() uint16 {
	if d.TimeFormat() != MetricalTF {
		return 0
	}
	return uint16(d) & 0x7FFF
}

// SMPTE returns frames per second and ticks per frame, or zeros for metrical divisions.
func (d Division) SMPTE() (fps uint8, ticksPerFrame uint8) {
	if d.TimeFormat() != TimeCodeTF {
		return 0, 0
	}
	// the upper byte is a negative two's complement frame rate
	return uint8(-int8(d >> 8)), uint8(d & 0xFF)
}

func (d Division) String() string {
	if d.TimeFormat() == MetricalTF {
		return fmt.Sprintf("%d ticks per quarter note", d.TicksPerQuarterNote())
	}
	fps, tpf := d.SMPTE()
	return fmt.Sprintf("%d frames per second, %d ticks per frame", fps, tpf)
}

// FileHeader is the content of the MThd chunk.
type FileHeader struct {
	Size     uint32
	Format   Format
	Tracks   uint16
	Division Division
}

func (h FileHeader) String() string {
	return fmt.Sprintf("%s, %d track(s), %s", h.Format, h.Tracks, h.Division)
}

func decodeHeader(c *Cursor, chunk Chunk) (FileHeader, error) {
	h := FileHeader{Size: chunk.Length}

	if chunk.Length != headerSize {
		return h, newError(ErrUnexpectedHeaderSize, chunk.Offset+4, int64(chunk.Length))
	}

	body, err := c.Sub(headerSize)
	if err != nil {
		return h, err
	}

	format, _ := body.Uint16()
	if Format(format) > MultiSequence {
		return h, newError(ErrInvalidFileFormat, chunk.Offset+8, int64(format))
	}
	h.Format = Format(format)

	h.Tracks, _ = body.Uint16()

	division, _ := body.Uint16()
	h.Division = Division(division)

	return h, nil
}
