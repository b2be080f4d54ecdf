package midi

import "fmt"

type ChunkType int

const (
	ChunkUnknown ChunkType = iota
	ChunkHeader
	ChunkTrack
)

var (
	headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64}
	trackChunkID  = [4]byte{0x4D, 0x54, 0x72, 0x6B}
)

func (t ChunkType) String() string {
	switch t {
	case ChunkHeader:
		return "MThd"
	case ChunkTrack:
		return "MTrk"
	}
	return "unknown"
}

// Chunk is a decoded chunk header.
type Chunk struct {
	Type   ChunkType
	ID     [4]byte
	Length uint32
	Offset int // absolute offset of the chunk ID
}

func (c Chunk) String() string {
	return fmt.Sprintf("%q (%s) length %d at offset %d", c.ID[:], c.Type, c.Length, c.Offset)
}

// IDnSize reads the 8 byte chunk header.
func IDnSize(c *Cursor) (Chunk, error) {
	chunk := Chunk{Offset: c.Offset()}

	b, err := c.Next(8)
	if err != nil {
		return chunk, err
	}

	copy(chunk.ID[:], b[:4])
	sub := newCursor(b[4:])
	chunk.Length, _ = sub.Uint32()

	switch chunk.ID {
	case headerChunkID:
		chunk.Type = ChunkHeader
	case trackChunkID:
		chunk.Type = ChunkTrack
	default:
		chunk.Type = ChunkUnknown
	}

	return chunk, nil
}

// checkBody verifies the declared body fits in what is left of the data.
func checkBody(c *Cursor, chunk Chunk) error {
	if uint64(chunk.Length) > uint64(c.Len()) {
		return newError(ErrPrematureEndOfData, c.Offset(), int64(chunk.Length))
	}
	return nil
}
