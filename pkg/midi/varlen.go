package midi

// MaxVarLen is the largest value a variable length quantity may hold in a MIDI file.
const MaxVarLen = 0x0FFFFFFF

const maxVarLenBytes = 4

// DecodeVarLen decodes the variable length quantity at the start of buf
// and returns its value together with the number of bytes it occupied.
func DecodeVarLen(buf []byte) (x uint32, n int, err error) {
	c := newCursor(buf)
	x, err = ReadVarLen(c)
	return x, c.Offset(), err
}

// ReadVarLen returns the variable length value at the exact cursor location.
func ReadVarLen(c *Cursor) (uint32, error) {
	start := c.Offset()

	var x uint32
	for n := 0; ; n++ {
		if n == maxVarLenBytes {
			return 0, newError(ErrVarLenOverflow, start, int64(n+1))
		}

		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}

		x = x<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return x, nil
		}
	}
}

// dataLen is the number of data bytes following a channel status of the given type.
func dataLen(msgType byte, singleByteMsgs bool) int {
	if singleByteMsgs && (msgType == ProgramChange || msgType == ChannelPressure) {
		return 1
	}
	return 2
}
