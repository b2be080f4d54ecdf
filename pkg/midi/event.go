package midi

import "fmt"

// Channel message types, the high nibble of a status byte.
const (
	NoteOff byte = 0x8 + iota
	NoteOn
	PolyAftertouch
	ControlChange
	ProgramChange
	ChannelPressure
	PitchBend
)

const (
	metaStatus   = 0xFF
	sysExStatus  = 0xF0
	escapeStatus = 0xF7
)

// Meta event types.
const (
	MetaSequenceNumber = 0x00
	MetaText           = 0x01
	MetaCopyright      = 0x02
	MetaTrackName      = 0x03
	MetaInstrumentName = 0x04
	MetaLyric          = 0x05
	MetaMarker         = 0x06
	MetaCuePoint       = 0x07
	MetaProgramName    = 0x08
	MetaDeviceName     = 0x09
	MetaChannelPrefix  = 0x20
	MetaPort           = 0x21
	MetaEndOfTrack     = 0x2F
	MetaTempo          = 0x51
	MetaSMPTEOffset    = 0x54
	MetaTimeSignature  = 0x58
	MetaKeySignature   = 0x59
	MetaSequencer      = 0x7F
)

var msgTypeNames = map[byte]string{
	NoteOff:         "NoteOff",
	NoteOn:          "NoteOn",
	PolyAftertouch:  "PolyAftertouch",
	ControlChange:   "ControlChange",
	ProgramChange:   "ProgramChange",
	ChannelPressure: "ChannelPressure",
	PitchBend:       "PitchBend",
}

var metaNames = map[byte]string{
	MetaSequenceNumber: "SequenceNumber",
	MetaText:           "Text",
	MetaCopyright:      "Copyright",
	MetaTrackName:      "TrackName",
	MetaInstrumentName: "InstrumentName",
	MetaLyric:          "Lyric",
	MetaMarker:         "Marker",
	MetaCuePoint:       "CuePoint",
	MetaProgramName:    "ProgramName",
	MetaDeviceName:     "DeviceName",
	MetaChannelPrefix:  "ChannelPrefix",
	MetaPort:           "Port",
	MetaEndOfTrack:     "EndOfTrack",
	MetaTempo:          "Tempo",
	MetaSMPTEOffset:    "SMPTEOffset",
	MetaTimeSignature:  "TimeSignature",
	MetaKeySignature:   "KeySignature",
	MetaSequencer:      "Sequencer",
}

// MsgTypeName returns a readable name for a channel message type.
func MsgTypeName(t byte) string {
	if s, ok := msgTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("%#x", t)
}

// MetaName returns a readable name for a meta event type.
func MetaName(t byte) string {
	if s, ok := metaNames[t]; ok {
		return s
	}
	return fmt.Sprintf("%#02x", t)
}

// TrackStart is reported before the first event of a track chunk.
type TrackStart struct {
	Index  int    // zero based position among the track chunks
	Length uint32 // declared body length
	Offset int    // absolute offset of the body
}

// ChannelEvent is a voice message. For running status events Status and
// Channel come from the last channel event of the same track.
//
// Data1 is zero for ProgramChange and ChannelPressure when the parser runs
// with WithSingleDataByteMessages.
type ChannelEvent struct {
	Delta   uint32
	Status  byte // high nibble of the status byte, 0x8..0xE
	Channel byte
	Data0   byte
	Data1   byte
	Offset  int // absolute offset of Data0
}

// StatusByte rebuilds the full status byte.
func (e ChannelEvent) StatusByte() byte {
	return e.Status<<4 | e.Channel
}

// MetaEvent holds a non-playable annotation. Data aliases the parsed buffer.
type MetaEvent struct {
	Delta  uint32
	Type   byte
	Data   []byte
	Offset int // absolute offset of the 0xFF status byte
}

// SysExEvent holds a system exclusive payload. Escape is set for events
// introduced by 0xF7 rather than 0xF0. Data aliases the parsed buffer.
type SysExEvent struct {
	Delta  uint32
	Escape bool
	Data   []byte
	Offset int
}
