package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrPrematureEndOfData is reported when a fixed-size or length-prefixed read would run past the data.
	ErrPrematureEndOfData = errors.New("premature end of data")
	// ErrUnexpectedHeaderSize is reported when the MThd chunk does not declare exactly 6 bytes.
	ErrUnexpectedHeaderSize = errors.New("unexpected header size")
	// ErrInvalidFileFormat is reported for a file format other than 0, 1 or 2.
	ErrInvalidFileFormat = errors.New("invalid file format")
	// ErrDuplicateHeaderChunk is reported when a second MThd chunk is found.
	ErrDuplicateHeaderChunk = errors.New("duplicate header chunk")
	// ErrTrackBeforeHeader is reported when an MTrk chunk precedes the MThd chunk.
	ErrTrackBeforeHeader = errors.New("track chunk before header chunk")
	// ErrRunningStatusWithoutPriorEvent is reported for a data byte with no running status in effect.
	ErrRunningStatusWithoutPriorEvent = errors.New("running status without prior event")
	// ErrMetaEventPayloadExceedsChunk is reported when a meta event length runs past its track chunk.
	ErrMetaEventPayloadExceedsChunk = errors.New("meta event payload exceeds chunk")
	// ErrSysExPayloadExceedsChunk is reported when a sysex event length runs past its track chunk.
	ErrSysExPayloadExceedsChunk = errors.New("sysex event payload exceeds chunk")
	// ErrVarLenOverflow is reported for a variable length quantity longer than 4 bytes.
	ErrVarLenOverflow = errors.New("variable length quantity overflow")
	// ErrUnexpectedStatus is reported for a system common or real-time status byte inside a track.
	ErrUnexpectedStatus = errors.New("unexpected status byte")
	// ErrTooManyTracks is reported when the file holds more track chunks than WithMaxTracks allows.
	ErrTooManyTracks = errors.New("too many track chunks")
)

// Error describes where and why a parse stopped.
//
// Kind is one of the Err* values of this package, or nil when the parse was
// aborted by the Sink, in which case Err holds the sink's error.
type Error struct {
	Kind   error
	Offset int
	Value  int64
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("midi: sink at offset %d: %v", e.Offset, e.Err)
	}

	switch e.Kind {
	case ErrPrematureEndOfData, ErrDuplicateHeaderChunk, ErrTrackBeforeHeader, ErrRunningStatusWithoutPriorEvent:
		return fmt.Sprintf("midi: %s at offset %d", e.Kind, e.Offset)
	case ErrUnexpectedStatus:
		return fmt.Sprintf("midi: %s - %#x at offset %d", e.Kind, e.Value, e.Offset)
	}

	return fmt.Sprintf("midi: %s - %d at offset %d", e.Kind, e.Value, e.Offset)
}

func (e *Error) Unwrap() error {
	if e.Kind == nil {
		return e.Err
	}
	return e.Kind
}

func newError(kind error, offset int, value int64) *Error {
	return &Error{Kind: kind, Offset: offset, Value: value}
}

func sinkError(offset int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Offset: offset, Err: err}
}
