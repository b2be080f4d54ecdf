package midi

import (
	"encoding/binary"
	"fmt"
)

func chunk(id string, body ...byte) []byte {
	out := make([]byte, 8, 8+len(body))
	copy(out, id)
	binary.BigEndian.PutUint32(out[4:], uint32(len(body)))
	return append(out, body...)
}

func header(format, tracks, division uint16) []byte {
	body := make([]byte, 6)
	binary.BigEndian.PutUint16(body[0:], format)
	binary.BigEndian.PutUint16(body[2:], tracks)
	binary.BigEndian.PutUint16(body[4:], division)
	return chunk("MThd", body...)
}

func track(events ...byte) []byte {
	return chunk("MTrk", events...)
}

func file(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// recorder is a Sink that writes every notification down as a line.
type recorder struct {
	calls []string

	failOn string
	err    error
}

func (r *recorder) add(kind string, format string, args ...interface{}) error {
	r.calls = append(r.calls, kind+" "+fmt.Sprintf(format, args...))
	if kind == r.failOn {
		return r.err
	}
	return nil
}

func (r *recorder) FileHeader(h FileHeader) error {
	return r.add("header", "%d %d %d %d", h.Size, h.Format, h.Tracks, h.Division)
}

func (r *recorder) TrackStart(t TrackStart) error {
	return r.add("track", "%d %d", t.Index, t.Length)
}

func (r *recorder) UnknownChunk(c Chunk) error {
	return r.add("unknown", "%s %d", c.ID[:], c.Length)
}

func (r *recorder) ChannelEvent(e ChannelEvent) error {
	return r.add("event", "%d %#x %d %#x %#x", e.Delta, e.Status, e.Channel, e.Data0, e.Data1)
}

func (r *recorder) RunningStatusEvent(e ChannelEvent) error {
	return r.add("running", "%d %#x %d %#x %#x", e.Delta, e.Status, e.Channel, e.Data0, e.Data1)
}

func (r *recorder) MetaEvent(e MetaEvent) error {
	return r.add("meta", "%d %#x %q", e.Delta, e.Type, e.Data)
}

func (r *recorder) SysExEvent(e SysExEvent) error {
	return r.add("sysex", "%d %t %x", e.Delta, e.Escape, e.Data)
}
