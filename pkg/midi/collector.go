package midi

// Event is a note message with its absolute time in the track.
type Event struct {
	Time               uint64
	TimeDelta          uint32
	MsgType            uint8
	Channel            uint8
	Note               uint8
	Velocity           uint8
	VelocityByteOffset int64
	QuarterPosition    int
}

// Track holds the note events of one track chunk. Time is the absolute time
// of the last event, end of track included.
type Track struct {
	Name   string
	Length uint32
	Time   uint64
	Events []*Event
}

// Collector is a Sink that keeps the note events of every track.
// NoteOff, NoteOn and PolyAftertouch are kept; other events only advance time.
type Collector struct {
	Header              FileHeader
	TicksPerQuarterNote uint16
	TimeFormat          TimeFormat
	Tracks              []*Track

	currentTrack *Track
	beats        *beatRange
}

func NewCollector() *Collector {
	return &Collector{}
}

func (d *Collector) FileHeader(h FileHeader) error {
	d.Header = h
	d.TimeFormat = h.Division.TimeFormat()
	d.TicksPerQuarterNote = h.Division.TicksPerQuarterNote()
	return nil
}

func (d *Collector) TrackStart(t TrackStart) error {
	d.currentTrack = &Track{Length: t.Length}
	d.Tracks = append(d.Tracks, d.currentTrack)
	d.beats = newBeatRange(uint64(d.TicksPerQuarterNote))
	return nil
}

func (d *Collector) UnknownChunk(Chunk) error {
	return nil
}

func (d *Collector) ChannelEvent(e ChannelEvent) error {
	d.addEvent(e)
	return nil
}

func (d *Collector) RunningStatusEvent(e ChannelEvent) error {
	d.addEvent(e)
	return nil
}

func (d *Collector) MetaEvent(e MetaEvent) error {
	d.currentTrack.Time += uint64(e.Delta)
	if e.Type == MetaTrackName && d.currentTrack.Name == "" {
		d.currentTrack.Name = string(e.Data)
	}
	return nil
}

func (d *Collector) SysExEvent(e SysExEvent) error {
	d.currentTrack.Time += uint64(e.Delta)
	return nil
}

func (d *Collector) addEvent(e ChannelEvent) {
	d.currentTrack.Time += uint64(e.Delta)

	switch e.Status {
	case NoteOff, NoteOn, PolyAftertouch:
	default:
		return
	}

	d.currentTrack.Events = append(d.currentTrack.Events, &Event{
		Time:               d.currentTrack.Time,
		TimeDelta:          e.Delta,
		MsgType:            e.Status,
		Channel:            e.Channel,
		Note:               e.Data0,
		Velocity:           e.Data1,
		VelocityByteOffset: int64(e.Offset) + 1,
		QuarterPosition:    d.beats.seek(d.currentTrack.Time),
	})
}

// Events returns the note events of all tracks in track order.
func (d *Collector) Events() []*Event {
	var events []*Event
	for _, track := range d.Tracks {
		events = append(events, track.Events...)
	}
	return events
}
