package midi

// Sink receives the parse notifications in file order. Returning a non-nil
// error from any method aborts the parse.
type Sink interface {
	FileHeader(h FileHeader) error
	TrackStart(t TrackStart) error
	UnknownChunk(c Chunk) error
	ChannelEvent(e ChannelEvent) error
	RunningStatusEvent(e ChannelEvent) error
	MetaEvent(e MetaEvent) error
	SysExEvent(e SysExEvent) error
}

// NopSink ignores every notification. Embed it to implement only some methods.
type NopSink struct{}

func (NopSink) FileHeader(FileHeader) error           { return nil }
func (NopSink) TrackStart(TrackStart) error           { return nil }
func (NopSink) UnknownChunk(Chunk) error              { return nil }
func (NopSink) ChannelEvent(ChannelEvent) error       { return nil }
func (NopSink) RunningStatusEvent(ChannelEvent) error { return nil }
func (NopSink) MetaEvent(MetaEvent) error             { return nil }
func (NopSink) SysExEvent(SysExEvent) error           { return nil }

// SinkFuncs adapts optional callbacks to a Sink. Nil fields are skipped.
type SinkFuncs struct {
	OnFileHeader         func(FileHeader) error
	OnTrackStart         func(TrackStart) error
	OnUnknownChunk       func(Chunk) error
	OnChannelEvent       func(ChannelEvent) error
	OnRunningStatusEvent func(ChannelEvent) error
	OnMetaEvent          func(MetaEvent) error
	OnSysExEvent         func(SysExEvent) error
}

func (s SinkFuncs) FileHeader(h FileHeader) error {
	if s.OnFileHeader == nil {
		return nil
	}
	return s.OnFileHeader(h)
}

func (s SinkFuncs) TrackStart(t TrackStart) error {
	if s.OnTrackStart == nil {
		return nil
	}
	return s.OnTrackStart(t)
}

func (s SinkFuncs) UnknownChunk(c Chunk) error {
	if s.OnUnknownChunk == nil {
		return nil
	}
	return s.OnUnknownChunk(c)
}

func (s SinkFuncs) ChannelEvent(e ChannelEvent) error {
	if s.OnChannelEvent == nil {
		return nil
	}
	return s.OnChannelEvent(e)
}

func (s SinkFuncs) RunningStatusEvent(e ChannelEvent) error {
	if s.OnRunningStatusEvent == nil {
		return nil
	}
	return s.OnRunningStatusEvent(e)
}

func (s SinkFuncs) MetaEvent(e MetaEvent) error {
	if s.OnMetaEvent == nil {
		return nil
	}
	return s.OnMetaEvent(e)
}

func (s SinkFuncs) SysExEvent(e SysExEvent) error {
	if s.OnSysExEvent == nil {
		return nil
	}
	return s.OnSysExEvent(e)
}
