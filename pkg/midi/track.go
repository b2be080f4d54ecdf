package midi

// trackState is the running status of one track chunk.
type trackState struct {
	status byte
	ok     bool
}

func (s *trackState) set(status byte) {
	s.status, s.ok = status, true
}

func (s *trackState) reset() {
	s.status, s.ok = 0, false
}

// decodeTrack consumes every event of a track body. Meta and sysex events
// cancel running status unless keepRunningStatus is set.
func decodeTrack(c *Cursor, sink Sink, opts options) error {
	var state trackState

	for !c.AtEnd() {
		delta, err := ReadVarLen(c)
		if err != nil {
			return err
		}

		// status byte give us the msg type and channel.
		x, err := c.Peek()
		if err != nil {
			return err
		}

		switch {
		case x == metaStatus:
			err = parseMetaEvent(c, sink, delta)
			if !opts.keepRunningStatus {
				state.reset()
			}

		case x == sysExStatus || x == escapeStatus:
			err = parseSysExEvent(c, sink, delta)
			if !opts.keepRunningStatus {
				state.reset()
			}

		case x&0xF0 == 0xF0:
			return newError(ErrUnexpectedStatus, c.Offset(), int64(x))

		case x&0x80 != 0:
			if _, err := c.Next(1); err != nil {
				return err
			}
			state.set(x)
			err = parseChannelEvent(c, delta, x, opts.singleByteMsgs, sink.ChannelEvent)

		default:
			if !state.ok {
				return newError(ErrRunningStatusWithoutPriorEvent, c.Offset(), int64(x))
			}
			err = parseChannelEvent(c, delta, state.status, opts.singleByteMsgs, sink.RunningStatusEvent)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func parseChannelEvent(c *Cursor, delta uint32, statusByte byte, singleByteMsgs bool, notify func(ChannelEvent) error) error {
	e := ChannelEvent{
		Delta:   delta,
		Status:  statusByte >> 4,
		Channel: statusByte & 0xF,
		Offset:  c.Offset(),
	}

	data, err := c.Next(dataLen(e.Status, singleByteMsgs))
	if err != nil {
		return err
	}

	e.Data0 = data[0]
	if len(data) > 1 {
		e.Data1 = data[1]
	}

	return sinkError(e.Offset, notify(e))
}

func parseMetaEvent(c *Cursor, sink Sink, delta uint32) error {
	e := MetaEvent{Delta: delta, Offset: c.Offset()}

	head, err := c.Next(2)
	if err != nil {
		return err
	}
	e.Type = head[1]

	if e.Data, err = payload(c, ErrMetaEventPayloadExceedsChunk); err != nil {
		return err
	}

	return sinkError(e.Offset, sink.MetaEvent(e))
}

func parseSysExEvent(c *Cursor, sink Sink, delta uint32) error {
	e := SysExEvent{Delta: delta, Offset: c.Offset()}

	status, err := c.ReadByte()
	if err != nil {
		return err
	}
	e.Escape = status == escapeStatus

	if e.Data, err = payload(c, ErrSysExPayloadExceedsChunk); err != nil {
		return err
	}

	return sinkError(e.Offset, sink.SysExEvent(e))
}

// payload reads a length prefixed block that must end inside the chunk.
func payload(c *Cursor, exceeds error) ([]byte, error) {
	n, err := ReadVarLen(c)
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(c.Len()) {
		return nil, newError(exceeds, c.Offset(), int64(n))
	}
	return c.Next(int(n))
}
