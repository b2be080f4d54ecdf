package midi

import "go.uber.org/zap"

// Parser decodes one in-memory MIDI file and reports what it finds to a Sink.
// A Parser is not safe for concurrent use; independent Parsers are.
type Parser struct {
	data []byte
	sink Sink
	opts options

	c          *Cursor
	sawHeader  bool
	trackCount int
}

// NewParser borrows data for the duration of every Parse call.
func NewParser(data []byte, sink Sink, opts ...Option) *Parser {
	if sink == nil {
		sink = NopSink{}
	}
	return &Parser{data: data, sink: sink, opts: newOptions(opts)}
}

// Decode parses data in one call.
func Decode(data []byte, sink Sink, opts ...Option) error {
	return NewParser(data, sink, opts...).Parse()
}

// Parse walks the whole buffer. Every call starts over from the first byte.
func (p *Parser) Parse() error {
	p.c = newCursor(p.data)
	p.sawHeader = false
	p.trackCount = 0

	log := p.opts.log.Named("parse")

	for !p.c.AtEnd() {
		chunk, err := IDnSize(p.c)
		if err != nil {
			return err
		}

		log.Debug("chunk",
			zap.Stringer("type", chunk.Type),
			zap.Uint32("length", chunk.Length),
			zap.Int("offset", chunk.Offset))

		switch chunk.Type {
		case ChunkHeader:
			err = p.parseHeader(chunk)
		case ChunkTrack:
			err = p.parseTrack(chunk)
		default:
			err = p.parseUnknown(chunk)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) parseHeader(chunk Chunk) error {
	if p.sawHeader {
		return newError(ErrDuplicateHeaderChunk, chunk.Offset, 0)
	}
	p.sawHeader = true

	h, err := decodeHeader(p.c, chunk)
	if err != nil {
		return err
	}

	return sinkError(chunk.Offset, p.sink.FileHeader(h))
}

func (p *Parser) parseTrack(chunk Chunk) error {
	if !p.sawHeader {
		return newError(ErrTrackBeforeHeader, chunk.Offset, 0)
	}
	if p.opts.maxTracks > 0 && p.trackCount >= p.opts.maxTracks {
		return newError(ErrTooManyTracks, chunk.Offset, int64(p.trackCount+1))
	}
	if err := checkBody(p.c, chunk); err != nil {
		return err
	}

	body, err := p.c.Sub(int(chunk.Length))
	if err != nil {
		return err
	}

	start := TrackStart{Index: p.trackCount, Length: chunk.Length, Offset: body.Offset()}
	p.trackCount++

	if err := p.sink.TrackStart(start); err != nil {
		return sinkError(chunk.Offset, err)
	}

	return decodeTrack(body, p.sink, p.opts)
}

func (p *Parser) parseUnknown(chunk Chunk) error {
	if err := checkBody(p.c, chunk); err != nil {
		return err
	}
	if err := p.sink.UnknownChunk(chunk); err != nil {
		return sinkError(chunk.Offset, err)
	}
	return p.c.Skip(int(chunk.Length))
}
