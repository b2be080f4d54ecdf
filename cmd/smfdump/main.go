package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/Garik-/midiparse/pkg/midi"
	"go.uber.org/zap"
)

var (
	debugFlag   = flag.Bool("debug", false, "Trace chunk decoding")
	lenientFlag = flag.Bool("lenient", false, "Keep running status across meta and sysex events")
	singleFlag  = flag.Bool("single-byte", false, "Read one data byte after program change and channel pressure")
)

// printer writes every notification in a human readable form.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) error {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
	return p.err
}

// printable renders ASCII as is and everything else as \xNN.
func printable(data []byte) string {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b >= 32 && b <= 126 {
			out = append(out, b)
			continue
		}
		out = append(out, fmt.Sprintf("\\x%.2x", b)...)
	}
	return string(out)
}

func (p *printer) FileHeader(h midi.FileHeader) error {
	return p.printf("MThd chunk:"+
		"\n\theader-size: %d"+
		"\n\tfile-format: %s"+
		"\n\tnumber-of-tracks: %d"+
		"\n\tdivision: %s"+
		"\n", h.Size, h.Format, h.Tracks, h.Division)
}

func (p *printer) TrackStart(t midi.TrackStart) error {
	return p.printf("MTrk chunk:"+
		"\n\tlength: %d"+
		"\n", t.Length)
}

func (p *printer) UnknownChunk(c midi.Chunk) error {
	return p.printf("Unknown chunk %q of length: %d\n", c.ID[:], c.Length)
}

func (p *printer) event(kind string, e midi.ChannelEvent) error {
	return p.printf("\t%s:"+
		"\n\t\tdelta_time: %d"+
		"\n\t\tstatus: %d (%s)"+
		"\n\t\tchannel: %d"+
		"\n\t\td0: %d"+
		"\n\t\td1: %d"+
		"\n", kind, e.Delta, e.Status, midi.MsgTypeName(e.Status), e.Channel, e.Data0, e.Data1)
}

func (p *printer) ChannelEvent(e midi.ChannelEvent) error {
	return p.event("Event", e)
}

func (p *printer) RunningStatusEvent(e midi.ChannelEvent) error {
	return p.event("RunningStatus", e)
}

func (p *printer) MetaEvent(e midi.MetaEvent) error {
	return p.printf("\tMeta Event:"+
		"\n\t\tdelta_time: %d"+
		"\n\t\ttype: 0x%x (%s)"+
		"\n\t\tlength: %d"+
		"\n\t\tdata: %s"+
		"\n", e.Delta, e.Type, midi.MetaName(e.Type), len(e.Data), printable(e.Data))
}

func (p *printer) SysExEvent(e midi.SysExEvent) error {
	return p.printf("\tSysEx Event:"+
		"\n\t\tdelta_time: %d"+
		"\n\t\tescape: %t"+
		"\n\t\tlength: %d"+
		"\n\t\tdata: %s"+
		"\n", e.Delta, e.Escape, len(e.Data), printable(e.Data))
}

func dumpFile(w io.Writer, name string, opts ...midi.Option) error {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return err
	}
	return midi.Decode(data, &printer{w: w}, opts...)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file.mid...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var opts []midi.Option
	if *debugFlag {
		opts = append(opts, midi.WithLogger(logger))
	}
	if *lenientFlag {
		opts = append(opts, midi.WithLenientRunningStatus())
	}
	if *singleFlag {
		opts = append(opts, midi.WithSingleDataByteMessages())
	}

	w := bufio.NewWriter(os.Stdout)
	for _, name := range flag.Args() {
		if err := dumpFile(w, name, opts...); err != nil {
			w.Flush()
			logger.Error("cannot parse", zap.String("file", name), zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
	}

	if err := w.Flush(); err != nil {
		logger.Fatal("flush", zap.Error(err))
	}
}
