package midi

import "go.uber.org/zap"

type options struct {
	log               *zap.Logger
	maxTracks         int
	keepRunningStatus bool
	singleByteMsgs    bool
}

// Option configures a Parser.
type Option func(*options)

// WithLogger traces chunk dispatch at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxTracks limits the number of track chunks; n <= 0 means no limit.
func WithMaxTracks(n int) Option {
	return func(o *options) {
		o.maxTracks = n
	}
}

// WithLenientRunningStatus keeps running status in effect across meta and
// sysex events. By default they cancel it.
func WithLenientRunningStatus() Option {
	return func(o *options) {
		o.keepRunningStatus = true
	}
}

// WithSingleDataByteMessages reads one data byte after ProgramChange and
// ChannelPressure status bytes, as MIDI files encode them. By default every
// channel status is followed by two data bytes.
func WithSingleDataByteMessages() Option {
	return func(o *options) {
		o.singleByteMsgs = true
	}
}

func newOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
