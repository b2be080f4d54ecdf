package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Garik-/midiparse/pkg/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var minimal = []byte{
	'M', 'T', 'h', 'd', 0, 0, 0, 6, 0, 0, 0, 1, 0, 96,
	'M', 'T', 'r', 'k', 0, 0, 0, 14,
	0x00, 0xFF, 0x03, 0x03, 'a', 0x01, 'b',
	0x00, 0xC1, 0x05,
	0x00, 0xFF, 0x2F, 0x00,
}

func TestPrintable(t *testing.T) {
	assert.Equal(t, `ab\x00~\x7f`, printable([]byte{'a', 'b', 0x00, '~', 0x7F}))
	assert.Equal(t, "", printable(nil))
}

func TestDumpFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "smfdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "minimal.mid")
	require.NoError(t, ioutil.WriteFile(name, minimal, 0644))

	var out bytes.Buffer
	require.NoError(t, dumpFile(&out, name, midi.WithSingleDataByteMessages()))

	assert.Equal(t, "MThd chunk:\n"+
		"\theader-size: 6\n"+
		"\tfile-format: single track\n"+
		"\tnumber-of-tracks: 1\n"+
		"\tdivision: 96 ticks per quarter note\n"+
		"MTrk chunk:\n"+
		"\tlength: 14\n"+
		"\tMeta Event:\n"+
		"\t\tdelta_time: 0\n"+
		"\t\ttype: 0x3 (TrackName)\n"+
		"\t\tlength: 3\n"+
		"\t\tdata: a\\x01b\n"+
		"\tEvent:\n"+
		"\t\tdelta_time: 0\n"+
		"\t\tstatus: 12 (ProgramChange)\n"+
		"\t\tchannel: 1\n"+
		"\t\td0: 5\n"+
		"\t\td1: 0\n"+
		"\tMeta Event:\n"+
		"\t\tdelta_time: 0\n"+
		"\t\ttype: 0x2f (EndOfTrack)\n"+
		"\t\tlength: 0\n"+
		"\t\tdata: \n", out.String())
}

func TestDumpFile_TwoDataBytes(t *testing.T) {
	dir, err := ioutil.TempDir("", "smfdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "minimal.mid")
	require.NoError(t, ioutil.WriteFile(name, minimal, 0644))

	// 0xC1 takes 0x05 and 0x00, 0xFF 0x2F reads as a delta time and the last
	// byte is one short of a running status event
	err = dumpFile(ioutil.Discard, name)
	assert.True(t, errors.Is(err, midi.ErrPrematureEndOfData))
}

func TestDumpFile_Errors(t *testing.T) {
	dir, err := ioutil.TempDir("", "smfdump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	err = dumpFile(ioutil.Discard, filepath.Join(dir, "missing.mid"))
	assert.True(t, os.IsNotExist(err))

	name := filepath.Join(dir, "broken.mid")
	require.NoError(t, ioutil.WriteFile(name, minimal[:5], 0644))
	err = dumpFile(ioutil.Discard, name)
	assert.True(t, errors.Is(err, midi.ErrPrematureEndOfData))
}
