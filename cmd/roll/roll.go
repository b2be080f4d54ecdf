package main

import (
	"sort"

	"github.com/Garik-/midiparse/pkg/midi"
	"github.com/fogleman/gg"
)

type note struct {
	track    int
	channel  uint8
	key      uint8
	velocity uint8
	start    uint64
	end      uint64
}

type noteKey struct {
	channel uint8
	key     uint8
}

// collectNotes pairs every sounding NoteOn with the next NoteOff of the same
// key and channel. NoteOn with velocity 0 counts as NoteOff. Notes left open
// end with their track.
func collectNotes(tracks []*midi.Track) []note {
	var notes []note

	for i, track := range tracks {
		open := make(map[noteKey]int)

		for _, e := range track.Events {
			k := noteKey{channel: e.Channel, key: e.Note}

			switch {
			case e.MsgType == midi.NoteOn && e.Velocity > 0:
				if j, ok := open[k]; ok {
					notes[j].end = e.Time
				}
				open[k] = len(notes)
				notes = append(notes, note{track: i, channel: e.Channel, key: e.Note, velocity: e.Velocity, start: e.Time})

			case e.MsgType == midi.NoteOn || e.MsgType == midi.NoteOff:
				if j, ok := open[k]; ok {
					notes[j].end = e.Time
					delete(open, k)
				}
			}
		}

		for _, j := range open {
			notes[j].end = track.Time
		}
	}

	sort.SliceStable(notes, func(a, b int) bool {
		return notes[a].start < notes[b].start
	})

	return notes
}

var palette = [][3]float64{
	{0.95, 0.45, 0.25},
	{0.30, 0.70, 0.95},
	{0.55, 0.90, 0.35},
	{0.95, 0.80, 0.25},
	{0.80, 0.45, 0.95},
}

// render draws notes as a piano roll, time left to right, pitch bottom to top.
func render(notes []note, width int, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0.08, 0.08, 0.1)
	dc.Clear()

	if len(notes) == 0 {
		return dc
	}

	lowKey, highKey := notes[0].key, notes[0].key
	var total uint64
	for _, n := range notes {
		if n.key < lowKey {
			lowKey = n.key
		}
		if n.key > highKey {
			highKey = n.key
		}
		if n.end > total {
			total = n.end
		}
	}
	if total == 0 {
		total = 1
	}

	rows := float64(highKey-lowKey) + 1
	rowHeight := float64(height) / rows
	scale := float64(width) / float64(total)

	dc.SetRGB(0.15, 0.15, 0.18)
	dc.SetLineWidth(1)
	for k := lowKey; k <= highKey; k++ {
		if k%12 == 0 {
			y := float64(highKey-k+1) * rowHeight
			dc.DrawLine(0, y, float64(width), y)
			dc.Stroke()
		}
		if k == highKey {
			break
		}
	}

	for _, n := range notes {
		c := palette[n.track%len(palette)]
		alpha := 0.35 + 0.65*float64(n.velocity)/127
		dc.SetRGBA(c[0], c[1], c[2], alpha)

		x := float64(n.start) * scale
		w := float64(n.end-n.start) * scale
		if w < 1 {
			w = 1
		}
		y := float64(highKey-n.key) * rowHeight
		dc.DrawRectangle(x, y, w, rowHeight)
		dc.Fill()
	}

	return dc
}
