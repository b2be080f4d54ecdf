package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
)

type velocityMap map[uint8]bool
type positionMap map[int]velocityMap
type typeMap map[uint8]positionMap

// note -> type -> position -> velocity
type noteMap map[uint8]typeMap

// database is the JSON form of noteMap read by cmd/humanize.
type database map[uint8]map[uint8]map[int][]int

func (m noteMap) add(note, msgType uint8, position int, velocity uint8) {
	types, ok := m[note]
	if !ok {
		types = make(typeMap)
		m[note] = types
	}

	positions, ok := types[msgType]
	if !ok {
		positions = make(positionMap)
		types[msgType] = positions
	}

	velocities, ok := positions[position]
	if !ok {
		velocities = make(velocityMap)
		positions[position] = velocities
	}

	velocities[velocity] = true
}

func (m noteMap) database() database {
	db := make(database, len(m))
	for note, types := range m {
		db[note] = make(map[uint8]map[int][]int, len(types))
		for msgType, positions := range types {
			db[note][msgType] = make(map[int][]int, len(positions))
			for position, velocities := range positions {
				list := make([]int, 0, len(velocities))
				for v := range velocities {
					list = append(list, int(v))
				}
				sort.Ints(list)
				db[note][msgType][position] = list
			}
		}
	}
	return db
}

// newVelocityMap decodes every file listed in list, one path per line.
func newVelocityMap(parent context.Context, list io.Reader, cntRoutines int) (noteMap, error) {
	log := velocityMapLog
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, readList(ctx, list), cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	m := make(noteMap)

	for result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("%s: %w", result.name, result.err)
		}

		log.Debug("result", zap.String("name", result.name), zap.Int("tracks", len(result.tracks)))

		for _, track := range result.tracks {
			for _, event := range track.Events {
				if event.Velocity == 0 {
					continue
				}

				log.Debug("event", zap.Uint8("note", event.Note), zap.Int("position", event.QuarterPosition))

				m.add(event.Note, event.MsgType, event.QuarterPosition, event.Velocity)
			}
		}
	}

	return m, nil
}
