package main

import (
	"context"
	"io/ioutil"
	"sync"

	"github.com/Garik-/midiparse/pkg/midi"
	"go.uber.org/zap"
)

type result struct {
	name   string
	tracks []*midi.Track
	err    error
}

func decodeFile(name string) *result {
	out := &result{name: name}

	data, err := ioutil.ReadFile(name)
	if err != nil {
		out.err = err
		return out
	}

	collector := midi.NewCollector()
	err = midi.Decode(data, collector, midi.WithSingleDataByteMessages(), midi.WithLogger(parserLog.With(zap.String("file", name))))
	if err != nil {
		out.err = err
		return out
	}

	out.tracks = collector.Tracks
	return out
}

// decodeWorker runs cntRoutines decoders over paths until paths is closed or
// ctx is cancelled. done is closed once every decoder has returned.
func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int) (<-chan *result, <-chan struct{}) {
	out := make(chan *result)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(cntRoutines)

	for i := 0; i < cntRoutines; i++ {
		go func(log *zap.Logger) {
			defer wg.Done()

			for {
				var path string
				var ok bool

				select {
				case path, ok = <-paths:
					if !ok {
						return
					}
				case <-ctx.Done():
					log.Debug("context done")
					return
				}

				select {
				case out <- decodeFile(path):
				case <-ctx.Done():
					log.Debug("decodeFile context done", zap.String("path", path))
					return
				}
			}
		}(workerLog.With(zap.Int("worker", i)))
	}

	go func() {
		wg.Wait()
		close(out)
		close(done)
	}()

	return out, done
}
