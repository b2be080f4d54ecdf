package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"time"

	"github.com/Garik-/midiparse/pkg/midi"
	"go.uber.org/zap"
)

var (
	databaseFlag = flag.String("d", "", "The path to the database json file")
	inFlag       = flag.String("i", "", "Input midi file")
	outFlag      = flag.String("o", "", "Output midi file")
	minFlag      = flag.Int("min", 0, "Min velocity")
	maxFlag      = flag.Int("max", 127, "Max velocity")
	seedFlag     = flag.Int64("seed", 0, "Random seed, current time if 0")
)

// note -> type -> quarter position -> velocities
type velocityMap map[uint8]map[uint8]map[int][]int

func importDatabase(name string) (velocityMap, error) {
	bytes, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var data velocityMap
	err = json.Unmarshal(bytes, &data)
	return data, err
}

// randVelocity picks one of velocities strictly between min and max.
func randVelocity(rnd *rand.Rand, velocities []int, min int, max int) (uint8, bool) {
	candidates := make([]int, 0, len(velocities))
	for _, v := range velocities {
		if v > min && v < max {
			candidates = append(candidates, v)
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	return uint8(candidates[rnd.Intn(len(candidates))]), true
}

// humanize rewrites the velocity bytes of data in place and returns how many changed.
func humanize(log *zap.Logger, rnd *rand.Rand, data []byte, db velocityMap, min int, max int) (int, error) {
	collector := midi.NewCollector()
	if err := midi.Decode(data, collector, midi.WithSingleDataByteMessages()); err != nil {
		return 0, err
	}

	changed := 0
	for _, event := range collector.Events() {
		// velocity 0 is a note off in disguise
		if event.Velocity == 0 {
			continue
		}

		velocities, ok := db[event.Note][event.MsgType][event.QuarterPosition]
		if !ok {
			continue
		}

		velocity, ok := randVelocity(rnd, velocities, min, max)
		if !ok {
			continue
		}

		log.Debug("velocity",
			zap.Uint8("note", event.Note),
			zap.Uint8("from", event.Velocity),
			zap.Uint8("to", velocity),
			zap.Int64("offset", event.VelocityByteOffset))

		data[event.VelocityByteOffset] = velocity
		changed++
	}

	return changed, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *databaseFlag == "" || *inFlag == "" || *outFlag == "" {
		flag.Usage()
		return
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := importDatabase(*databaseFlag)
	if err != nil {
		logger.Fatal("import database", zap.Error(err))
	}

	data, err := ioutil.ReadFile(*inFlag)
	if err != nil {
		logger.Fatal("read input", zap.Error(err))
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	changed, err := humanize(logger, rand.New(rand.NewSource(seed)), data, db, *minFlag, *maxFlag)
	if err != nil {
		logger.Fatal("cannot parse", zap.String("file", *inFlag), zap.Error(err))
	}

	if err := ioutil.WriteFile(*outFlag, data, 0644); err != nil {
		logger.Fatal("write output", zap.Error(err))
	}

	logger.Info("done", zap.Int("changed", changed), zap.Int64("seed", seed))
}
