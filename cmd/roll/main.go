package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/Garik-/midiparse/pkg/midi"
	"go.uber.org/zap"
)

var (
	inFlag     = flag.String("i", "", "Input midi file")
	outFlag    = flag.String("o", "roll.png", "Output png file")
	widthFlag  = flag.Int("w", 1600, "Image width")
	heightFlag = flag.Int("h", 600, "Image height")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *inFlag == "" || *widthFlag <= 0 || *heightFlag <= 0 {
		flag.Usage()
		return
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	data, err := ioutil.ReadFile(*inFlag)
	if err != nil {
		logger.Fatal("read input", zap.Error(err))
	}

	collector := midi.NewCollector()
	if err := midi.Decode(data, collector, midi.WithSingleDataByteMessages()); err != nil {
		logger.Fatal("cannot parse", zap.String("file", *inFlag), zap.Error(err))
	}

	notes := collectNotes(collector.Tracks)
	logger.Info("notes", zap.Int("tracks", len(collector.Tracks)), zap.Int("notes", len(notes)))

	if err := render(notes, *widthFlag, *heightFlag).SavePNG(*outFlag); err != nil {
		logger.Fatal("save png", zap.Error(err))
	}
}
