package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

const (
	maxGoroutines = 10
)

var (
	listFlag  = flag.String("l", "", "The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	maxFlag   = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	outFlag   = flag.String("o", "", "Output database json file, stdout if empty")
	debugFlag = flag.Bool("debug", false, "Enable debug logging")
)

// readList sends the non-empty lines of r until r is exhausted or ctx is cancelled.
func readList(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	go func() {
		defer close(out)

		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}

			select {
			case out <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func writeDatabase(w io.Writer, m noteMap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m.database())
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" || *maxFlag <= 0 {
		flag.Usage()
		return
	}

	newLogger := zap.NewProduction
	if *debugFlag {
		newLogger = zap.NewDevelopment
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *debugFlag {
		enableDebugLogging(logger)
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		logger.Fatal("open list", zap.Error(err))
	}
	defer f.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		stop()
	}()

	m, err := newVelocityMap(ctx, f, *maxFlag)
	if err != nil {
		logger.Fatal("scan", zap.Error(err))
	}

	var w io.Writer = os.Stdout
	if *outFlag != "" {
		out, err := os.Create(*outFlag)
		if err != nil {
			logger.Fatal("create database", zap.Error(err))
		}
		defer out.Close()
		w = out
	}

	if err := writeDatabase(w, m); err != nil {
		logger.Fatal("write database", zap.Error(err))
	}

	logger.Info("done", zap.Int("notes", len(m)))
}
