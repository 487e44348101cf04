/*
DESCRIPTION
  wavecount is a command line tool that counts ocean wave events in a video
  file, or watches a drop directory and counts waves in videos as they
  arrive.

AUTHORS
  Trek Hopton <trek@ausocean.org>
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main provides the wavecount command.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/waves/counter"
	"github.com/ausocean/waves/counter/config"
	"github.com/ausocean/waves/watch"
)

// Current software version.
const version = "v1.0.0"

// Logging configuration.
const (
	logPath      = "/var/log/wavecount/wavecount.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logSuppress  = true
)

// varFlags collects repeated -var Key=Value flags into a map that is applied
// through config.Update.
type varFlags map[string]string

func (v varFlags) String() string { return fmt.Sprint(map[string]string(v)) }

func (v varFlags) Set(s string) error {
	k, val, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected Key=Value, got %q", s)
	}
	v[k] = val
	return nil
}

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		input       = flag.String("input", "", "path to the video file to analyse")
		watchDir    = flag.String("watch", "", "directory to watch for new video files")
		plotPath    = flag.String("plot", "", "write a wave event timeline plot to this path")
		debug       = flag.Bool("debug", false, "debug level logging")
	)
	vars := make(varFlags)
	flag.Var(vars, "var", "counter configuration override, Key=Value (repeatable)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Create lumberjack logger to handle logging to file.
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}

	verbosity := logging.Info
	if *debug {
		verbosity = logging.Debug
	}
	log := logging.New(verbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	log.Info("starting wavecount", "version", version)

	cfg := config.Config{Logger: log}
	cfg.Update(vars)

	switch {
	case *input != "":
		rep, err := counter.Analyze(*input, cfg)
		if err != nil {
			log.Fatal("could not analyse video", "path", *input, "error", err.Error())
		}
		mean, std := rep.IntervalStats()
		log.Info("analysis result", "path", *input, "waves", rep.Count, "frames", rep.Frames, "meanInterval", mean, "stdDev", std)
		fmt.Println(rep.Count)

		if *plotPath != "" {
			err = rep.SavePlot(*plotPath)
			if err != nil {
				log.Fatal("could not save plot", "path", *plotPath, "error", err.Error())
			}
			log.Info("saved wave event plot", "path", *plotPath)
		}

	case *watchDir != "":
		w, err := watch.New(*watchDir, func(path string) {
			rep, err := counter.Analyze(path, cfg)
			if err != nil {
				log.Error("could not analyse video", "path", path, "error", err.Error())
				return
			}
			log.Info("analysis result", "path", path, "waves", rep.Count, "frames", rep.Frames)
		}, log)
		if err != nil {
			log.Fatal("could not create watcher", "dir", *watchDir, "error", err.Error())
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			log.Info("signal received, stopping watcher")
			w.Close()
		}()
		w.Run()

	default:
		fmt.Fprintln(os.Stderr, "one of -input or -watch must be given")
		flag.Usage()
		os.Exit(1)
	}
}
