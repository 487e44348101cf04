/*
DESCRIPTION
  wavesd is the wave counter web server. It serves a video upload form,
  analyses uploaded videos and renders the resulting wave count.

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main provides the wavesd command.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/waves/counter"
	"github.com/ausocean/waves/counter/config"
	"github.com/ausocean/waves/server"
)

// Current software version.
const version = "v1.0.0"

// Logging configuration.
const (
	logPath      = "/var/log/wavesd/wavesd.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logSuppress  = true
)

// Server defaults.
const (
	defaultAddr    = ":5001"
	defaultUploads = "uploads"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		addr        = flag.String("addr", defaultAddr, "address to listen on")
		uploads     = flag.String("uploads", defaultUploads, "directory for uploaded videos")
		debug       = flag.Bool("debug", false, "debug level logging")
	)
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

	log.Info("starting wavesd", "version", version)

	cfg := config.Config{Logger: log}

	// Each upload gets a fresh counter so background models are never shared
	// between videos.
	analyzer := server.AnalyzerFunc(func(path string) (*counter.Report, error) {
		return counter.Analyze(path, cfg)
	})

	srv, err := server.New(analyzer, *uploads, log)
	if err != nil {
		log.Fatal("could not create server", "error", err.Error())
	}

	log.Info("listening", "addr", *addr)
	err = http.ListenAndServe(*addr, srv)
	log.Fatal("server stopped", "error", err.Error())
}
