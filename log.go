package main

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogFile sends the standard logger to a rotating file as well as
// stderr. The returned func flushes and closes the file.
func setupLogFile(path string) func() {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, //days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.Printf("log: %s", path)
	return func() {
		log.SetOutput(os.Stderr)
		_ = file.Close()
	}
}
