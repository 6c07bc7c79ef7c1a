// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

// ------------------- logger initialization -------------------

// configure points every level at the same writer.
func configure(w io.Writer) {
	Info = log.New(w, "INFO: ", flags)
	Warn = log.New(w, "WARN: ", flags)
	Error = log.New(w, "ERROR: ", flags)
	Debug = log.New(w, "DEBUG: ", flags)
}

// InitLogger reinitializes the logging system so that every level writes to
// stdout and to a timestamped file inside dir. An empty dir keeps stdout only.
func InitLogger(dir string) error {
	if dir == "" {
		configure(os.Stdout)
		return nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	logFileName := filepath.Join(dir, time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		return err
	}

	configure(io.MultiWriter(os.Stdout, file))
	return nil
}

// SetLogLevel discards Debug output in production. Other environments keep it.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
	}
}

// init wires stdout so packages can log before main calls InitLogger.
func init() {
	configure(os.Stdout)
}
