/*
 * chesscore - a chess position / legal move generation core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config reads runtime settings (log level, perft defaults) from
// a TOML file, falling back to defaults when the file is missing or
// malformed - a missing config file is never fatal.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
)

// LogConfiguration controls the default verbosity of every clog logger.
type LogConfiguration struct {
	LevelName string `toml:"level"`
}

// Level maps the configured level name to a go-logging Level, defaulting
// to INFO for an empty or unrecognized name.
func (l LogConfiguration) Level() logging.Level {
	switch l.LevelName {
	case "DEBUG":
		return logging.DEBUG
	case "INFO":
		return logging.INFO
	case "WARNING":
		return logging.WARNING
	case "ERROR":
		return logging.ERROR
	case "CRITICAL":
		return logging.CRITICAL
	default:
		return logging.INFO
	}
}

// PerftConfiguration holds the CLI driver's defaults.
type PerftConfiguration struct {
	Depth  int  `toml:"depth"`
	Divide bool `toml:"divide"`
}

type conf struct {
	Log   LogConfiguration
	Perft PerftConfiguration
}

// Settings is the global configuration, populated by Setup (or left at
// the defaults below if Setup is never called).
var Settings = conf{
	Log:   LogConfiguration{LevelName: "INFO"},
	Perft: PerftConfiguration{Depth: 5, Divide: false},
}

var initialized = false

// ConfigFile is the path Setup reads from; callers may override it
// before calling Setup.
var ConfigFile = "config.toml"

// Setup loads ConfigFile into Settings. A missing or malformed file is
// logged to stderr and otherwise ignored - Settings keeps its defaults.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfigFile, &Settings); err != nil {
		fmt.Fprintln(os.Stderr, "chesscore: config:", err)
	}
	initialized = true
}
