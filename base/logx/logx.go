// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger, with leveled
// and colored output, and the user verbosity level that it filters on.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelInfo]. It can be changed at any
// time, including after [SetDefaultLogger] has been called.
var UserLevel = slog.LevelInfo

// ParseLevel returns the level with the given name (debug, info,
// warn or error, ignoring case), optionally followed by an offset
// such as "info+2".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	if err != nil {
		return l, fmt.Errorf("logx: invalid level %q", s)
	}
	return l, nil
}

// userLeveler is a [slog.Leveler] that always returns the current [UserLevel].
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a new text [slog.Handler] that writes to w,
// only shows messages at or above [UserLevel], and colors level names
// if w is a terminal that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				level := a.Value.Any().(slog.Level)
				a.Value = slog.StringValue(out.String(level.String()).Foreground(LevelColor(level)).String())
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one that writes
// to [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}
