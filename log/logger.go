/*
 * Copyright 2018-2024 the original author or authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PlainLogger implements Logger and logs messages to writers.
type PlainLogger struct {
	debug io.Writer
	info  io.Writer
}

// Option is a function that configures a PlainLogger.
type Option func(PlainLogger) PlainLogger

// WithDebug configures the debug writer.
func WithDebug(writer io.Writer) Option {
	return func(logger PlainLogger) PlainLogger {
		logger.debug = writer
		return logger
	}
}

// NewWithOptions creates a new instance of PlainLogger that writes info messages to writer and is configured with
// options.
func NewWithOptions(writer io.Writer, options ...Option) PlainLogger {
	l := PlainLogger{info: writer}

	for _, option := range options {
		l = option(l)
	}

	return l
}

// New creates a new instance of PlainLogger.  It configures debug logging if $SCAFFOLD_DEBUG or $SCAFFOLD_LOG_LEVEL
// are set.
func New(writer io.Writer) PlainLogger {
	var options []Option

	if strings.ToLower(os.Getenv("SCAFFOLD_LOG_LEVEL")) == "debug" || os.Getenv("SCAFFOLD_DEBUG") != "" {
		options = append(options, WithDebug(writer))
	}

	return NewWithOptions(writer, options...)
}

// NewDiscard creates a new instance of PlainLogger that discards all log messages. Useful in testing.
func NewDiscard() PlainLogger {
	return PlainLogger{debug: io.Discard, info: io.Discard}
}

// Debug formats using the default formats for its operands and writes to the configured debug writer. Spaces are added
// between operands when neither is a string.
func (l PlainLogger) Debug(a ...interface{}) {
	if !l.IsDebugEnabled() {
		return
	}

	write(l.debug, a...)
}

// Debugf formats according to a format specifier and writes to the configured debug writer.
func (l PlainLogger) Debugf(format string, a ...interface{}) {
	if !l.IsDebugEnabled() {
		return
	}

	writef(l.debug, format, a...)
}

// DebugWriter returns the configured debug writer.
func (l PlainLogger) DebugWriter() io.Writer {
	if l.debug == nil {
		return io.Discard
	}

	return l.debug
}

// IsDebugEnabled indicates whether debug logging is enabled.
func (l PlainLogger) IsDebugEnabled() bool {
	return l.debug != nil && l.debug != io.Discard
}

// Info formats using the default formats for its operands and writes to the configured info writer.
func (l PlainLogger) Info(a ...interface{}) {
	if l.info == nil {
		return
	}

	write(l.info, a...)
}

// Infof formats according to a format specifier and writes to the configured info writer.
func (l PlainLogger) Infof(format string, a ...interface{}) {
	if l.info == nil {
		return
	}

	writef(l.info, format, a...)
}

func write(writer io.Writer, a ...interface{}) {
	s := fmt.Sprint(a...)

	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	_, _ = fmt.Fprint(writer, s)
}

func writef(writer io.Writer, format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}

	_, _ = fmt.Fprintf(writer, format, a...)
}
