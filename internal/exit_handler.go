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

package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// ErrorStatusCode is the status code returned for error.
	ErrorStatusCode = 1

	// PassStatusCode is the status code returned for pass.
	PassStatusCode = 0
)

// ExitHandler is the default implementation of the libscaffold.ExitHandler interface.
type ExitHandler struct {
	command  string
	exitFunc func(int)
	writer   io.Writer
}

// Option is a function for configuring an ExitHandler instance.
type Option func(handler ExitHandler) ExitHandler

// WithExitHandlerCommand creates an Option that names the command failures are reported for.
func WithExitHandlerCommand(command string) Option {
	return func(handler ExitHandler) ExitHandler {
		handler.command = command
		return handler
	}
}

// WithExitHandlerExitFunc creates an Option that configures the exit function.
func WithExitHandlerExitFunc(exitFunc func(int)) Option {
	return func(handler ExitHandler) ExitHandler {
		handler.exitFunc = exitFunc
		return handler
	}
}

// WithExitHandlerWriter creates an Option that configures the writer.
func WithExitHandlerWriter(writer io.Writer) Option {
	return func(handler ExitHandler) ExitHandler {
		handler.writer = writer
		return handler
	}
}

// NewExitHandler creates a new instance that calls os.Exit and writes to os.Stderr.
func NewExitHandler(options ...Option) ExitHandler {
	h := ExitHandler{
		exitFunc: os.Exit,
		writer:   os.Stderr,
	}

	for _, option := range options {
		h = option(h)
	}

	return h
}

// Error writes the error to the configured writer, prefixed with the command name and with wrapped causes indented,
// and exits with ErrorStatusCode.
func (e ExitHandler) Error(err error) {
	lines := strings.Split(fmt.Sprint(err), "\n")
	if e.command != "" {
		lines[0] = fmt.Sprintf("%s: %s", e.command, lines[0])
	}

	for i := 1; i < len(lines); i++ {
		lines[i] = "  " + lines[i]
	}

	_, _ = fmt.Fprintln(e.writer, strings.Join(lines, "\n"))
	e.exitFunc(ErrorStatusCode)
}

// Pass exits with PassStatusCode.
func (e ExitHandler) Pass() {
	e.exitFunc(PassStatusCode)
}
