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

package libscaffold

import (
	"os"
	"path/filepath"

	"github.com/scaffolding/libscaffold/internal"
	"github.com/scaffolding/libscaffold/log"
)

//go:generate mockery --name ExitHandler --case=underscore

// ExitHandler is the interface used to exit the command binaries.
type ExitHandler interface {

	// Error is called when an error is encountered.
	Error(error)

	// Pass is called when a command succeeds.
	Pass()
}

//go:generate mockery --name TOMLWriter --case=underscore

// TOMLWriter is the interface implemented by a type that wants to serialize an object to a TOML file.
type TOMLWriter interface {

	// Write is called with the path that a TOML file should be written to and the object to serialize to that file.
	Write(path string, value interface{}) error
}

//go:generate mockery --name YAMLWriter --case=underscore

// YAMLWriter is the interface implemented by a type that wants to serialize an object to a YAML file.
type YAMLWriter interface {

	// Write is called with the path that a YAML file should be written to and the object to serialize to that file.
	Write(path string, value interface{}) error
}

// Logger is the interface used by components to write log messages.
type Logger interface {
	Debug(a ...interface{})
	Debugf(format string, a ...interface{})
	Info(a ...interface{})
	Infof(format string, a ...interface{})
	IsDebugEnabled() bool
}

// Config is an object that contains configurable properties for execution.
type Config struct {
	arguments   []string
	exitHandler ExitHandler
	logger      Logger
	tomlWriter  TOMLWriter
	yamlWriter  YAMLWriter
}

// Option is a function for configuring a Config instance.
type Option func(config Config) Config

// WithArguments creates an Option that sets a collection of arguments.
func WithArguments(arguments []string) Option {
	return func(config Config) Config {
		config.arguments = arguments
		return config
	}
}

// WithExitHandler creates an Option that sets an ExitHandler implementation.
func WithExitHandler(exitHandler ExitHandler) Option {
	return func(config Config) Config {
		config.exitHandler = exitHandler
		return config
	}
}

// WithLogger creates an Option that sets a Logger implementation.
func WithLogger(logger Logger) Option {
	return func(config Config) Config {
		config.logger = logger
		return config
	}
}

// WithTOMLWriter creates an Option that sets a TOMLWriter implementation.
func WithTOMLWriter(tomlWriter TOMLWriter) Option {
	return func(config Config) Config {
		config.tomlWriter = tomlWriter
		return config
	}
}

// WithYAMLWriter creates an Option that sets a YAMLWriter implementation.
func WithYAMLWriter(yamlWriter YAMLWriter) Option {
	return func(config Config) Config {
		config.yamlWriter = yamlWriter
		return config
	}
}

// NewConfig creates a Config with the default implementations, then applies options.
func NewConfig(options ...Option) Config {
	var command string
	if len(os.Args) > 0 {
		command = filepath.Base(os.Args[0])
	}

	config := Config{
		arguments:   os.Args,
		exitHandler: internal.NewExitHandler(internal.WithExitHandlerCommand(command)),
		logger:      log.New(os.Stdout),
		tomlWriter:  internal.TOMLWriter{},
		yamlWriter:  internal.YAMLWriter{},
	}

	for _, option := range options {
		config = option(config)
	}

	return config
}
