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
	"fmt"
	"path/filepath"
)

// Generator is the host generator's contribution to the command binaries.
type Generator struct {

	// CleanupRules are the obsolete-file rules evaluated by the cleanup command.
	CleanupRules []CleanupRule

	// ConfigurationPath is the path, relative to the application, of the secondary configuration. Defaults to
	// DefaultConfigurationPath.
	ConfigurationPath string

	// Name is the compose project name.
	Name string

	// Services are the services written by the compose command.
	Services []ServiceDefinition

	// Source is the set of source editing operations the host supports.
	Source Source
}

// Main is called by the main function of a generator plugin, encapsulating every command in the same binary. The
// command is chosen by the base name of the first argument.
func Main(generator Generator, options ...Option) {
	config := NewConfig(options...)

	if len(config.arguments) == 0 {
		config.exitHandler.Error(fmt.Errorf("expected command name"))
		return
	}

	switch c := filepath.Base(config.arguments[0]); c {
	case "extract":
		Extract(config)
	case "cleanup":
		Clean(generator.CleanupRules, config)
	case "compose":
		WriteCompose(generator, config)
	default:
		config.exitHandler.Error(fmt.Errorf("unsupported command %s", c))
		return
	}
}

// Clean is called by the cleanup command. It expects an application path and the generator version that last wrote
// the application.
func Clean(rules []CleanupRule, config Config) {
	if len(config.arguments) != 3 {
		config.exitHandler.Error(fmt.Errorf("expected 2 arguments and received %d", len(config.arguments)-1))
		return
	}

	removed, err := Cleanup(config.arguments[1], config.arguments[2], rules, config.logger)
	if err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to clean up %s\n%w", config.arguments[1], err))
		return
	}

	if len(removed) > 0 {
		config.logger.Infof("Removed obsolete files: %v", removed)
	}

	config.exitHandler.Pass()
}

// WriteCompose is called by the compose command. It expects an application path and an output path, composes the
// generator's services from the application's container build-file and writes the compose file to the output path.
func WriteCompose(generator Generator, config Config) {
	if len(config.arguments) != 3 {
		config.exitHandler.Error(fmt.Errorf("expected 2 arguments and received %d", len(config.arguments)-1))
		return
	}

	applicationPath, output := config.arguments[1], config.arguments[2]

	d, err := ExtractDescriptors(applicationPath)
	if err != nil {
		config.exitHandler.Error(err)
		return
	}

	path := generator.ConfigurationPath
	if path == "" {
		path = DefaultConfigurationPath
	}

	configuration, err := LoadConfiguration(applicationPath, path)
	if err != nil {
		config.exitHandler.Error(err)
		return
	}
	config.logger.Debugf("Configuration: %+v", configuration)

	file, err := Compose(applicationPath, generator.Name, d.Containers, configuration, generator.Services...)
	if err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to compose services\n%w", err))
		return
	}

	config.logger.Debugf("Writing compose file: %s <= %+v", output, file)
	if err := config.yamlWriter.Write(output, file); err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to write compose file %s\n%w", output, err))
		return
	}

	RegisterLoggers(generator.Source, generator.Services...)

	config.exitHandler.Pass()
}
