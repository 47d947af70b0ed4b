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
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// BuildFile is the name of the container build-file within an application.
	BuildFile = "Dockerfile"

	// DescriptorFile is the name of the build descriptor within an application.
	DescriptorFile = "pom.xml"
)

// Descriptors is the data extracted from the descriptors of an application.
type Descriptors struct {

	// Properties is the properties section of the build descriptor.
	Properties PropertyMap `toml:"properties"`

	// Versions is the version properties of the build descriptor.
	Versions VersionPropertyMap `toml:"versions"`

	// Containers is the images of the container build-file.
	Containers ContainerMap `toml:"containers"`
}

// ExtractDescriptors reads the build descriptor and container build-file of an application. Either file may be absent,
// leaving its maps empty.
func ExtractDescriptors(applicationPath string) (Descriptors, error) {
	d := Descriptors{
		Properties: PropertyMap{},
		Versions:   VersionPropertyMap{},
		Containers: ContainerMap{},
	}

	file := filepath.Join(applicationPath, DescriptorFile)
	b, err := os.ReadFile(file)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Descriptors{}, fmt.Errorf("unable to read descriptor %s\n%w", file, err)
	} else if err == nil {
		if d.Properties, err = ExtractProperties(string(b)); err != nil {
			return Descriptors{}, fmt.Errorf("unable to extract properties from %s\n%w", file, err)
		}
		d.Versions = d.Properties.Versions()
	}

	file = filepath.Join(applicationPath, BuildFile)
	b, err = os.ReadFile(file)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Descriptors{}, fmt.Errorf("unable to read build-file %s\n%w", file, err)
	} else if err == nil {
		d.Containers = ExtractContainers(string(b))
	}

	return d, nil
}

// Extract is called by the extract command. It expects an application path and an output path, and writes the
// application's Descriptors to the output path as TOML.
func Extract(config Config) {
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
	config.logger.Debugf("Properties: %+v", d.Properties)
	config.logger.Debugf("Containers: %+v", d.Containers)

	config.logger.Debugf("Writing descriptors: %s <= %+v", output, d)
	if err := config.tomlWriter.Write(output, d); err != nil {
		config.exitHandler.Error(fmt.Errorf("unable to write descriptors %s\n%w", output, err))
		return
	}

	config.exitHandler.Pass()
}
