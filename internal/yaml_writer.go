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

	"gopkg.in/yaml.v3"
)

// YAMLWriter is a type used to write YAML files to the filesystem.
type YAMLWriter struct{}

// Write marshals the value to a YAML file at path, creating parent directories as needed. Output is indented with two
// spaces.
func (YAMLWriter) Write(path string, value interface{}) error {
	if value == nil {
		return nil
	}

	file, err := create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("unable to encode YAML %s\n%w", path, err)
	}

	return encoder.Close()
}
