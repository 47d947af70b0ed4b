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

	"github.com/BurntSushi/toml"
)

// TOMLWriter is a type used to write TOML files to the filesystem.
type TOMLWriter struct{}

// Write marshals the value to a TOML file at path, creating parent directories as needed.
func (TOMLWriter) Write(path string, value interface{}) error {
	if value == nil {
		return nil
	}

	file, err := create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(value); err != nil {
		return fmt.Errorf("unable to encode TOML %s\n%w", path, err)
	}

	return nil
}
