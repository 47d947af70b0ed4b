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
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultConfigurationPath is the path, relative to the application root, of the secondary configuration file.
const DefaultConfigurationPath = ".scaffold/config.json"

// Communication declares that a client application calls a server application.
type Communication struct {

	// Client is the name of the calling application.
	Client string `json:"client"`

	// Server is the name of the called application.
	Server string `json:"server"`
}

// Configuration is the secondary configuration of a generated application.
type Configuration struct {

	// Communications are the declared calls between applications.
	Communications []Communication `json:"communications"`
}

// LoadConfiguration reads the JSON configuration at path relative to root. A missing file yields an empty
// Configuration.
func LoadConfiguration(root string, path string) (Configuration, error) {
	file, err := resolve(root, path)
	if err != nil {
		return Configuration{}, err
	}

	b, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return Configuration{}, nil
	} else if err != nil {
		return Configuration{}, fmt.Errorf("unable to read configuration %s\n%w", file, err)
	}

	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		return Configuration{}, fmt.Errorf("unable to decode configuration %s\n%w", file, err)
	}

	return c, nil
}
