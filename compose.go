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
	"sort"

	"github.com/joho/godotenv"
)

// ServiceDefinition describes a service to compose from an aliased container image.
type ServiceDefinition struct {

	// Name is the name of the service.
	Name string

	// Alias is the container alias, declared with LABEL alias=<name>, that provides the service image.
	Alias string

	// Command overrides the image command.
	Command []string

	// Ports are the published ports, e.g. 8080:8080.
	Ports []string

	// DependsOn are the names of services that must start first.
	DependsOn []string

	// Environment are the environment variables of the service.
	Environment map[string]string

	// EnvFile is the path, relative to the application root, of a dotenv file whose variables are added to
	// Environment. Variables in Environment take precedence.
	EnvFile string

	// Loggers are the logback loggers the service requires in the application.
	Loggers []LogbackLog
}

// ComposeService is a service entry of a compose file.
type ComposeService struct {
	Image       string            `yaml:"image"`
	Command     []string          `yaml:"command,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
}

// ComposeFile is the contents of a compose file.
type ComposeFile struct {
	Name     string                    `yaml:"name,omitempty"`
	Services map[string]ComposeService `yaml:"services"`
}

// Compose creates a compose file from service definitions of the application at applicationPath. Images are resolved
// from containers by alias, and every communication between two composed services makes the client depend on the
// server.
func Compose(applicationPath string, name string, containers ContainerMap, configuration Configuration, definitions ...ServiceDefinition) (ComposeFile, error) {
	file := ComposeFile{
		Name:     name,
		Services: map[string]ComposeService{},
	}

	for _, d := range definitions {
		if d.Name == "" {
			return ComposeFile{}, fmt.Errorf("service with alias %s has no name", d.Alias)
		}

		if _, ok := file.Services[d.Name]; ok {
			return ComposeFile{}, fmt.Errorf("duplicate service %s", d.Name)
		}

		image, ok := containers[d.Alias]
		if !ok {
			return ComposeFile{}, fmt.Errorf("unable to find image for service %s with alias %s", d.Name, d.Alias)
		}

		environment, err := serviceEnvironment(applicationPath, d)
		if err != nil {
			return ComposeFile{}, err
		}

		file.Services[d.Name] = ComposeService{
			Image:       image,
			Command:     d.Command,
			Environment: environment,
			Ports:       d.Ports,
			DependsOn:   append([]string(nil), d.DependsOn...),
		}
	}

	for _, c := range configuration.Communications {
		client, ok := file.Services[c.Client]
		if !ok {
			continue
		}
		if _, ok := file.Services[c.Server]; !ok || c.Client == c.Server {
			continue
		}

		client.DependsOn = append(client.DependsOn, c.Server)
		file.Services[c.Client] = client
	}

	for n, s := range file.Services {
		s.DependsOn = unique(s.DependsOn)
		for _, d := range s.DependsOn {
			if _, ok := file.Services[d]; !ok {
				return ComposeFile{}, fmt.Errorf("service %s depends on unknown service %s", n, d)
			}
		}
		file.Services[n] = s
	}

	return file, nil
}

func serviceEnvironment(applicationPath string, definition ServiceDefinition) (map[string]string, error) {
	if definition.EnvFile == "" && len(definition.Environment) == 0 {
		return nil, nil
	}

	environment := map[string]string{}

	if definition.EnvFile != "" {
		file, err := resolve(applicationPath, definition.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve env file for service %s\n%w", definition.Name, err)
		}

		e, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("unable to read env file %s for service %s\n%w", file, definition.Name, err)
		}

		for k, v := range e {
			environment[k] = v
		}
	}

	for k, v := range definition.Environment {
		environment[k] = v
	}

	return environment, nil
}

func unique(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := map[string]bool{}
	var u []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			u = append(u, v)
		}
	}

	sort.Strings(u)
	return u
}
