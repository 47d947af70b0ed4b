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

// LogbackLog is a logger entry of a logback configuration.
type LogbackLog struct {

	// Name is the logger name, usually a package.
	Name string

	// Level is the logger level, e.g. WARN.
	Level string
}

// Source is the set of optional operations a host generator exposes to edit generated sources. Hosts populate only
// the operations they implement and a nil operation is skipped.
type Source struct {

	// AddLogbackMainLog adds a logger to the main logback configuration.
	AddLogbackMainLog func(LogbackLog)

	// AddLogbackTestLog adds a logger to the test logback configuration.
	AddLogbackTestLog func(LogbackLog)
}

// RegisterLoggers adds the loggers required by each service definition to the source.
func RegisterLoggers(source Source, definitions ...ServiceDefinition) {
	for _, d := range definitions {
		for _, l := range d.Loggers {
			if source.AddLogbackMainLog != nil {
				source.AddLogbackMainLog(l)
			}
			if source.AddLogbackTestLog != nil {
				source.AddLogbackTestLog(l)
			}
		}
	}
}
