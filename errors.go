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

import "fmt"

// ParseError indicates that descriptor text is not well-formed markup.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse descriptor\n%s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError indicates that a well-formed descriptor is missing an expected section.
type StructureError struct {

	// Section is the dotted path of the missing section, e.g. project.properties.
	Section string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("descriptor has no %s section", e.Section)
}
