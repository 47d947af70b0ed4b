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
	"strings"

	"github.com/scaffolding/libscaffold/internal"
)

const (
	// AliasLabel is the label key that assigns an alias to the most recent FROM image.
	AliasLabel = "alias"

	// ImageSuffix is appended to an alias to key the bare image of the aliased stage.
	ImageSuffix = "Image"

	// TagSuffix is appended to an alias to key the tag of the aliased stage.
	TagSuffix = "Tag"
)

// ContainerMap maps image names and aliases to image references, tags and bare images. Undefined values, such as the
// tag of an untagged image, are absent from the map.
type ContainerMap map[string]string

// Image returns the bare image bound to an alias.
func (c ContainerMap) Image(alias string) (string, bool) {
	s, ok := c[alias+ImageSuffix]
	return s, ok
}

// Tag returns the tag bound to an alias.
func (c ContainerMap) Tag(alias string) (string, bool) {
	s, ok := c[alias+TagSuffix]
	return s, ok
}

type stage struct {
	defined bool
	image   string
	tag     string
	tagged  bool
}

func (s stage) reference() string {
	if !s.tagged {
		return s.image
	}

	return s.image + ":" + s.tag
}

// ExtractContainers scans build-file text in order and returns the images it builds from. Each FROM records its image
// reference and becomes the stage that following LABEL alias=<name> instructions bind to. Instructions other than FROM
// and LABEL are ignored and malformed arguments never fail.
func ExtractContainers(text string) ContainerMap {
	containers := ContainerMap{}

	var current stage
	for _, i := range internal.Instructions(text) {
		switch i.Keyword {
		case "FROM":
			current = parseFrom(i.Arguments)
			if current.defined {
				containers[current.image] = current.reference()
			}

		case "LABEL":
			parts := strings.Split(i.Arguments, "=")
			if len(parts) < 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), AliasLabel) {
				continue
			}

			alias := strings.Trim(strings.TrimSpace(parts[1]), `"`)
			if alias == "" || !current.defined {
				continue
			}

			containers[alias] = current.reference()
			containers[alias+ImageSuffix] = current.image
			if current.tagged {
				containers[alias+TagSuffix] = current.tag
			}
		}
	}

	return containers
}

func parseFrom(arguments string) stage {
	var reference string
	for _, f := range strings.Fields(arguments) {
		if strings.HasPrefix(f, "--") {
			continue
		}
		reference = f
		break
	}

	if reference == "" {
		return stage{}
	}

	image, tag, tagged := strings.Cut(reference, ":")
	return stage{defined: true, image: image, tag: tag, tagged: tagged}
}
