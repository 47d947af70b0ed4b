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
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// DescriptorRoot is the name of the root element of a build descriptor.
	DescriptorRoot = "project"

	// DescriptorProperties is the name of the properties section of a build descriptor.
	DescriptorProperties = "properties"

	// VersionSuffix is the suffix that marks a property as a version property.
	VersionSuffix = ".version"
)

// PropertyMap is the flattened properties section of a build descriptor.
type PropertyMap map[string]string

// VersionPropertyMap is the subset of a PropertyMap whose keys end in VersionSuffix, keyed without the suffix.
type VersionPropertyMap map[string]string

// Versions returns the version properties of the map. Keys are stripped of exactly VersionSuffix and keys that would
// be empty once stripped are dropped.
func (p PropertyMap) Versions() VersionPropertyMap {
	versions := VersionPropertyMap{}

	for k, v := range p {
		if !strings.HasSuffix(k, VersionSuffix) {
			continue
		}

		name := strings.TrimSuffix(k, VersionSuffix)
		if name == "" {
			continue
		}

		versions[name] = v
	}

	return versions
}

type descriptor struct {
	XMLName    xml.Name
	Properties *descriptorProperties `xml:"properties"`
}

type descriptorProperties struct {
	Entries []descriptorProperty `xml:",any"`
}

type descriptorProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// ExtractProperties parses a build descriptor and returns its properties section. Malformed markup returns a
// *ParseError, a descriptor without a project root or properties section returns a *StructureError.
func ExtractProperties(text string) (PropertyMap, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))

	var d descriptor
	if err := decoder.Decode(&d); err != nil {
		return nil, &ParseError{Err: err}
	}

	if err := trailing(decoder); err != nil {
		return nil, &ParseError{Err: err}
	}

	if d.XMLName.Local != DescriptorRoot {
		return nil, &StructureError{Section: DescriptorRoot}
	}

	if d.Properties == nil {
		return nil, &StructureError{Section: DescriptorRoot + "." + DescriptorProperties}
	}

	properties := PropertyMap{}
	for _, e := range d.Properties.Entries {
		properties[e.XMLName.Local] = strings.TrimSpace(e.Value)
	}

	return properties, nil
}

// ExtractVersionProperties parses a build descriptor and returns the version properties of its properties section.
func ExtractVersionProperties(text string) (VersionPropertyMap, error) {
	properties, err := ExtractProperties(text)
	if err != nil {
		return nil, err
	}

	return properties.Versions(), nil
}

// trailing reads the tokens following the root element. Only whitespace, comments, processing instructions and
// directives may follow it.
func trailing(decoder *xml.Decoder) error {
	for {
		t, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		switch v := t.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(v)) > 0 {
				return fmt.Errorf("unexpected text %q after root element", string(v))
			}
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after root element", v.Name.Local)
		case xml.EndElement:
			return fmt.Errorf("unexpected end element </%s> after root element", v.Name.Local)
		}
	}
}
