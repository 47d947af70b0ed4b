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
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/onsi/gomega/types"
	"gopkg.in/yaml.v3"
)

// MatchTOML succeeds if actual decodes as TOML to the same document as expected.
func MatchTOML(expected interface{}) types.GomegaMatcher {
	return &matchDocument{
		expected: expected,
		format:   "TOML",
		decode: func(s string, v *map[string]interface{}) error {
			_, err := toml.Decode(s, v)
			return err
		},
	}
}

// MatchYAML succeeds if actual decodes as YAML to the same document as expected.
func MatchYAML(expected interface{}) types.GomegaMatcher {
	return &matchDocument{
		expected: expected,
		format:   "YAML",
		decode: func(s string, v *map[string]interface{}) error {
			return yaml.Unmarshal([]byte(s), v)
		},
	}
}

type matchDocument struct {
	expected interface{}
	format   string
	decode   func(string, *map[string]interface{}) error
}

func (matcher *matchDocument) Match(actual interface{}) (success bool, err error) {
	e, err := text(matcher.expected)
	if err != nil {
		return false, fmt.Errorf("expected value must be []byte or string, received %T", matcher.expected)
	}

	a, err := text(actual)
	if err != nil {
		return false, fmt.Errorf("actual value must be []byte or string, received %T", actual)
	}

	var eValue map[string]interface{}
	if err := matcher.decode(e, &eValue); err != nil {
		return false, err
	}

	var aValue map[string]interface{}
	if err := matcher.decode(a, &aValue); err != nil {
		return false, err
	}

	return reflect.DeepEqual(eValue, aValue), nil
}

func (matcher *matchDocument) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n%s\nto match the %s representation of\n%s", actual, matcher.format, matcher.expected)
}

func (matcher *matchDocument) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n%s\nnot to match the %s representation of\n%s", actual, matcher.format, matcher.expected)
}

func text(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported type %T", value)
	}
}
