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

package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/scaffolding/libscaffold/internal"
)

func testTOMLWriter(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		parent     string
		path       string
		tomlWriter internal.TOMLWriter
	)

	it.Before(func() {
		var err error
		parent, err = os.MkdirTemp("", "toml-writer")
		Expect(err).NotTo(HaveOccurred())

		path = filepath.Join(parent, "nested", "descriptors.toml")
	})

	it.After(func() {
		Expect(os.RemoveAll(parent)).To(Succeed())
	})

	it("writes the contents of a given object out to a .toml file", func() {
		err := tomlWriter.Write(path, map[string]interface{}{
			"versions": map[string]string{
				"spring-boot": "3.2.0",
			},
			"properties": map[string]string{
				"java.version": "21",
			},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(os.ReadFile(path)).To(internal.MatchTOML(`
[properties]
"java.version" = "21"

[versions]
spring-boot = "3.2.0"`))
	})

	it("does not write a nil value", func() {
		Expect(tomlWriter.Write(path, nil)).To(Succeed())
		Expect(path).NotTo(BeAnExistingFile())
	})
}
