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

package libscaffold_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/scaffolding/libscaffold"
)

func testConfiguration(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		root string
	)

	it.Before(func() {
		var err error
		root, err = os.MkdirTemp("", "configuration")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.MkdirAll(filepath.Join(root, ".scaffold"), 0755)).To(Succeed())
	})

	it.After(func() {
		Expect(os.RemoveAll(root)).To(Succeed())
	})

	it("returns an empty configuration when the file does not exist", func() {
		c, err := libscaffold.LoadConfiguration(root, libscaffold.DefaultConfigurationPath)
		Expect(err).NotTo(HaveOccurred())

		Expect(c).To(Equal(libscaffold.Configuration{}))
	})

	it("loads communications", func() {
		Expect(os.WriteFile(filepath.Join(root, ".scaffold", "config.json"), []byte(`{
  "communications": [
    {"client": "gateway", "server": "store"},
    {"client": "store", "server": "invoice"}
  ],
  "unrelated": true
}`), 0644)).To(Succeed())

		c, err := libscaffold.LoadConfiguration(root, libscaffold.DefaultConfigurationPath)
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Communications).To(Equal([]libscaffold.Communication{
			{Client: "gateway", Server: "store"},
			{Client: "store", Server: "invoice"},
		}))
	})

	it("fails on malformed JSON", func() {
		Expect(os.WriteFile(filepath.Join(root, ".scaffold", "config.json"), []byte(`{"communications": [`), 0644)).
			To(Succeed())

		_, err := libscaffold.LoadConfiguration(root, libscaffold.DefaultConfigurationPath)
		Expect(err).To(MatchError(ContainSubstring("unable to decode configuration")))
	})

	it("fails on a path outside the root", func() {
		_, err := libscaffold.LoadConfiguration(root, "../config.json")
		Expect(err).To(HaveOccurred())
	})
}
