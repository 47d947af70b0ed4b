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
	"github.com/scaffolding/libscaffold/log"
)

func testCleanup(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		applicationPath string
		logger          log.PlainLogger
		rules           []libscaffold.CleanupRule
	)

	it.Before(func() {
		var err error
		applicationPath, err = os.MkdirTemp("", "cleanup")
		Expect(err).NotTo(HaveOccurred())

		logger = log.NewDiscard()

		Expect(os.MkdirAll(filepath.Join(applicationPath, "src", "main", "docker"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(applicationPath, "src", "main", "docker", "app.yml"), []byte{}, 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(applicationPath, "Dockerfile"), []byte{}, 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(applicationPath, "keep.txt"), []byte{}, 0644)).To(Succeed())

		rules = []libscaffold.CleanupRule{
			{Before: "7.0.0", Paths: []string{"src/main/docker"}},
			{Through: "7.9.3", Paths: []string{"Dockerfile", "missing.txt"}},
		}
	})

	it.After(func() {
		Expect(os.RemoveAll(applicationPath)).To(Succeed())
	})

	it("removes nothing for a new application", func() {
		removed, err := libscaffold.Cleanup(applicationPath, "", rules, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(removed).To(BeEmpty())
		Expect(filepath.Join(applicationPath, "Dockerfile")).To(BeARegularFile())
	})

	it("removes the paths of every matching rule", func() {
		removed, err := libscaffold.Cleanup(applicationPath, "6.10.5", rules, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(removed).To(Equal([]string{"src/main/docker", "Dockerfile", "missing.txt"}))
		Expect(filepath.Join(applicationPath, "src", "main", "docker")).NotTo(BeADirectory())
		Expect(filepath.Join(applicationPath, "Dockerfile")).NotTo(BeAnExistingFile())
		Expect(filepath.Join(applicationPath, "keep.txt")).To(BeARegularFile())
	})

	it("treats an inclusive threshold as inclusive", func() {
		removed, err := libscaffold.Cleanup(applicationPath, "7.9.3", rules, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(removed).To(Equal([]string{"Dockerfile", "missing.txt"}))
		Expect(filepath.Join(applicationPath, "src", "main", "docker")).To(BeADirectory())
	})

	it("removes nothing when the version is past every threshold", func() {
		removed, err := libscaffold.Cleanup(applicationPath, "8.0.0", rules, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(removed).To(BeEmpty())
		Expect(filepath.Join(applicationPath, "Dockerfile")).To(BeARegularFile())
	})

	it("removes a path named by several rules once", func() {
		removed, err := libscaffold.Cleanup(applicationPath, "1.0.0", []libscaffold.CleanupRule{
			{Before: "2.0.0", Paths: []string{"keep.txt"}},
			{Through: "3.0.0", Paths: []string{"keep.txt"}},
		}, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(removed).To(Equal([]string{"keep.txt"}))
	})

	it("fails on an invalid previous version", func() {
		_, err := libscaffold.Cleanup(applicationPath, "not-a-version", rules, logger)

		Expect(err).To(MatchError(ContainSubstring("unable to parse previous version not-a-version")))
	})

	it("treats a prerelease as lower than its release", func() {
		removed, err := libscaffold.Cleanup(applicationPath, "7.0.0-beta.1", rules, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(removed).To(Equal([]string{"src/main/docker", "Dockerfile", "missing.txt"}))
		Expect(filepath.Join(applicationPath, "src", "main", "docker")).NotTo(BeADirectory())
	})

	it("treats an exclusive threshold as exclusive", func() {
		removed, err := libscaffold.Cleanup(applicationPath, "7.0.0", rules, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(removed).To(Equal([]string{"Dockerfile", "missing.txt"}))
	})

	it("fails on an invalid threshold without removing anything", func() {
		_, err := libscaffold.Cleanup(applicationPath, "6.0.0", []libscaffold.CleanupRule{
			{Before: "7.0.0", Paths: []string{"keep.txt"}},
			{Before: "bogus!!", Paths: []string{"Dockerfile"}},
		}, logger)

		Expect(err).To(MatchError(ContainSubstring("unable to parse cleanup threshold bogus!!")))
		Expect(filepath.Join(applicationPath, "keep.txt")).To(BeARegularFile())
		Expect(filepath.Join(applicationPath, "Dockerfile")).To(BeARegularFile())
	})

	it("fails on a rule without exactly one threshold", func() {
		for _, rule := range []libscaffold.CleanupRule{
			{Paths: []string{"keep.txt"}},
			{Before: "2.0.0", Through: "2.0.0", Paths: []string{"keep.txt"}},
		} {
			_, err := libscaffold.Cleanup(applicationPath, "1.0.0", []libscaffold.CleanupRule{rule}, logger)
			Expect(err).To(HaveOccurred())
		}

		Expect(filepath.Join(applicationPath, "keep.txt")).To(BeARegularFile())
	})

	it("refuses paths outside the application", func() {
		for _, p := range []string{"../outside", "/etc/passwd", "a/../..", ".", ""} {
			_, err := libscaffold.Cleanup(applicationPath, "1.0.0", []libscaffold.CleanupRule{
				{Before: "2.0.0", Paths: []string{"keep.txt", p}},
			}, logger)

			Expect(err).To(HaveOccurred(), p)
		}

		Expect(applicationPath).To(BeADirectory())
		Expect(filepath.Join(applicationPath, "keep.txt")).To(BeARegularFile())
	})
}
