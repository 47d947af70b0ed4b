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
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver"
)

// CleanupRule removes obsolete generated files from projects last generated below a version threshold. Exactly one of
// Before and Through is set.
type CleanupRule struct {

	// Before is the exclusive threshold: the rule applies when the previous version is lower, e.g. "7.0.0".
	Before string

	// Through is the inclusive threshold: the rule applies when the previous version is lower or equal.
	Through string

	// Paths are the slash-separated paths, relative to the application root, to remove.
	Paths []string
}

type threshold struct {
	version   *semver.Version
	inclusive bool
}

func (t threshold) matches(v *semver.Version) bool {
	if t.inclusive {
		return !v.GreaterThan(t.version)
	}

	return v.LessThan(t.version)
}

func (t threshold) String() string {
	if t.inclusive {
		return fmt.Sprintf("<= %s", t.version)
	}

	return fmt.Sprintf("< %s", t.version)
}

func (r CleanupRule) threshold() (threshold, error) {
	switch {
	case r.Before != "" && r.Through != "":
		return threshold{}, fmt.Errorf("cleanup rule for %v sets both Before %s and Through %s", r.Paths, r.Before, r.Through)
	case r.Before != "":
		v, err := semver.NewVersion(r.Before)
		if err != nil {
			return threshold{}, fmt.Errorf("unable to parse cleanup threshold %s\n%w", r.Before, err)
		}
		return threshold{version: v}, nil
	case r.Through != "":
		v, err := semver.NewVersion(r.Through)
		if err != nil {
			return threshold{}, fmt.Errorf("unable to parse cleanup threshold %s\n%w", r.Through, err)
		}
		return threshold{version: v, inclusive: true}, nil
	default:
		return threshold{}, fmt.Errorf("cleanup rule for %v has no threshold", r.Paths)
	}
}

// Cleanup removes the paths of every rule whose threshold is above previousVersion, the generator version that last
// wrote the application. Versions are compared in semantic version order, so prereleases sort below their release. A
// project without a previous version is new and nothing is removed. Every rule is validated before anything is
// removed. The removed paths are returned in rule order.
func Cleanup(applicationPath string, previousVersion string, rules []CleanupRule, logger Logger) ([]string, error) {
	if previousVersion == "" {
		logger.Debug("No previous generator version, skipping cleanup")
		return nil, nil
	}

	previous, err := semver.NewVersion(previousVersion)
	if err != nil {
		return nil, fmt.Errorf("unable to parse previous version %s\n%w", previousVersion, err)
	}

	type removal struct {
		path      string
		file      string
		threshold threshold
	}

	var (
		removals []removal
		seen     = map[string]bool{}
	)

	for _, rule := range rules {
		t, err := rule.threshold()
		if err != nil {
			return nil, err
		}

		files := make([]string, len(rule.Paths))
		for i, p := range rule.Paths {
			if files[i], err = resolve(applicationPath, p); err != nil {
				return nil, err
			}
		}

		if !t.matches(previous) {
			logger.Debugf("Version %s is not %s", previous, t)
			continue
		}

		for i, p := range rule.Paths {
			if seen[p] {
				continue
			}
			seen[p] = true

			removals = append(removals, removal{path: p, file: files[i], threshold: t})
		}
	}

	var removed []string
	for _, r := range removals {
		logger.Debugf("Removing %s (%s is %s)", r.file, previous, r.threshold)
		if err := os.RemoveAll(r.file); err != nil {
			return removed, fmt.Errorf("unable to remove %s\n%w", r.file, err)
		}

		removed = append(removed, r.path)
	}

	return removed, nil
}

// resolve joins a relative, slash-separated path to root, rejecting paths that are absolute or escape root.
func resolve(root string, path string) (string, error) {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("path %q must be relative to %s", path, root)
	}

	file := filepath.Join(root, filepath.FromSlash(path))

	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("unable to calculate relative path %s -> %s\n%w", root, file, err)
	}

	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes %s", path, root)
	}

	return file, nil
}
