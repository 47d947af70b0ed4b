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
	"bufio"
	"strings"
)

// Instruction is a single build-file instruction.
type Instruction struct {

	// Keyword is the upper-cased instruction keyword, e.g. FROM.
	Keyword string

	// Arguments is the argument text following the keyword, with continuation lines joined.
	Arguments string
}

// Instructions splits build-file text into instructions in file order. Blank lines and comment lines are skipped and
// lines ending with a backslash are joined with the line that follows.
func Instructions(text string) []Instruction {
	var (
		instructions []Instruction
		pending      strings.Builder
	)

	flush := func() {
		line := strings.TrimSpace(pending.String())
		pending.Reset()
		if line == "" {
			return
		}

		keyword, arguments := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			keyword, arguments = line[:i], strings.TrimSpace(line[i+1:])
		}

		instructions = append(instructions, Instruction{
			Keyword:   strings.ToUpper(keyword),
			Arguments: arguments,
		})
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasSuffix(line, `\`) {
			pending.WriteString(strings.TrimSuffix(line, `\`))
			pending.WriteString(" ")
			continue
		}

		pending.WriteString(line)
		flush()
	}
	flush()

	return instructions
}
