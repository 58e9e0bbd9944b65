/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	json    bool

	logger *log.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "typeid-prefix",
		Short: "Validate and sanitize TypeID prefixes",
		Long: `typeid-prefix checks strings against the TypeID prefix rules and
coerces arbitrary strings into valid prefixes.

A valid prefix is at most 63 characters of lowercase ASCII letters and
underscores, starting and ending with a letter. The empty prefix is valid.

Inputs are taken from the arguments or, if there are none, one per line
from standard input.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.WarnLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			opts.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix: "typeid-prefix",
				Level:  level,
			})
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every change and fallback to stderr")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "write one JSON object per input")

	cmd.AddCommand(newCheckCommand(opts), newSanitizeCommand(opts))
	return cmd
}

// inputs returns args, or the lines of r when args is empty. Lines may be
// of any length. Trailing carriage returns are dropped; nothing else is
// trimmed.
func inputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
