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
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/typeid"
)

// sanitizeResult is the --json record of one input.
type sanitizeResult struct {
	Input   string        `json:"input"`
	Prefix  typeid.Prefix `json:"prefix"`
	Changed bool          `json:"changed"`
}

func newSanitizeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [input...]",
		Short: "Coerce inputs into valid prefixes",
		Long: `Lowercase each input, keep its first 63 characters, drop everything
but letters and underscores, and trim underscores from both ends. The
result is always a valid prefix, possibly empty.

Example:
  typeid-prefix sanitize "Invalid_Prefix123"   # invalid_prefix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSanitize(cmd, root, args)
		},
	}
}

func runSanitize(cmd *cobra.Command, root *rootOptions, args []string) error {
	in, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("reading input: %w", err)}
	}

	out := cmd.OutOrStdout()
	for _, s := range in {
		p := typeid.Sanitize(s, typeid.WithLogger(root.logger))
		changed := !p.EqualString(s)
		if changed {
			root.logger.Debug("canonicalized", "input", s, "prefix", p)
		}

		if root.json {
			if err := writeJSON(out, sanitizeResult{Input: s, Prefix: p, Changed: changed}); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			continue
		}
		fmt.Fprintln(out, p)
	}
	return nil
}
