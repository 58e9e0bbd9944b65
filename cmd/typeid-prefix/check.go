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
	"dirpx.dev/typeid/adapter"
	"dirpx.dev/typeid/apis"
)

// checkResult is the --json record of one input.
type checkResult struct {
	Input string          `json:"input"`
	Valid bool            `json:"valid"`
	Error *apis.ErrorView `json:"error,omitempty"`
}

func newCheckCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [prefix...]",
		Short: "Validate prefixes without changing them",
		Long: `Validate each input strictly. Valid inputs print "ok", invalid ones
print the first rule they break. Exits 1 if any input is invalid.

Example:
  typeid-prefix check user _user User`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, args)
		},
	}
}

func runCheck(cmd *cobra.Command, root *rootOptions, args []string) error {
	in, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("reading input: %w", err)}
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, s := range in {
		_, perr := typeid.Parse(s)
		if perr != nil {
			invalid++
			root.logger.Debug("rejected", append([]any{"input", s}, adapter.KeyVals(perr)...)...)
		}

		if root.json {
			res := checkResult{Input: s, Valid: perr == nil}
			if perr != nil {
				view := adapter.ToView(perr)
				res.Error = &view
			}
			if err := writeJSON(out, res); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			continue
		}

		if perr != nil {
			fmt.Fprintf(out, "%q: %v\n", s, perr)
		} else {
			fmt.Fprintf(out, "%q: ok\n", s)
		}
	}

	if invalid > 0 {
		return &ExitError{Code: ExitInvalid}
	}
	return nil
}
