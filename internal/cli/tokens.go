// Copyright 2026 Trevor Strong
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Trevor-Strong/bracefmt/reporter"
	"github.com/Trevor-Strong/bracefmt/template"
	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

func (a *app) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the tokens of a template",
		Long: `Tokens prints one line per token of FILE ("-" for stdin), with tab-separated
columns: kind, start offset, end offset, and a description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name, text, err := readInput(args[0])
			if err != nil {
				return err
			}
			return a.tokens(name, text)
		},
	}
}

func (a *app) tokens(name, text string) error {
	info := reporter.NewFileInfo(name, text)
	if err := utf8codec.Validate(text, a.cfg.UTF8()); err != nil {
		var invalid *utf8codec.InvalidError
		if errors.As(err, &invalid) {
			return reporter.Error(info.SourcePos(invalid.Offset), invalid.Err)
		}
		return err
	}

	for tok, err := range template.NewParser(text).All() {
		if err != nil {
			return info.Locate(err)
		}
		fmt.Fprintf(a.stdout, "%v\t%d\t%d\t%v\n", tok.Kind, tok.Start, tok.End(), tok)
	}
	return nil
}

// readInput reads a named file, or stdin for "-".
func readInput(path string) (name, text string, err error) {
	var data []byte
	if path == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(os.Stdin)
	} else {
		name = path
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", "", err
	}
	return name, string(data), nil
}
