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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Trevor-Strong/bracefmt"
	"github.com/Trevor-Strong/bracefmt/render"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		named  []string
		inline bool
	)
	cmd := &cobra.Command{
		Use:   "render TEMPLATE [ARG]...",
		Short: "Render a template with arguments from the command line",
		Long: `Render executes TEMPLATE, a file name ("-" for stdin), with the remaining
arguments as positional arguments and each --arg name=value as a named one.

Values are read as YAML scalars, so 12 is an integer, 1.5 a float and true a
boolean; anything else, or anything quoted, is a string.`,
		Example: `  bracefmt render --inline '{:>[1]}|' hello 8
  bracefmt render greeting.tmpl --arg name=world`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name, text := "", args[0]
			if !inline {
				var err error
				if name, text, err = readInput(args[0]); err != nil {
					return err
				}
			}

			values := bracefmt.Args{}
			for _, arg := range args[1:] {
				values.Positional = append(values.Positional, parseValue(arg))
			}
			for _, kv := range named {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("--arg %q: expected name=value", kv)
				}
				if values.Named == nil {
					values.Named = make(map[string]any)
				}
				values.Named[k] = parseValue(v)
			}

			return a.render(name, text, values)
		},
	}
	cmd.Flags().StringArrayVar(&named, "arg", nil, "named argument, as name=value (repeatable)")
	cmd.Flags().BoolVar(&inline, "inline", false, "TEMPLATE is the template text rather than a file")
	return cmd
}

func (a *app) render(name, text string, args bracefmt.Args) error {
	tmpl, err := bracefmt.CompileNamed(name, text)
	if err != nil {
		return err
	}
	a.logger.Debug("rendering", "template", name, "placeholders", tmpl.Usage().Placeholders())

	out, err := tmpl.AppendWith(render.Renderer{TerminalCells: a.cfg.TerminalCells}, nil, args)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(out)
	return err
}

// parseValue reads s as a YAML scalar. Anything that is not a scalar is kept
// as the original string.
func parseValue(s string) any {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(s), &node); err != nil || len(node.Content) != 1 {
		return s
	}
	scalar := node.Content[0]
	if scalar.Kind != yaml.ScalarNode || scalar.Tag == "!!null" {
		return s
	}

	var v any
	if err := scalar.Decode(&v); err != nil {
		return s
	}
	return v
}
