package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SimonDaKappa/go-hatch"
	"github.com/SimonDaKappa/go-hatch/internal/decl"
	"github.com/SimonDaKappa/go-hatch/token"
)

var errParseFailed = errors.New("parse failed")

func newParseCmd(logger *logrus.Logger) *cobra.Command {
	var (
		rule     string
		format   string
		furthest bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a token stream with a grammar rule",
		Long: `Parse a JSON or YAML token stream and print the parsed value.

A token stream is a list whose elements are either a kind name or an object
with a kind and its payload:

  - KInt
  - {kind: Identifier, text: x}
  - Assign
  - {kind: LiteralInt, value: 3}
  - SemiColon

If no file is provided, reads the stream from stdin; --format is then
required. On failure the full failure trace is written to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				name string
				err  error
			)

			if len(args) == 0 {
				if format == "" {
					return fmt.Errorf("--format is required when reading stdin")
				}
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				name = args[0]
				data, err = os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			tokens, err := token.Decode(name, format, data)
			if err != nil {
				return fmt.Errorf("decode tokens: %w", err)
			}

			reg, err := decl.NewRegistry(hatch.RegistryOpts{Logger: logger})
			if err != nil {
				return err
			}

			value, err := reg.Parse(rule, tokens)
			if err != nil {
				pe, ok := hatch.AsParseError(err)
				if !ok {
					return err
				}
				report(cmd.ErrOrStderr(), pe, furthest)
				return errParseFailed
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.Flags().StringVarP(&rule, "rule", "r", decl.DefaultRule, "grammar rule to start from")
	cmd.Flags().StringVarP(&format, "format", "f", "", "token stream format: json or yaml (default from file extension)")
	cmd.Flags().BoolVar(&furthest, "furthest", false, "only report the failure that got furthest into the input")

	return cmd
}

func report(w io.Writer, pe *hatch.ParseError, furthest bool) {
	if furthest {
		fmt.Fprintln(w, pe.Furthest().Render(0))
		return
	}
	fmt.Fprintln(w, pe.Render(0))
}
