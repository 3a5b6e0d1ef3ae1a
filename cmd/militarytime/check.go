package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmitrymomot/militarytime/pkg/timerange"
)

// errNoInput is returned when check has neither arguments nor piped input.
var errNoInput = errors.New("no time ranges given: pass them as arguments, pipe them in, or use --stdin")

// checkReport pairs an input with its validation result.
type checkReport struct {
	Input            string `json:"input" yaml:"input"`
	timerange.Result `yaml:",inline"`
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "check [--] [range...]",
		Short: "Validate one or more time ranges",
		Long: `Validate each argument as a "HH:MM - HH:MM" time range.

Ranges that start with '-' (for example "- 17:23") look like flags to the
argument parser; put them after "--" so they are validated as input.

Without arguments, lines are read from standard input when it is piped.
Use --stdin to read it in addition to arguments or from a terminal.
Exits with status 1 when any range is invalid.`,
		Example: `  militarytime check "09:00 - 17:30"
  militarytime check -o json "0112 - 14 32" "25:00 - 12:23"
  militarytime check -- "- 17:23" "-17:23"
  cat ranges.txt | militarytime check --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			in := cmd.InOrStdin()
			if fromStdin || len(args) == 0 {
				if !fromStdin && isTerminal(in) {
					return errNoInput
				}
				lines, err := readLines(in)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				inputs = append(inputs, lines...)
			}

			reports := make([]checkReport, 0, len(inputs))
			invalid := 0
			for _, s := range inputs {
				res := timerange.Validate(s)
				if !res.Valid {
					invalid++
				}
				reports = append(reports, checkReport{Input: s, Result: res})
			}

			out := cmd.OutOrStdout()
			var err error
			if root.output == outputText {
				err = writeReportsText(out, reports)
			} else {
				err = writeStructured(out, root.output, reports)
			}
			if err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidRange, invalid, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read ranges from standard input, one per line")

	return cmd
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLines splits r into lines of any length. A trailing "\r" is dropped.
func readLines(r io.Reader) ([]string, error) {
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
			return lines, err
		}
	}
}

func writeReportsText(w io.Writer, reports []checkReport) error {
	for _, r := range reports {
		if r.Valid {
			if _, err := fmt.Fprintf(w, "OK  %q\n", r.Input); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "ERR %q\n", r.Input); err != nil {
			return err
		}
		for _, e := range r.Errors {
			if _, err := fmt.Fprintf(w, "    - [%s] %s\n", e.Code, e.Message); err != nil {
				return err
			}
		}
	}
	return nil
}
