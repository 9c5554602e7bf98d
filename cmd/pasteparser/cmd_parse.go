package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/jaittola/pasteparser"
	"github.com/jaittola/pasteparser/stackvalue"
)

func newParseCmd(a *app) *cobra.Command {
	var lines bool

	cmd := &cobra.Command{
		Use:   "parse [paste...]",
		Short: "Parse pasted values and print the result",
		Long: "Parse each argument as a pasted value. With no arguments, standard input\n" +
			"is read as a single paste, or as one paste per line with --lines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pastes := args
			if len(pastes) == 0 {
				var err error
				pastes, err = readPastes(cmd.InOrStdin(), lines)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			}

			s := pasteparser.NewSession(a.parserOptions()...)
			defer s.Release()
			out := newPrinter(cmd.OutOrStdout(), a.conf.OutputConfig.Format, a.converter())
			var failed int
			for _, p := range pastes {
				r := s.Parse(p)
				if r == nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%q: %v\n", p, s.Err())
					continue
				}
				if err := out.print(r, s.Root()); err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%q: %v\n", p, err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d pastes rejected", failed, len(pastes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&lines, "lines", "n", false, "parse separate input lines as separate pastes")

	return cmd
}

// readPastes reads r whole, or line by line skipping blank lines.
func readPastes(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var pastes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		pastes = append(pastes, sc.Text())
	}
	return pastes, sc.Err()
}

// dumper shows node fields rather than the nodes' String output.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

// printer writes parse results in one output format.
type printer struct {
	w      io.Writer
	format string
	conv   *stackvalue.Context
}

func newPrinter(w io.Writer, format string, conv *stackvalue.Context) *printer {
	return &printer{w: w, format: format, conv: conv}
}

// print writes a result given as its host view and its node tree.
func (p *printer) print(r *pasteparser.Expression, root *pasteparser.Node) error {
	switch p.format {
	case "tree":
		_, err := fmt.Fprintln(p.w, r)
		return err
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "repr":
		_, err := fmt.Fprintln(p.w, repr.String(r, repr.Indent("  ")))
		return err
	case "dump":
		dumper.Fdump(p.w, root)
		return nil
	case "value":
		v, err := p.conv.Convert(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, v)
		return err
	default:
		return fmt.Errorf("unknown format: %s", p.format)
	}
}
