package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jaittola/pasteparser"
)

const (
	historyFile = ".pasteparser_history"
	promptMain  = "paste> "
	promptCont  = "...... "
)

func newReplCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse pastes interactively",
		Long: "Read pastes from a line editor and print each result. A matrix may span\n" +
			"several lines; input continues until its closing bracket. Type :quit to exit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()

			s := pasteparser.NewSession(a.parserOptions()...)
			defer s.Release()
			out := newPrinter(cmd.OutOrStdout(), a.conf.OutputConfig.Format, a.converter())
			for {
				src, ok := readPaste(ln)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout())
					return nil
				}
				switch strings.TrimSpace(src) {
				case "":
					continue
				case ":quit":
					return nil
				}
				ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
				r := s.Parse(src)
				if r == nil {
					fmt.Fprintln(cmd.ErrOrStderr(), s.Err())
					continue
				}
				if err := out.print(r, s.Root()); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}
		},
	}

	return cmd
}

// readPaste reads lines until the input no longer has an open matrix. ok is
// false at the end of input.
func readPaste(ln *liner.State) (src string, ok bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Aborted with ctrl-C.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !openMatrix(b.String()) {
			return b.String(), true
		}
	}
}

// openMatrix reports whether src opens a matrix that it does not close.
func openMatrix(src string) bool {
	return strings.Count(src, "[") > strings.Count(src, "]")
}
