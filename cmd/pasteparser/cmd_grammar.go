package main

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/jaittola/pasteparser"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of accepted pastes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verify {
				_, err := fmt.Fprint(cmd.OutOrStdout(), pasteparser.GrammarSource())
				return err
			}
			if err := pasteparser.VerifyGrammar(); err != nil {
				printErrors(cmd, err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "grammar ok, start production", pasteparser.GrammarStart)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check that the grammar is complete instead of printing it")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(cmd *cobra.Command, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(cmd.ErrOrStderr(), v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
}
