package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jaittola/pasteparser"
	"github.com/jaittola/pasteparser/internal/logging"
	"github.com/jaittola/pasteparser/stackvalue"
)

// app holds what every subcommand needs once the config is loaded.
type app struct {
	conf config
	log  *logging.Logger
}

func main() {
	var a app
	rootCmd := newRootCmd(&a, os.Getenv)
	err := execute(rootCmd, os.Args[1:])
	if a.log != nil {
		a.log.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pasteparser:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. getenv supplies the environment the
// config is read from.
func newRootCmd(a *app, getenv func(string) string) *cobra.Command {
	var (
		configPath string
		format     string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:           "pasteparser",
		Short:         "Parse values pasted into a calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(configPath, getenv)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				if err := checkFormat(format); err != nil {
					return err
				}
				conf.OutputConfig.Format = format
			}
			if logLevel != "" {
				conf.Logging.LogLevel = logLevel
			}
			a.conf = conf
			a.log = logging.InitLogger(conf.Logging, cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $"+ENV_CONFIG_FILE_PATH+")")
	rootCmd.PersistentFlags().StringVar(&format, "format", "tree", "output format: tree, json, repr, dump, or value")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, or error")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

// execute runs cmd with args, keeping negative pastes such as "-1 3/4" from
// being read as shorthand flags.
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(pasteArgs(args))
	return cmd.Execute()
}

// pasteArgs inserts "--" before the first argument that is a negative paste,
// so that it and everything after it are positional.
func pasteArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if negativePaste(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// negativePaste reports whether arg is a minus sign followed by something
// that starts a value rather than a flag name.
func negativePaste(arg string) bool {
	rest, ok := strings.CutPrefix(arg, "-")
	if !ok || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return '0' <= r && r <= '9' || r == '.' || r == 'i' || r == '−' || unicode.IsSpace(r)
}

// parserOptions returns the session options the config asks for.
func (a *app) parserOptions() []pasteparser.Option {
	opts := []pasteparser.Option{pasteparser.WithLogger(a.log.Logger)}
	if a.conf.ParserConfig.LegacyScalarKind {
		opts = append(opts, pasteparser.LegacyScalarKind())
	}
	return opts
}

func (a *app) converter() *stackvalue.Context {
	return stackvalue.NewContext(stackvalue.Prec(a.conf.ParserConfig.Precision))
}
