package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/patrikn/lust"
	"github.com/patrikn/lust/repl"
	"github.com/spf13/cobra"
)

var (
	rootExpression bool
	rootNoPrelude  bool
	rootQuiet      bool
	rootTrace      bool
)

var rootCmd = &cobra.Command{
	Use:   "lust [file ...]",
	Short: "Evaluate integer s-expressions",
	Long:  `Read expressions from files, the command line or standard input and print their values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		logger := log.New(cmd.ErrOrStderr(), "lust: ", 0)
		env := lust.NewEnv()
		if !rootNoPrelude {
			if err := lust.LoadLib(env); err != nil {
				return err
			}
		}
		opts := repl.Options{
			Quiet: rootQuiet,
			Trace: rootTrace,
		}

		if rootExpression {
			for _, arg := range args {
				if err := repl.Run(env, strings.NewReader(arg+"\n"), out, logger, opts); err != nil {
					return err
				}
			}
			return nil
		}

		if len(args) == 0 {
			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
				return runInteractive(env, out, logger, opts)
			}
			return repl.Run(env, repl.NewDecoder(in), out, logger, opts)
		}

		for _, path := range args {
			if err := runFile(env, path, out, logger, opts); err != nil {
				return err
			}
		}
		return nil
	},
}

func runInteractive(env *lust.Env, out io.Writer, logger *log.Logger, opts repl.Options) error {
	lr, err := repl.NewLineReader("> ")
	if err != nil {
		return err
	}
	defer lr.Close()
	return repl.Run(env, lr, out, logger, opts)
}

func runFile(env *lust.Env, path string, out io.Writer, logger *log.Logger, opts repl.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return repl.Run(env, repl.NewDecoder(f), out, logger, opts)
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.Flags().BoolVarP(&rootExpression, "expression", "e", false,
		"Interpret arguments as expressions")
	rootCmd.Flags().BoolVar(&rootNoPrelude, "no-prelude", false,
		"Do not load the builtin prelude")
	rootCmd.Flags().BoolVarP(&rootQuiet, "quiet", "q", false,
		"Evaluate without printing values")
	rootCmd.Flags().BoolVar(&rootTrace, "trace", false,
		"Log each expression before evaluating it")
}
