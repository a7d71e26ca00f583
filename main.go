package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riskibarqy/go-semcommit/internal/config"
	"github.com/riskibarqy/go-semcommit/internal/defaults"
	"github.com/riskibarqy/go-semcommit/internal/git"
	"github.com/riskibarqy/go-semcommit/internal/prompt"
	"github.com/riskibarqy/go-semcommit/internal/usecase"
)

var version = "dev"

// errNoTerminal is returned when stdin cannot drive the interactive prompts.
var errNoTerminal = errors.New("stdin is not a terminal")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	return exitCode(cmd.Execute(), os.Stderr)
}

// exitCode maps a session error to the process status, printing a
// diagnostic for anything but an interrupted prompt.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrAborted):
		return 130
	default:
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := config.Default()

	cmd := &cobra.Command{
		Use:           "semcommit",
		Short:         "Write conventional commits interactively",
		Long:          "semcommit asks for a commit type, project and message, runs `git commit -m \"type(project): message\"`\nand remembers the answers for next time.",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			level, _ := config.ParseLevel(opts.LogLevel)
			logger := config.NewLogger(stderr, level)
			logger.Debug("Parsed options", "opts", opts)

			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errNoTerminal
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}
			root, err := git.Root(cwd)
			if err != nil {
				return err
			}
			logger.Debug("Found repository", "root", root)

			store := defaults.NewFileStore(opts.DefaultsPath)
			store.Logger = logger

			svc := usecase.NewService(
				git.NewCLIRepository(root),
				store,
				prompt.NewTerminal(stderr),
				stdout,
				logger,
			)
			_, err = svc.Execute(cmd.Context(), usecase.Options{Mode: opts.Mode})
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.Bind(cmd.Flags(), &opts)

	return cmd
}
