package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Repository exposes the git operations a commit session needs.
type Repository interface {
	Status(ctx context.Context) (string, error)
	StageAll(ctx context.Context) (Result, error)
	Commit(ctx context.Context, message string) (Result, error)
}

// Result is what a finished git invocation reported. A non-zero ExitCode is
// not an error; only failing to run git at all is.
type Result struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Failed reports whether git exited non-zero.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// CommandLine renders the invocation for echoing to the user.
func (r Result) CommandLine() string {
	return CommandLine(r.Args...)
}

// CommandLine quotes args the way a shell user would type them.
func CommandLine(args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, "git")
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

var nothingStaged = regexp.MustCompile(`(no changes added to commit|nothing to commit, working tree clean|nothing added to commit but untracked files present)`)

// NeedsStaging reports whether `git status` output says nothing is staged yet.
func NeedsStaging(status string) bool {
	return nothingStaged.MatchString(status)
}

// CLIRepository executes git commands through the local CLI.
type CLIRepository struct {
	Dir  string
	Exec func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewCLIRepository returns a Repository backed by the system git binary,
// running every command in dir (the current directory when empty).
func NewCLIRepository(dir string) *CLIRepository {
	return &CLIRepository{
		Dir: dir,
		Exec: func(ctx context.Context, name string, args ...string) *exec.Cmd {
			return exec.CommandContext(ctx, name, args...)
		},
	}
}

// Status returns the combined output of `git status`, whatever its exit code.
func (r *CLIRepository) Status(ctx context.Context) (string, error) {
	res, err := r.run(ctx, "status")
	if err != nil {
		return "", err
	}
	return res.Stdout + res.Stderr, nil
}

// StageAll runs `git add .` in Dir.
func (r *CLIRepository) StageAll(ctx context.Context) (Result, error) {
	return r.run(ctx, "add", ".")
}

func (r *CLIRepository) Commit(ctx context.Context, message string) (Result, error) {
	return r.run(ctx, "commit", "-m", message)
}

func (r *CLIRepository) run(ctx context.Context, args ...string) (Result, error) {
	cmd := r.Exec(ctx, "git", args...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{Args: args}
	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("run %s: %w", CommandLine(args...), err)
	}
	return res, nil
}
