package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/briandowns/spinner"

	"github.com/riskibarqy/go-semcommit/internal/commit"
	"github.com/riskibarqy/go-semcommit/internal/defaults"
	"github.com/riskibarqy/go-semcommit/internal/git"
	"github.com/riskibarqy/go-semcommit/internal/prompt"
	"github.com/riskibarqy/go-semcommit/internal/util"
)

// StageQuestion is asked when `git status` shows nothing staged.
const StageQuestion = "No changes committed, want to commit them?"

// ErrNotInitialized is returned by Execute on a Service missing collaborators.
var ErrNotInitialized = errors.New("service not properly initialized")

// Service runs one commit session.
type Service struct {
	Repo     git.Repository
	Store    defaults.Store
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   *slog.Logger
}

// Options is the slice of CLI configuration a session needs.
type Options struct {
	Mode commit.Mode
}

// Result captures what a session did.
type Result struct {
	Staged  bool
	Message string
	Commit  git.Result
	Saved   defaults.Record
}

// NewService constructs a Service with the provided dependencies.
func NewService(repo git.Repository, store defaults.Store, p prompt.Prompter, out io.Writer, logger *slog.Logger) *Service {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{Repo: repo, Store: store, Prompter: p, Out: out, Logger: logger}
}

// Execute loads the cached defaults, offers to stage, asks for type, project
// and message, commits, and caches the answers. The answers are cached even
// when git rejects the commit.
func (s *Service) Execute(ctx context.Context, opts Options) (Result, error) {
	if s == nil || s.Repo == nil || s.Store == nil || s.Prompter == nil {
		return Result{}, ErrNotInitialized
	}
	var result Result

	cached := s.Store.Load()
	s.Logger.Debug("Loaded defaults", "type", cached.CommitType, "project", cached.CommitProject)

	staged, err := s.offerStaging(ctx)
	if err != nil {
		return result, err
	}
	result.Staged = staged

	prompt.WriteHeader(s.Out)

	labels := commit.Labels(opts.Mode)
	idx, err := s.Prompter.Select("type", labels, commit.DefaultIndex(labels, cached.CommitType))
	if err != nil {
		return result, fmt.Errorf("commit type: %w", err)
	}
	if idx < 0 || idx >= len(labels) {
		return result, fmt.Errorf("commit type: selection %d out of range", idx)
	}
	commitType := labels[idx]

	project, err := s.Prompter.Input("project", cached.CommitProject)
	if err != nil {
		return result, fmt.Errorf("commit project: %w", err)
	}

	message, err := s.Prompter.Input("message", cached.CommitMessage)
	if err != nil {
		return result, fmt.Errorf("commit message: %w", err)
	}

	result.Message = commit.Format(commitType, project, message)
	fmt.Fprintln(s.Out, git.CommandLine("commit", "-m", result.Message))

	result.Commit, err = s.Repo.Commit(ctx, result.Message)
	if err != nil {
		return result, err
	}
	if result.Commit.Failed() {
		s.Logger.Info("Commit rejected", "exit_code", result.Commit.ExitCode)
		s.report(result.Commit)
	}

	rec := defaults.Record{
		CommitType:    commitType,
		CommitProject: project,
		CommitMessage: message,
	}
	if err := s.Store.Save(rec); err != nil {
		return result, err
	}
	result.Saved = rec
	s.Logger.Debug("Saved defaults", "type", rec.CommitType, "project", rec.CommitProject)

	return result, nil
}

func (s *Service) offerStaging(ctx context.Context) (bool, error) {
	status, err := s.Repo.Status(ctx)
	if err != nil {
		return false, err
	}
	if !git.NeedsStaging(status) {
		s.Logger.Debug("Changes already staged")
		return false, nil
	}

	yes, err := s.Prompter.Confirm(StageQuestion)
	if err != nil {
		return false, fmt.Errorf("stage changes: %w", err)
	}
	if !yes {
		return false, nil
	}
	return true, s.stage(ctx)
}

func (s *Service) stage(ctx context.Context) error {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(s.Out))
	sp.Suffix = " Staging changes..."
	sp.Start()
	res, err := s.Repo.StageAll(ctx)
	sp.Stop()
	if err != nil {
		return err
	}
	if res.Failed() {
		// the commit step will surface anything that still is not staged
		s.Logger.Warn("Staging failed", "exit_code", res.ExitCode, "stderr", res.Stderr)
	}
	return nil
}

func (s *Service) report(res git.Result) {
	fmt.Fprintf(s.Out, "status: %d\n", res.ExitCode)
	if lines := util.TrimLines(res.Stdout); len(lines) > 0 {
		fmt.Fprintln(s.Out, "stdout:")
		fmt.Fprintln(s.Out, util.Indent(lines, "  "))
	}
	if lines := util.TrimLines(res.Stderr); len(lines) > 0 {
		fmt.Fprintln(s.Out, "stderr:")
		fmt.Fprintln(s.Out, util.Indent(lines, "  "))
	}
}
