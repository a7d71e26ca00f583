package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no work tree encloses the directory.
var ErrNotRepository = errors.New("not a git repository")

// Root returns the top-level directory of the work tree containing dir.
// Repositories go-git cannot open (unsupported extensions such as
// worktreeConfig or objectformat) are resolved by the git CLI instead.
func Root(dir string) (string, error) {
	return root(dir, NewCLIRepository(dir))
}

func root(dir string, cli *CLIRepository) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%s: %w", dir, ErrNotRepository)
		}
		return cli.TopLevel(context.Background()), nil
	}
	wt, err := repo.Worktree()
	if err != nil {
		// bare repositories have nothing to stage or commit from
		return "", fmt.Errorf("%s: %w", dir, ErrNotRepository)
	}
	return wt.Filesystem.Root(), nil
}

// TopLevel asks git for the work tree root, falling back to Dir when git
// cannot answer.
func (r *CLIRepository) TopLevel(ctx context.Context) string {
	res, err := r.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil || res.Failed() {
		return r.Dir
	}
	if top := strings.TrimSpace(res.Stdout); top != "" {
		return top
	}
	return r.Dir
}
