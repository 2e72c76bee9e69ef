package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
	wkerrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// catalogDir is searched first; the repository root is the fallback.
const catalogDir = "catalogs"

// GitSource clones and updates catalog repositories.
type GitSource struct {
	// Depth limits clone history when positive.
	Depth int
	log   *logger.Logger
}

// NewGitSource creates a git source. log may be nil.
func NewGitSource(log *logger.Logger) *GitSource {
	return &GitSource{log: log}
}

// Fetch makes dest a checkout of url at ref (a branch; empty means the remote
// HEAD). An existing checkout of the same remote is pulled instead of cloned.
// It returns the checked out commit hash.
func (g *GitSource) Fetch(ctx context.Context, url, ref, dest string) (string, error) {
	if err := config.GetValidator().Var(url, "required,git_url"); err != nil {
		return "", wkerrors.NewFetchError(url, wkerrors.NewValidationError("url", "not a git remote", err))
	}

	log := g.log.WithFields(map[string]any{"url": url, "dest": dest})

	repo, err := git.PlainOpen(dest)
	switch {
	case errors.Is(err, git.ErrRepositoryNotExists):
		log.Info("cloning catalog repository")
		repo, err = g.clone(ctx, url, ref, dest)
		if err != nil {
			return "", wkerrors.NewFetchError(url, err)
		}
	case err != nil:
		return "", wkerrors.NewFetchError(url, err)
	default:
		log.Info("updating catalog repository")
		if err := g.pull(ctx, repo, url, ref); err != nil {
			return "", wkerrors.NewFetchError(url, err)
		}
	}

	head, err := repo.Head()
	if err != nil {
		return "", wkerrors.NewFetchError(url, err)
	}
	log.With("head", head.Hash().String()).Debug("catalog repository ready")
	return head.Hash().String(), nil
}

func (g *GitSource) clone(ctx context.Context, url, ref, dest string) (*git.Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, fmt.Errorf("create destination parent: %w", err)
	}

	opts := &git.CloneOptions{URL: url}
	if g.Depth > 0 {
		opts.Depth = g.Depth
	}
	if ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref)
		opts.SingleBranch = true
	}

	repo, err := git.PlainCloneContext(ctx, dest, false, opts)
	if err != nil {
		return nil, fmt.Errorf("clone: %w", err)
	}
	return repo, nil
}

func (g *GitSource) pull(ctx context.Context, repo *git.Repository, url, ref string) error {
	remote, err := repo.Remote("origin")
	if err != nil {
		return fmt.Errorf("existing checkout has no origin: %w", err)
	}
	if urls := remote.Config().URLs; len(urls) == 0 || urls[0] != url {
		return fmt.Errorf("existing checkout tracks %v, not %s", urls, url)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return err
	}

	opts := &git.PullOptions{RemoteName: "origin"}
	if ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref)
		opts.SingleBranch = true
	}
	if err := wt.PullContext(ctx, opts); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pull: %w", err)
	}
	return nil
}

// Discover lists the catalog documents in a checkout: every .yaml, .yml and
// .toml file below catalogs/ when that directory exists, otherwise those at
// the root. Paths are absolute and sorted.
func Discover(dest string) ([]string, error) {
	root := filepath.Join(dest, catalogDir)
	recursive := true
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		root = dest
		recursive = false
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (!recursive || d.Name() == ".git") {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".toml":
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			found = append(found, abs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}
