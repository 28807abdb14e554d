package gogit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/domain/repositories"
)

const remoteName = "origin"

var errRefNotFound = errors.New("reference not found")

// VCSRepository implements repositories.VCSRepository with go-git, so no git
// binary is required for cloning.
type VCSRepository struct{}

// NewVCSRepository creates the go-git backed VCS client.
func NewVCSRepository() repositories.VCSRepository {
	return &VCSRepository{}
}

// Clone clones url into dest with all tags, streaming progress to the debug log.
func (r *VCSRepository) Clone(ctx context.Context, url entities.CanonicalURL, dest string) error {
	//nolint:exhaustruct // defaults are fine for the remaining clone options
	opts := &git.CloneOptions{
		URL:        url.String(),
		RemoteName: remoteName,
		Tags:       git.AllTags,
	}

	if logger.IsLevelEnabled(logger.DebugLevel) {
		progress := logger.StandardLogger().WriterLevel(logger.DebugLevel)
		defer func(w io.Closer) { _ = w.Close() }(progress)
		opts.Progress = progress
	}

	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		return fmt.Errorf("%w: %s: %w", entities.ErrCloneFailed, url, err)
	}
	return nil
}

// CheckoutRef force-switches the working tree at dest to ref. The ref is looked
// up as a local branch, a remote branch, a tag and finally any resolvable revision.
func (r *VCSRepository) CheckoutRef(_ context.Context, dest, ref string) error {
	repo, err := git.PlainOpen(dest)
	if err != nil {
		return fmt.Errorf("%w: failed to open checkout %s: %w", entities.ErrBranchNotFound, dest, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("%w: failed to open worktree of %s: %w", entities.ErrBranchNotFound, dest, err)
	}

	opts, err := checkoutOptionsFor(repo, ref)
	if err != nil {
		return fmt.Errorf("%w: %q in %s: %w", entities.ErrBranchNotFound, ref, dest, err)
	}

	if checkoutErr := worktree.Checkout(opts); checkoutErr != nil {
		return fmt.Errorf("%w: failed to check out %q: %w", entities.ErrBranchNotFound, ref, checkoutErr)
	}
	return nil
}

// IsCheckout reports whether dest opens as a repository with a working tree.
func (r *VCSRepository) IsCheckout(dest string) bool {
	repo, err := git.PlainOpen(dest)
	if err != nil {
		return false
	}
	_, err = repo.Worktree()
	return err == nil
}

type refLookup func(repo *git.Repository, ref string) (*git.CheckoutOptions, error)

func checkoutOptionsFor(repo *git.Repository, ref string) (*git.CheckoutOptions, error) {
	lookups := []refLookup{localBranch, remoteBranch, tag}
	if semver.IsValid(ref) {
		// release-looking names are far more likely to be tags than branches
		lookups = []refLookup{tag, localBranch, remoteBranch}
	}
	lookups = append(lookups, revision)

	for _, lookup := range lookups {
		opts, err := lookup(repo, ref)
		if err == nil {
			return opts, nil
		}
		if !errors.Is(err, errRefNotFound) {
			return nil, err
		}
	}
	return nil, errRefNotFound
}

func localBranch(repo *git.Repository, ref string) (*git.CheckoutOptions, error) {
	name := plumbing.NewBranchReferenceName(ref)
	if _, err := repo.Reference(name, true); err != nil {
		return nil, errRefNotFound
	}
	//nolint:exhaustruct // branch checkout
	return &git.CheckoutOptions{Branch: name, Force: true}, nil
}

func remoteBranch(repo *git.Repository, ref string) (*git.CheckoutOptions, error) {
	remote, err := repo.Reference(plumbing.NewRemoteReferenceName(remoteName, ref), true)
	if err != nil {
		return nil, errRefNotFound
	}
	//nolint:exhaustruct // creates the local branch at the remote head
	return &git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(ref),
		Hash:   remote.Hash(),
		Create: true,
		Force:  true,
	}, nil
}

func tag(repo *git.Repository, ref string) (*git.CheckoutOptions, error) {
	tagRef, err := repo.Tag(ref)
	if err != nil {
		return nil, errRefNotFound
	}

	hash := tagRef.Hash()
	// annotated tags point at a tag object, not at the commit
	if tagObject, objErr := repo.TagObject(hash); objErr == nil {
		commit, commitErr := tagObject.Commit()
		if commitErr != nil {
			return nil, fmt.Errorf("tag %q does not point at a commit: %w", ref, commitErr)
		}
		hash = commit.Hash
	}

	//nolint:exhaustruct // detached checkout
	return &git.CheckoutOptions{Hash: hash, Force: true}, nil
}

func revision(repo *git.Repository, ref string) (*git.CheckoutOptions, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, errRefNotFound
	}
	//nolint:exhaustruct // detached checkout
	return &git.CheckoutOptions{Hash: *hash, Force: true}, nil
}
