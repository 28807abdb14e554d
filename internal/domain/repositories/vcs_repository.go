package repositories

import (
	"context"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

// VCSRepository abstracts the version-control client that materializes checkouts.
type VCSRepository interface {
	// Clone materializes a working checkout of url at dest. Failures wrap entities.ErrCloneFailed.
	Clone(ctx context.Context, url entities.CanonicalURL, dest string) error

	// CheckoutRef switches the checkout at dest to a branch, tag or revision.
	// Failures wrap entities.ErrBranchNotFound.
	CheckoutRef(ctx context.Context, dest, ref string) error

	// IsCheckout reports whether dest holds a usable working checkout.
	IsCheckout(dest string) bool
}
