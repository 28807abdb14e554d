//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/domain/repositories"
)

// SpyVCSRepository implements repositories.VCSRepository on the local disk without
// any network access. Clone creates dest with an empty .git directory, and a
// directory counts as a checkout when it contains .git.
type SpyVCSRepository struct {
	// --- Clone ---
	CloneErr       error
	PartialOnError bool // leave a half-written dest behind when CloneErr is set
	CloneCalls     []CloneCall

	// --- CheckoutRef ---
	CheckoutErr   error
	CheckoutCalls []CheckoutRefCall
}

// CloneCall records a single invocation of Clone.
type CloneCall struct {
	URL  string
	Dest string
}

// CheckoutRefCall records a single invocation of CheckoutRef.
type CheckoutRefCall struct {
	Dest string
	Ref  string
}

var _ repositories.VCSRepository = (*SpyVCSRepository)(nil)

func (s *SpyVCSRepository) Clone(_ context.Context, url entities.CanonicalURL, dest string) error {
	s.CloneCalls = append(s.CloneCalls, CloneCall{URL: url.String(), Dest: dest})
	if s.CloneErr != nil {
		if s.PartialOnError {
			_ = os.MkdirAll(dest, 0o755)
		}
		return s.CloneErr
	}
	return os.MkdirAll(filepath.Join(dest, ".git"), 0o755)
}

// CheckoutRef writes a marker file into dest, which touches the directory like a real checkout.
func (s *SpyVCSRepository) CheckoutRef(_ context.Context, dest, ref string) error {
	s.CheckoutCalls = append(s.CheckoutCalls, CheckoutRefCall{Dest: dest, Ref: ref})
	if s.CheckoutErr != nil {
		return s.CheckoutErr
	}
	return os.WriteFile(filepath.Join(dest, "CHECKED_OUT_REF"), []byte(ref), 0o644)
}

func (s *SpyVCSRepository) IsCheckout(dest string) bool {
	info, err := os.Stat(filepath.Join(dest, ".git"))
	return err == nil && info.IsDir()
}
