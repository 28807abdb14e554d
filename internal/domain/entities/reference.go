package entities

import (
	"fmt"
	"net/url"
	"strings"
)

// CanonicalURL is the absolute remote URL a repository reference resolves to.
// It always carries a scheme and a host; the zero value is not usable.
type CanonicalURL struct {
	parsed url.URL
}

// String returns the URL as handed to the VCS client.
func (u CanonicalURL) String() string { return u.parsed.String() }

// Host returns the host component, including any port.
func (u CanonicalURL) Host() string { return u.parsed.Host }

// Path returns the escaped path component.
func (u CanonicalURL) Path() string { return u.parsed.EscapedPath() }

// RepoIdentifier is the cache key of a repository and the directory name of its checkout.
type RepoIdentifier string

func (id RepoIdentifier) String() string { return string(id) }

// ResolveReference turns a raw user string into a CanonicalURL. References that
// already carry a scheme and a host are returned unchanged; anything else is
// treated as a path relative to the host's base URL (e.g. "owner/name").
func ResolveReference(raw string, host Host) (CanonicalURL, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return CanonicalURL{}, fmt.Errorf("%w: %q: %w", ErrMalformedReference, raw, err)
	}

	if ref.Scheme != "" {
		if ref.Host == "" && !isLocalFileURL(ref) {
			return CanonicalURL{}, fmt.Errorf("%w: %q has a scheme but no host", ErrMalformedReference, raw)
		}
		return CanonicalURL{parsed: *ref}, nil
	}

	base, err := url.Parse(host.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return CanonicalURL{}, fmt.Errorf("%w: invalid base URL %q for host %q", ErrMalformedReference, host.BaseURL, host.Name)
	}

	return CanonicalURL{parsed: *base.ResolveReference(ref)}, nil
}

// isLocalFileURL accepts file:///path references, which have no host but name a local mirror.
func isLocalFileURL(ref *url.URL) bool {
	return ref.Scheme == "file" && ref.Opaque == "" && ref.Path != ""
}

// NewRepoIdentifier derives the identifier from the last path segment of the URL.
// A single trailing slash is ignored; the segment is otherwise returned verbatim.
func NewRepoIdentifier(canonical CanonicalURL) (RepoIdentifier, error) {
	segments := strings.Split(strings.TrimPrefix(canonical.Path(), "/"), "/")
	if len(segments) > 1 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	last := segments[len(segments)-1]
	if last == "" || last == "." || last == ".." {
		return "", fmt.Errorf("%w: %s", ErrEmptyPath, canonical)
	}
	return RepoIdentifier(last), nil
}
