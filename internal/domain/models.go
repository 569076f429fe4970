package domain

import "fmt"

// DefaultBranch is the only branch the downloader knows how to fetch.
const DefaultBranch = "main"

// DefaultRepository is the repository assets are fetched from unless
// overridden on the command line.
const DefaultRepository = Repository("sri-geospace/atmosense-abcgan")

// Repository identifies a GitHub repository as "owner/name". The value is
// not validated; a malformed identifier surfaces as an HTTP failure when
// the archive URL is requested.
type Repository string

// ArchiveURL returns the GitHub tarball URL for the given branch.
func (r Repository) ArchiveURL(branch string) string {
	return fmt.Sprintf("https://github.com/%s/archive/refs/heads/%s.tar.gz", string(r), branch)
}

func (r Repository) String() string {
	return string(r)
}

// Asset names a downloadable subtree of the repository.
type Asset string

const (
	AssetTutorials Asset = "tutorials"
	AssetDocs      Asset = "docs"
)

// Assets is the closed set of downloadable assets.
var Assets = []Asset{AssetTutorials, AssetDocs}

// AssetNames returns the asset names as plain strings, in declaration order.
func AssetNames() []string {
	names := make([]string, len(Assets))
	for i, a := range Assets {
		names[i] = string(a)
	}
	return names
}

// ParseAsset validates an asset name against the closed set.
func ParseAsset(s string) (Asset, error) {
	for _, a := range Assets {
		if s == string(a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownAsset, s, AssetNames())
}

// Pattern returns the shell glob that selects the asset's entries inside a
// branch archive: one leading directory, the asset directory, then at least
// one more path segment.
func (a Asset) Pattern() string {
	return fmt.Sprintf("*/%s/*", string(a))
}

func (a Asset) String() string {
	return string(a)
}
