package registry

import "time"

// Source is a catalog repository that has been fetched at least once.
type Source struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Ref       string    `json:"ref,omitempty"`
	Dest      string    `json:"dest"`
	Head      string    `json:"head"`
	Catalogs  int       `json:"catalogs"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ShortHead returns the first 12 characters of the checked out commit.
func (s Source) ShortHead() string {
	if len(s.Head) > 12 {
		return s.Head[:12]
	}
	return s.Head
}

// RegistryFile is the on-disk layout of the registry.
type RegistryFile struct {
	Version string   `json:"version"`
	Sources []Source `json:"sources"`
}
