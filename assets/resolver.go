package assets

import (
	"path"

	"github.com/alphalions/gallery/types"
)

// DefaultBaseURL is the path under which the bundle is served.
const DefaultBaseURL = "/assets"

// Reference is the resolved location of one token's asset in one format.
// Available == false is a normal state, not an error.
type Reference struct {
	Format    types.Format `json:"format" extensions:"x-order:0"`
	TokenId   string       `json:"token_id" extensions:"x-order:1"`
	Location  string       `json:"location,omitempty" extensions:"x-order:2"`
	Remote    bool         `json:"remote" extensions:"x-order:3"`
	Available bool         `json:"available" extensions:"x-order:4"`

	path string
}

// Resolver maps tokens to asset references. References are computed per call and never cached.
type Resolver struct {
	bundle  *Bundle
	baseURL string
}

func NewResolver(bundle *Bundle, baseURL string) *Resolver {
	if bundle == nil {
		bundle = EmptyBundle()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Resolver{bundle: bundle, baseURL: baseURL}
}

func (r *Resolver) Bundle() *Bundle { return r.bundle }

// Resolve returns where the token's asset of the given format lives. PFP images are the
// remote metadata image; every other format is looked up in the bundle by normalized id.
func (r *Resolver) Resolve(token types.Token, format types.Format) Reference {
	ref := Reference{Format: format, TokenId: token.TokenId}

	if format == types.FormatPFP {
		ref.Location = token.Metadata.ImageUrl
		ref.Remote = true
		ref.Available = token.Metadata.ImageUrl != ""
		return ref
	}

	if p, ok := r.bundle.Lookup(format, token.TokenId); ok {
		ref.Location = path.Join(r.baseURL, p)
		ref.Available = true
		ref.path = p
	}
	return ref
}

// Availability reports, per format, whether the token has an asset.
func (r *Resolver) Availability(token types.Token) map[types.Format]bool {
	availability := make(map[types.Format]bool, len(types.Formats))
	for _, format := range types.Formats {
		availability[format] = r.Resolve(token, format).Available
	}
	return availability
}
