package gallery

import (
	"fmt"

	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/pagination"
	"github.com/alphalions/gallery/types"
)

type State string

const (
	StateDisconnected State = "disconnected"
	StateLoading      State = "loading"
	StateError        State = "error"
	StateEmpty        State = "empty"
	StateReady        State = "ready"
)

// Texts shown by the gallery view.
const (
	DashboardTitle     = "Alpha Lions NFT Dashboard"
	ConnectPrompt      = "Connect your wallet to access your NFT collection and download options"
	LoadingText        = "Loading..."
	ErrorTitle         = "Error Loading NFTs"
	ErrorHint          = "Please check your connection and try again"
	EmptyTitle         = "No NFTs found"
	EmptyText          = "No NFTs available for this wallet/contract."
	ModelAvailableText = "3D Model Available"
	ModelMissingText   = "Coming Soon"
)

// Card is the render model of one token in the grid.
type Card struct {
	TokenId     string            `json:"token_id" extensions:"x-order:0"`
	Name        string            `json:"name" extensions:"x-order:1"`
	Description string            `json:"description" extensions:"x-order:2"`
	Attributes  []types.Attribute `json:"attributes" extensions:"x-order:3"`
	// Image is set for image formats only.
	Image *assets.Reference `json:"image,omitempty" extensions:"x-order:4"`
	// Badge is set for 3D formats only.
	Badge           string `json:"badge,omitempty" extensions:"x-order:5"`
	ModelAvailable  bool   `json:"model_available" extensions:"x-order:6"`
	DownloadEnabled bool   `json:"download_enabled" extensions:"x-order:7"`
}

// View is the complete render model of a session's gallery in one format.
type View struct {
	State             State                   `json:"state" extensions:"x-order:0"`
	Wallet            string                  `json:"wallet,omitempty" extensions:"x-order:1"`
	Format            types.Format            `json:"format" extensions:"x-order:2"`
	FormatDescription string                  `json:"format_description" extensions:"x-order:3"`
	Title             string                  `json:"title" extensions:"x-order:4"`
	Subtitle          string                  `json:"subtitle" extensions:"x-order:5"`
	Message           string                  `json:"message,omitempty" extensions:"x-order:6"`
	Hint              string                  `json:"hint,omitempty" extensions:"x-order:7"`
	Cards             []Card                  `json:"cards" extensions:"x-order:8"`
	Page              int                     `json:"page" extensions:"x-order:9"`
	TotalPages        int                     `json:"total_pages" extensions:"x-order:10"`
	TotalItems        int                     `json:"total_items" extensions:"x-order:11"`
	Pages             []pagination.PageNumber `json:"pages" extensions:"x-order:12"`
	HasPrev           bool                    `json:"has_prev" extensions:"x-order:13"`
	HasNext           bool                    `json:"has_next" extensions:"x-order:14"`
}

// View renders the session in format. Only the cards of the current page are resolved;
// disconnected, loading, error and empty states resolve no assets at all.
func (s *Session) View(format types.Format, resolver *assets.Resolver) View {
	snap := s.Snapshot()

	v := View{
		Format:            format,
		FormatDescription: format.Description(),
		Cards:             []Card{},
		Pages:             []pagination.PageNumber{},
	}

	if snap.Wallet == "" {
		v.State = StateDisconnected
		v.Title = DashboardTitle
		v.Subtitle = ConnectPrompt
		return v
	}

	v.Wallet = snap.Wallet
	v.Title = fmt.Sprintf("Your %s Collection", format.Label())

	switch {
	case snap.Loading:
		v.State = StateLoading
		v.Subtitle = LoadingText
		return v
	case snap.Error != "":
		v.State = StateError
		v.Subtitle = collectionSize(0)
		v.Message = ErrorTitle + ": " + snap.Error
		v.Hint = ErrorHint
		return v
	case len(snap.Tokens) == 0:
		v.State = StateEmpty
		v.Subtitle = collectionSize(0)
		v.Message = EmptyTitle
		v.Hint = EmptyText
		return v
	}

	v.State = StateReady
	v.Subtitle = collectionSize(len(snap.Tokens))
	v.Page = snap.Page
	v.TotalPages = snap.TotalPages
	v.TotalItems = len(snap.Tokens)
	// the page bar only shows when there is somewhere to go
	if snap.TotalPages > 1 {
		v.Pages = pagination.PageNumbers(snap.Page, snap.TotalPages)
		v.HasPrev = snap.Page > pagination.FirstPage
		v.HasNext = snap.Page < snap.TotalPages
	}

	for _, token := range pagination.Slice(snap.Tokens, snap.Page, snap.PageSize) {
		v.Cards = append(v.Cards, NewCard(token, format, resolver))
	}
	return v
}

// NewCard builds the card of token in format.
func NewCard(token types.Token, format types.Format, resolver *assets.Resolver) Card {
	c := Card{
		TokenId:     token.TokenId,
		Name:        token.Metadata.Name,
		Description: token.Metadata.Description,
		Attributes:  token.Metadata.Attributes,
	}
	if c.Attributes == nil {
		c.Attributes = []types.Attribute{}
	}

	ref := resolver.Resolve(token, format)
	if format.Is3D() {
		c.ModelAvailable = ref.Available
		c.Badge = ModelMissingText
		if ref.Available {
			c.Badge = ModelAvailableText
		}
		c.DownloadEnabled = ref.Available
		return c
	}

	c.Image = &ref
	c.DownloadEnabled = true
	return c
}

func collectionSize(n int) string {
	return fmt.Sprintf("%d NFTs in your wallet", n)
}
