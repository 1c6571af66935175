package assets

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/metrics"
	"github.com/alphalions/gallery/types"
)

// Download outcomes, used as metric labels.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeEmpty    = "empty"
	OutcomeFailed   = "failed"
)

// Payload is a downloadable asset ready to be handed to the viewer.
type Payload struct {
	Format      types.Format
	TokenId     string
	Name        string
	Filename    string
	ContentType string
	Data        []byte
}

// Downloader retrieves asset payloads for tokens. Local assets are read from the bundle
// and remote ones are fetched over HTTP.
type Downloader struct {
	resolver *Resolver
	client   *fiber.Client
	timeout  time.Duration
	logger   *slog.Logger
}

func NewDownloader(resolver *Resolver, timeout time.Duration, logger *slog.Logger) *Downloader {
	return &Downloader{
		resolver: resolver,
		client:   fiber.AcquireClient(),
		timeout:  timeout,
		logger:   logger.With("component", "downloader"),
	}
}

// Download returns the token's asset in the given format. A missing asset yields an
// ASSET_NOT_FOUND error and an empty one EMPTY_PAYLOAD; no payload is produced in either case.
func (d *Downloader) Download(ctx context.Context, token types.Token, format types.Format) (*Payload, error) {
	payload, err := d.download(ctx, token, format)
	if err != nil {
		metrics.TrackDownload(string(format), Outcome(err), 0)
		d.logger.Info("download failed",
			slog.String("token_id", token.TokenId),
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		return nil, err
	}
	metrics.TrackDownload(string(format), OutcomeSuccess, len(payload.Data))
	return payload, nil
}

func (d *Downloader) download(ctx context.Context, token types.Token, format types.Format) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ref := d.resolver.Resolve(token, format)
	if !ref.Available {
		return nil, types.NewAssetNotFoundError(format, token.TokenId)
	}

	var (
		data []byte
		err  error
	)
	if ref.Remote {
		data, err = d.fetchRemote(ctx, ref)
	} else {
		data, err = d.readLocal(ref)
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, types.NewEmptyPayloadError(format, token.TokenId)
	}

	name := token.DisplayName(format)
	return &Payload{
		Format:      format,
		TokenId:     token.TokenId,
		Name:        name,
		Filename:    Filename(name, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func (d *Downloader) readLocal(ref Reference) ([]byte, error) {
	data, err := d.resolver.bundle.ReadFile(ref.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, types.NewAssetNotFoundError(ref.Format, ref.TokenId)
	}
	if err != nil {
		return nil, types.NewInternalError("failed to read asset", err)
	}
	return data, nil
}

func (d *Downloader) fetchRemote(ctx context.Context, ref Reference) ([]byte, error) {
	agent := d.client.Get(ref.Location)
	if d.timeout > 0 {
		agent.Timeout(d.timeout)
	}

	code, body, errs := agent.Bytes()
	if err := errors.Join(errs...); err != nil {
		return nil, types.NewNetworkError(ref.Location, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, types.NewAssetNotFoundError(ref.Format, ref.TokenId)
	}
	return body, nil
}

// Outcome classifies a download error for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case types.IsType(err, types.ErrTypeAssetNotFound):
		return OutcomeNotFound
	case types.IsType(err, types.ErrTypeEmptyPayload):
		return OutcomeEmpty
	default:
		return OutcomeFailed
	}
}

// Filename builds a download filename safe for a Content-Disposition header. Names that
// sanitize to nothing fall back to the format's generic stem.
func Filename(name string, format types.Format) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return -1
		case strings.ContainsRune(`"\/:*?<>|`, r):
			return '_'
		}
		return r
	}, name)
	stem = strings.Trim(strings.TrimSpace(stem), ".")
	if stem == "" {
		stem = format.FallbackName()
	}
	return stem + format.Extension()
}
