// Package delivery hands a rendered briefing to the studio: natively when a
// share channel can take the file, otherwise by offering a download and a
// prefilled WhatsApp link the client can attach it to.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/pkg/document"
	"github.com/annaddsgr/Portfolio/pkg/i18n"
)

const DefaultFallbackDelay = 1500 * time.Millisecond

type Outcome string

const (
	OutcomeShared   Outcome = "shared"
	OutcomeFallback Outcome = "fallback"
	OutcomeFailed   Outcome = "failed"
)

var ErrDownloadUnavailable = errors.New("artifact download could not be offered")

// Sharer is a native share channel.
type Sharer interface {
	// CanShare is the capability probe for this specific artifact.
	CanShare(a *document.Artifact) bool
	Share(ctx context.Context, a *document.Artifact, title, text string) error
}

// Downloader parks the artifact and returns the URL it can be fetched from.
type Downloader interface {
	Offer(ctx context.Context, a *document.Artifact) (string, error)
}

// Opener asks the client identified by sessionID to open url.
type Opener interface {
	Open(ctx context.Context, sessionID, url string) error
}

type Summary struct {
	ClientName string
	BrandName  string
	Service    string
}

type Request struct {
	SessionID string
	Artifact  *document.Artifact
	Summary   Summary
	Locale    i18n.Locale
}

type Result struct {
	Outcome     Outcome `json:"outcome"`
	Message     string  `json:"message"`
	FileName    string  `json:"file_name"`
	DownloadURL string  `json:"download_url,omitempty"`
	DeepLink    string  `json:"deep_link,omitempty"`
}

type Config struct {
	Phone string
	Delay time.Duration
}

type Dispatcher struct {
	sharer     Sharer
	downloader Downloader
	opener     Opener
	cfg        Config
	sleep      func(ctx context.Context, d time.Duration) error
	logger     logger.ILogger
}

// NewDispatcher wires the channels. sharer and opener may be nil.
func NewDispatcher(sharer Sharer, downloader Downloader, opener Opener, cfg Config, log logger.ILogger) *Dispatcher {
	if cfg.Delay < 0 {
		cfg.Delay = DefaultFallbackDelay
	}
	return &Dispatcher{
		sharer:     sharer,
		downloader: downloader,
		opener:     opener,
		cfg:        cfg,
		sleep:      sleepCtx,
		logger:     log,
	}
}

// Dispatch tries the native share first and falls back to download plus
// deep link. Exactly one of the two paths completes per call.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	tr := i18n.For(req.Locale)
	message := SummaryMessage(tr, req.Summary)

	if d.sharer != nil && d.sharer.CanShare(req.Artifact) {
		err := d.sharer.Share(ctx, req.Artifact, tr.T(i18n.ShareTitle), message)
		if err == nil {
			d.logger.Info("Delivery", "Briefing shared natively", map[string]interface{}{
				"session_id": req.SessionID,
				"file_name":  req.Artifact.FileName,
			})
			return &Result{
				Outcome:  OutcomeShared,
				Message:  tr.T(i18n.OutcomeShared),
				FileName: req.Artifact.FileName,
			}, nil
		}
		d.logger.Warn("Delivery", "Share failed or cancelled, falling back", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
	}

	return d.fallback(ctx, req, tr, message)
}

func (d *Dispatcher) fallback(ctx context.Context, req Request, tr i18n.Translator, message string) (*Result, error) {
	url, err := d.downloader.Offer(ctx, req.Artifact)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadUnavailable, err)
	}

	link := WhatsAppLink(d.cfg.Phone, message+"\n\n"+tr.T(i18n.ShareAttachNote))
	res := &Result{
		Outcome:     OutcomeFallback,
		Message:     tr.T(i18n.OutcomeFallback),
		FileName:    req.Artifact.FileName,
		DownloadURL: url,
		DeepLink:    link,
	}

	// give the download a head start before the messaging app takes focus
	if err := d.sleep(ctx, d.cfg.Delay); err != nil {
		d.logger.Warn("Delivery", "Fallback delay interrupted, deep link not pushed", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		return res, nil
	}

	if d.opener != nil {
		if err := d.opener.Open(ctx, req.SessionID, link); err != nil {
			d.logger.Warn("Delivery", "Failed to push deep link to client", map[string]interface{}{
				"session_id": req.SessionID,
				"error":      err.Error(),
			})
		}
	}

	d.logger.Info("Delivery", "Briefing offered for download", map[string]interface{}{
		"session_id": req.SessionID,
		"file_name":  req.Artifact.FileName,
	})
	return res, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
