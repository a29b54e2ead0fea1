package revision

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"github.com/prosewatch/prosewatch/pkg/notify"
	"github.com/prosewatch/prosewatch/pkg/scraper"
	"github.com/prosewatch/prosewatch/pkg/textdiff"
)

// Pipeline runs one monitoring round: fetch every tracked document,
// capture a revision when the content changed, diff it against the
// previous revision, and dispatch a report.
type Pipeline struct {
	store      *Store
	fetcher    scraper.Fetcher
	dispatcher *notify.Dispatcher
	logger     *slog.Logger
}

// NewPipeline creates a monitoring pipeline.
func NewPipeline(store *Store, fetcher scraper.Fetcher, dispatcher *notify.Dispatcher) *Pipeline {
	return &Pipeline{
		store:      store,
		fetcher:    fetcher,
		dispatcher: dispatcher,
		logger:     slog.Default(),
	}
}

// RunCheck checks every tracked document once. Per-document failures
// are logged and skipped so one unreachable page does not stall the
// round.
func (p *Pipeline) RunCheck(ctx context.Context) error {
	docs, err := p.store.AllDocuments(ctx)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	p.logger.Info("starting check", "documents", len(docs))

	var reports int
	for _, doc := range docs {
		report, err := p.checkDocument(ctx, doc)
		if err != nil {
			p.logger.Error("check document failed", "document", doc.URL, "error", err)
			continue
		}
		if report != nil {
			reports++
		}
	}

	p.logger.Info("check complete", "documents", len(docs), "reports", reports)
	return nil
}

// checkDocument fetches one document and returns a report when its
// wording drifted from the previous revision.
func (p *Pipeline) checkDocument(ctx context.Context, doc Document) (*Report, error) {
	fetched, err := p.fetcher.Fetch(ctx, doc.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", doc.URL, err)
	}

	content := fetched.Text
	checksum := fmt.Sprintf("%x", sha256.Sum256([]byte(content)))

	_ = p.store.UpdateLastChecked(ctx, doc.ID)

	prev, err := p.store.LatestRevision(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	if prev == nil {
		if _, err := p.store.SaveRevision(ctx, doc.ID, content, checksum); err != nil {
			return nil, err
		}
		p.logger.Info("first revision captured", "document", doc.Name, "size", len(content))
		return nil, nil
	}

	if prev.Checksum == checksum {
		p.logger.Info("no changes", "document", doc.Name)
		return nil, nil
	}

	newID, err := p.store.SaveRevision(ctx, doc.ID, content, checksum)
	if err != nil {
		return nil, err
	}

	result := textdiff.Diff(prev.Content, content)
	if !result.HasChanges {
		// Bytes moved but no wording did (markup or whitespace churn).
		p.logger.Info("content churn without wording change", "document", doc.Name)
		return nil, nil
	}

	p.logger.Info("rewrite drift detected",
		"document", doc.Name,
		"added_phrases", result.Stats.Additions,
		"removed_phrases", result.Stats.Removals)

	report := Report{
		DocumentID:    doc.ID,
		OldRevisionID: prev.ID,
		NewRevisionID: newID,
		Additions:     result.Additions,
		Removals:      result.Removals,
	}
	id, err := p.store.SaveReport(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = id

	if p.dispatcher != nil {
		msg := notify.FormatReport(doc.Name, doc.URL, result)
		if err := p.dispatcher.SendAll(ctx, msg); err != nil {
			p.logger.Warn("notify failed", "document", doc.Name, "error", err)
		}
	}

	return &report, nil
}
