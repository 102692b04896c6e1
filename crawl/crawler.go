package crawl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/omnidocs"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Crawler converts discovered pages and assembles the final documents.
type Crawler struct {
	Renderer  omnidocs.Renderer
	Extractor omnidocs.Extractor
	Converter omnidocs.Converter
	Merger    omnidocs.PDFMerger
	Store     omnidocs.OutputStore

	// RateLimiter is optional; nil loads pages as fast as workers allow.
	RateLimiter omnidocs.RateLimiter

	// Progress is optional. Calls are serialized.
	Progress omnidocs.ProgressFunc

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Run converts every page of the discovery result with cfg.Concurrency
// workers and writes the outputs in discovery order. Page failures are
// recorded on their artifacts. Once ctx is done no further page starts;
// pages never started are recorded as canceled and the completed ones are
// still assembled.
//
// The returned error is EASSEMBLY when no page converted or when every
// requested output failed to assemble. The run is returned in either case.
func (c *Crawler) Run(ctx context.Context, discovery *omnidocs.DiscoveryResult, cfg omnidocs.Config) (*omnidocs.Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = omnidocs.DefaultConcurrency
	}
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = omnidocs.DefaultPageTimeout
	}
	if cfg.PDF == nil {
		cfg.PDF = omnidocs.DefaultPDFOptions()
	}

	run := &omnidocs.Run{
		ID:        uuid.NewString(),
		Config:    cfg,
		Discovery: discovery,
		StartedAt: c.now(),
	}

	refs := discovery.Pages()
	artifacts := make([]*omnidocs.PageArtifact, len(refs))

	var (
		mu        sync.Mutex
		completed int
	)
	report := func(a *omnidocs.PageArtifact) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		if c.Progress != nil {
			c.Progress(omnidocs.Progress{
				URL:       a.Ref.String(),
				Completed: completed,
				Total:     len(refs),
				Error:     a.Err,
			})
		}
	}

	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)
	for i, ref := range refs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			a := c.convertPage(ctx, i, ref, &cfg)
			artifacts[i] = a
			report(a)
			return nil
		})
	}
	_ = g.Wait()

	for i, a := range artifacts {
		if a == nil {
			artifacts[i] = &omnidocs.PageArtifact{
				Index: i,
				Ref:   refs[i],
				Err:   omnidocs.Errorf(omnidocs.ECANCELED, "not started: run canceled"),
			}
		}
	}
	markDuplicates(artifacts)
	run.Artifacts = artifacts

	err := c.assemble(context.WithoutCancel(ctx), run)
	run.FinishedAt = c.now()
	return run, err
}

// convertPage renders one page once and produces every requested artifact
// from that render.
func (c *Crawler) convertPage(ctx context.Context, index int, ref omnidocs.PageRef, cfg *omnidocs.Config) *omnidocs.PageArtifact {
	begin := time.Now()
	a := &omnidocs.PageArtifact{Index: index, Ref: ref}
	defer func() { a.Duration = time.Since(begin) }()

	if err := ctx.Err(); err != nil {
		a.Err = omnidocs.WrapError(omnidocs.ECANCELED, err, "not started")
		return a
	}
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, ref); err != nil {
			a.Err = omnidocs.WrapError(omnidocs.ECANCELED, err, "not started")
			return a
		}
	}

	lctx, cancel := context.WithTimeout(ctx, cfg.PageTimeout)
	defer cancel()

	page, err := c.Renderer.Load(lctx, ref.String())
	if err != nil {
		a.Err = err
		return a
	}
	defer page.Close()

	html, err := page.HTML(lctx)
	if err != nil {
		a.Err = err
		return a
	}

	frag := c.Extractor.Extract(html)
	a.Title = frag.Title
	if frag.Empty() {
		a.Warning = omnidocs.Errorf(omnidocs.EEMPTY, "no content extracted").Message
	} else {
		a.ContentHash = fmt.Sprintf("%x", xxhash.Sum64String(frag.Text))
	}

	if cfg.Format.Markdown() {
		var body string
		if strings.TrimSpace(frag.HTML) != "" {
			body, err = c.Converter.Convert(frag.HTML)
			if err != nil {
				a.Err = omnidocs.WrapError(omnidocs.EINTERNAL, err, "converting %s to Markdown", ref)
				return a
			}
		}
		a.Document = &omnidocs.Document{
			Title:       frag.Title,
			SourceURL:   ref.String(),
			Content:     body,
			ConvertedAt: c.now(),
		}
	}

	if cfg.Format.PDF() {
		pctx, cancel := context.WithTimeout(ctx, cfg.PageTimeout)
		defer cancel()

		pdf, err := page.PDF(pctx, cfg.PDF)
		if err != nil {
			a.Err = err
			return a
		}
		a.PDF = pdf
	}

	return a
}

// markDuplicates warns on pages whose content matches an earlier page.
func markDuplicates(artifacts []*omnidocs.PageArtifact) {
	first := make(map[string]omnidocs.PageRef)
	for _, a := range artifacts {
		if !a.OK() || a.ContentHash == "" {
			continue
		}
		if ref, ok := first[a.ContentHash]; ok {
			a.Warning = fmt.Sprintf("same content as %s", ref)
			continue
		}
		first[a.ContentHash] = a.Ref
	}
}

// assemble writes the requested outputs from the converted pages in
// discovery order. PDF snapshots are merged first: a page whose snapshot
// the merger rejects fails and is left out of every output.
func (c *Crawler) assemble(ctx context.Context, run *omnidocs.Run) error {
	defer releasePDFs(run.Artifacts)

	if run.Succeeded() == 0 {
		return omnidocs.Errorf(omnidocs.EASSEMBLY, "no page converted out of %d", run.Total())
	}

	var (
		merged   []byte
		mergeErr error
	)
	if run.Config.Format.PDF() {
		merged, mergeErr = c.mergePDFs(run)
	}

	var errs []error
	requested := 0
	if run.Config.Format.Markdown() {
		requested++
		if err := c.assembleMarkdown(ctx, run); err != nil {
			errs = append(errs, err)
		}
	}
	if run.Config.Format.PDF() {
		requested++
		if mergeErr != nil {
			errs = append(errs, mergeErr)
		} else if err := c.savePDFs(ctx, run, merged); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 && len(errs) == requested {
		return omnidocs.WrapError(omnidocs.EASSEMBLY, errors.Join(errs...), "assembling outputs")
	}
	for _, err := range errs {
		run.Warnings = append(run.Warnings, omnidocs.ErrorMessageOrText(err))
	}
	return nil
}

func (c *Crawler) assembleMarkdown(ctx context.Context, run *omnidocs.Run) error {
	var docs []*omnidocs.Document
	for _, a := range run.Artifacts {
		if !a.OK() || a.Document == nil {
			continue
		}
		path, err := c.Store.SavePage(ctx, a.Index, a.Document)
		if err != nil {
			run.Warnings = append(run.Warnings, fmt.Sprintf("saving %s: %s", a.Ref, omnidocs.ErrorMessageOrText(err)))
			continue
		}
		run.Outputs = append(run.Outputs, path)
		docs = append(docs, a.Document)
	}
	if len(docs) == 0 {
		return omnidocs.Errorf(omnidocs.EASSEMBLY, "no Markdown page to combine")
	}

	base := run.Discovery.Base().String()
	title := "Documentation from " + base
	path, err := c.Store.SaveCombined(ctx, &omnidocs.Document{
		Title:       title,
		SourceURL:   base,
		Content:     omnidocs.CombineDocuments(title, docs),
		ConvertedAt: c.now(),
	})
	if err != nil {
		return omnidocs.WrapError(omnidocs.EASSEMBLY, err, "saving combined Markdown")
	}
	run.Outputs = append(run.Outputs, path)
	return nil
}

// mergePDFs merges the snapshots of the converted pages. Pages whose
// snapshot was skipped by the merger are marked failed.
func (c *Crawler) mergePDFs(run *omnidocs.Run) ([]byte, error) {
	var (
		pdfs   [][]byte
		owners []*omnidocs.PageArtifact
	)
	for _, a := range run.Artifacts {
		if !a.OK() {
			continue
		}
		pdfs = append(pdfs, a.PDF)
		owners = append(owners, a)
	}

	res, err := c.Merger.Merge(pdfs)
	if res != nil {
		for _, i := range res.Skipped {
			if i < 0 || i >= len(owners) {
				continue
			}
			a := owners[i]
			a.Err = omnidocs.Errorf(omnidocs.EASSEMBLY, "invalid PDF snapshot of %s", a.Ref)
		}
	}
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

func (c *Crawler) savePDFs(ctx context.Context, run *omnidocs.Run, merged []byte) error {
	if run.Config.KeepPagePDFs {
		for _, a := range run.Artifacts {
			if !a.OK() || len(a.PDF) == 0 {
				continue
			}
			path, err := c.Store.SavePagePDF(ctx, a.Index, a.Ref, a.PDF)
			if err != nil {
				run.Warnings = append(run.Warnings, fmt.Sprintf("saving PDF of %s: %s", a.Ref, omnidocs.ErrorMessageOrText(err)))
				continue
			}
			run.Outputs = append(run.Outputs, path)
		}
	}

	path, err := c.Store.SaveMerged(ctx, merged)
	if err != nil {
		return omnidocs.WrapError(omnidocs.EASSEMBLY, err, "saving merged PDF")
	}
	run.Outputs = append(run.Outputs, path)
	return nil
}

// releasePDFs drops the page snapshots once they are merged or on disk.
func releasePDFs(artifacts []*omnidocs.PageArtifact) {
	for _, a := range artifacts {
		a.PDF = nil
	}
}

func (c *Crawler) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
