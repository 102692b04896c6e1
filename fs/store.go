package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/omnidocs"
)

// Subdirectories used when both formats are requested.
const (
	PDFSubdir      = "pdfs"
	MarkdownSubdir = "markdown"
)

// Ensure Store implements omnidocs.OutputStore at compile time.
var _ omnidocs.OutputStore = (*Store)(nil)

// Store writes run outputs. Per-page files go under the output directory
// and the final documents are written to the final path with .pdf or .md
// appended. Every file is written to a temporary sibling first and renamed
// into place.
type Store struct {
	pdfDir      string
	markdownDir string
	finalPath   string
}

// NewStore lays out directories for the given format. In both mode per-page
// PDFs and Markdown files get their own subdirectories.
func NewStore(format omnidocs.OutputFormat, outputDir, finalPath string) *Store {
	s := &Store{finalPath: finalPath}
	switch format {
	case omnidocs.FormatBoth:
		s.pdfDir = filepath.Join(outputDir, PDFSubdir)
		s.markdownDir = filepath.Join(outputDir, MarkdownSubdir)
	default:
		s.pdfDir = outputDir
		s.markdownDir = outputDir
	}
	return s
}

// PDFDir returns the directory holding per-page PDFs.
func (s *Store) PDFDir() string { return s.pdfDir }

// MarkdownDir returns the directory holding per-page Markdown files.
func (s *Store) MarkdownDir() string { return s.markdownDir }

// SavePage writes NNN_<slug>.md with front matter.
func (s *Store) SavePage(ctx context.Context, index int, doc *omnidocs.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := doc.Validate(); err != nil {
		return "", err
	}
	ref, err := omnidocs.Canonicalize(doc.SourceURL)
	if err != nil {
		return "", err
	}

	content, err := FormatDocument(doc)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.markdownDir, PageFileName(index, ref)+".md")
	return path, writeFile(path, []byte(content))
}

// SavePagePDF writes NNN_<slug>.pdf.
func (s *Store) SavePagePDF(ctx context.Context, index int, ref omnidocs.PageRef, pdf []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.pdfDir, PageFileName(index, ref)+".pdf")
	return path, writeFile(path, pdf)
}

// SaveCombined writes the combined Markdown document behind front matter.
func (s *Store) SaveCombined(ctx context.Context, doc *omnidocs.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fm, err := FrontMatter(doc)
	if err != nil {
		return "", err
	}

	path := s.finalPath + ".md"
	return path, writeFile(path, []byte(fm+"\n"+doc.Content))
}

// SaveMerged writes the merged PDF.
func (s *Store) SaveMerged(ctx context.Context, pdf []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := s.finalPath + ".pdf"
	return path, writeFile(path, pdf)
}

// writeFile replaces path atomically so readers never see a partial file.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
