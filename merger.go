package omnidocs

// MergeResult is the outcome of merging PDF documents.
type MergeResult struct {
	// PDF is the merged document. Nil when no input was valid.
	PDF []byte

	// Skipped holds the positions of the inputs that were not valid PDFs,
	// in ascending order.
	Skipped []int
}

// PDFMerger merges PDF documents.
type PDFMerger interface {
	// Merge concatenates the documents in the given order, skipping the
	// invalid ones. The result reports the skipped inputs even when err is
	// not nil. Returns EASSEMBLY if no input is valid.
	Merge(pdfs [][]byte) (*MergeResult, error)
}
