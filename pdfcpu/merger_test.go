package pdfcpu_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/pdfcpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blankPDF builds a PDF with the given number of empty letter pages.
func blankPDF(t *testing.T, pages int) []byte {
	t.Helper()

	kids := make([]string, pages)
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"",
	}
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
		objs = append(objs, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}
	objs[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages)

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func TestMerger_Merge(t *testing.T) {
	t.Parallel()

	t.Run("concatenates pages of every input", func(t *testing.T) {
		t.Parallel()

		m := pdfcpu.NewMerger()
		res, err := m.Merge([][]byte{blankPDF(t, 1), blankPDF(t, 2), blankPDF(t, 1)})

		require.NoError(t, err)
		assert.Empty(t, res.Skipped)
		n, err := pdfcpu.PageCount(res.PDF)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("skips invalid inputs", func(t *testing.T) {
		t.Parallel()

		m := pdfcpu.NewMerger(pdfcpu.WithOptimize(false))
		res, err := m.Merge([][]byte{[]byte("not a pdf"), blankPDF(t, 2), nil})

		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, res.Skipped)
		n, err := pdfcpu.PageCount(res.PDF)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("reports a truncated document as skipped", func(t *testing.T) {
		t.Parallel()

		res, err := pdfcpu.NewMerger().Merge([][]byte{
			blankPDF(t, 1),
			[]byte("%PDF-1.4 truncated garbage"),
			blankPDF(t, 1),
		})

		require.NoError(t, err)
		assert.Equal(t, []int{1}, res.Skipped)
		n, err := pdfcpu.PageCount(res.PDF)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("single input is returned as a document", func(t *testing.T) {
		t.Parallel()

		res, err := pdfcpu.NewMerger().Merge([][]byte{blankPDF(t, 3)})

		require.NoError(t, err)
		n, err := pdfcpu.PageCount(res.PDF)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("nothing valid is an assembly error", func(t *testing.T) {
		t.Parallel()

		res, err := pdfcpu.NewMerger().Merge([][]byte{[]byte("junk"), {}})

		require.Error(t, err)
		assert.Equal(t, omnidocs.EASSEMBLY, omnidocs.ErrorCode(err))
		assert.Equal(t, []int{0, 1}, res.Skipped)
	})

	t.Run("empty input is an assembly error", func(t *testing.T) {
		t.Parallel()

		_, err := pdfcpu.NewMerger().Merge(nil)

		assert.Equal(t, omnidocs.EASSEMBLY, omnidocs.ErrorCode(err))
	})
}

func TestPageCount_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := pdfcpu.PageCount([]byte("%PDF-garbage"))

	assert.Equal(t, omnidocs.EINVALID, omnidocs.ErrorCode(err))
}
