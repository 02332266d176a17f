package pdf

import (
	"bytes"
	"compress/zlib"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
)

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:            uuid.New(),
		From:          "Acme Traders\nBengaluru",
		ProposalTo:    "Globex Pvt Ltd",
		InvoiceNumber: "INV-042",
		Date:          "2026-09-01",
		Items: []domain.LineItem{
			{ID: uuid.New(), HSNCode: "4820", Description: "Notebook A4", Quantity: 2, Rate: 150, Amount: 300},
		},
	}
}

func TestGenerate(t *testing.T) {
	out, err := Generate(testInvoice())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateGroupsAmounts(t *testing.T) {
	inv := testInvoice()
	inv.Items = []domain.LineItem{
		{ID: uuid.New(), Description: "Projector", Quantity: 1, Rate: 123456.789, Amount: 123456.789},
	}

	out, err := Generate(inv)
	require.NoError(t, err)

	text := pdfText(t, out)
	assert.Contains(t, text, "1,23,456.79")
}

// pdfText inflates the document's content streams so assertions can see
// the drawn text.
func pdfText(t *testing.T, doc []byte) string {
	t.Helper()
	var text strings.Builder
	rest := doc
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			break
		}
		rest = bytes.TrimLeft(rest[i+len("stream"):], "\r\n")
		end := bytes.Index(rest, []byte("endstream"))
		if end < 0 {
			break
		}
		if r, err := zlib.NewReader(bytes.NewReader(rest[:end])); err == nil {
			b, _ := io.ReadAll(r)
			text.Write(b)
			r.Close()
		}
		rest = rest[end:]
	}
	return text.String()
}

func TestGenerateAllThemes(t *testing.T) {
	inv := testInvoice()
	for _, theme := range domain.Themes {
		inv.Theme = theme
		out, err := Generate(inv)
		require.NoError(t, err, "theme %s", theme)
		assert.NotEmpty(t, out)
	}
}

func TestGenerateUnknownTheme(t *testing.T) {
	inv := testInvoice()
	inv.Theme = domain.Theme("retro")
	out, err := Generate(inv)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
