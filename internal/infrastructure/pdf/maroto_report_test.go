package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/pdf"
)

func TestRender_GeneraPDF(t *testing.T) {
	// Catálogo latino: helvetica no trae glifos hangul.
	agg := linen.NewAggregator(linen.NewCatalog("towel", "bath mat"))
	rep := agg.Aggregate(
		[]linen.Document{{"date": "2024-05-02", "name": "towel", "quantity": 1200}},
		[]linen.Document{{"date": "2024-05-02", "name": "bath mat", "quantity": 3}},
		linen.Window{}, nil,
	)

	r := pdf.NewReportRenderer(pdf.Options{Author: "HARU"})
	data, err := r.Render(context.Background(), "Linen report", linen.Window{StartDate: "2024-05-01", EndDate: "2024-05-31"}, rep)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Format())
}

func TestRender_FuenteInexistente(t *testing.T) {
	r := pdf.NewReportRenderer(pdf.Options{FontFile: "/no/existe.ttf"})
	_, err := r.Render(context.Background(), "x", linen.Window{}, linen.Report{})
	assert.Error(t, err)
}
