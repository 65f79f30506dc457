package excel_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/excel"
)

func TestRender_FilasYTotales(t *testing.T) {
	agg := linen.NewAggregator(linen.NewCatalog("수건", "발매트"))
	rep := agg.Aggregate(
		[]linen.Document{{"date": "2024-05-02", "items": []any{map[string]any{"name": "수건", "quantity": 40}}}},
		[]linen.Document{{"date": "2024-05-03", "items": []any{map[string]any{"name": "발매트", "quantity": 3}}}},
		linen.Window{}, nil,
	)

	r := excel.NewReportRenderer()
	data, err := r.Render(context.Background(), "린넨 입출고 현황", linen.Window{StartDate: "2024-05-01"}, rep)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", r.Format())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, "린넨 입출고 현황", rows[0][0])
	assert.Equal(t, "기간: 2024-05-01..*", rows[1][0])
	assert.Equal(t, []string{"품목", "입고", "반납", "차이"}, rows[3])
	assert.Equal(t, []string{"수건", "40", "0", "40"}, rows[4])
	assert.Equal(t, []string{"발매트", "0", "3", "-3"}, rows[5])
	assert.Equal(t, []string{excel.TotalLabel, "40", "3", "37"}, rows[6])
}
