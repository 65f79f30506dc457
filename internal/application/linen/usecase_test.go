package linen_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	linenapp "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/mocks"
)

type countingRecorder struct {
	mu        sync.Mutex
	unmatched map[linen.Kind]int
	reports   map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{unmatched: map[linen.Kind]int{}, reports: map[string]int{}}
}

func (r *countingRecorder) UnmatchedLinenName(k linen.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unmatched[k]++
}

func (r *countingRecorder) LinenReportGenerated(format string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[format]++
}

type fakeRenderer struct {
	gotTitle  string
	gotReport linen.Report
}

func (f *fakeRenderer) Format() string      { return "xlsx" }
func (f *fakeRenderer) ContentType() string { return "application/test" }
func (f *fakeRenderer) Render(_ context.Context, title string, _ linen.Window, r linen.Report) ([]byte, error) {
	f.gotTitle, f.gotReport = title, r
	return []byte("xlsx-bytes"), nil
}

var actor = dto.Actor{UserID: "7b0c4a0e-8f5d-4f7e-9a59-0c7f2f2b9d11", Name: "민수", Role: "staff"}

// ── ParseWindow / ParseKind ──

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name, month, start, end string
		want                    linen.Window
		wantErr                 bool
	}{
		{name: "mes completo", month: "2024-02", want: linen.Window{StartDate: "2024-02-01", EndDate: "2024-02-29"}},
		{name: "diciembre", month: "2023-12", want: linen.Window{StartDate: "2023-12-01", EndDate: "2023-12-31"}},
		{name: "rango", start: "2024-01-05", end: "2024-01-10", want: linen.Window{StartDate: "2024-01-05", EndDate: "2024-01-10"}},
		{name: "solo inicio", start: "2024-01-05", want: linen.Window{StartDate: "2024-01-05"}},
		{name: "sin límites", want: linen.Window{}},
		{name: "mes inválido", month: "2024-13", wantErr: true},
		{name: "mes y rango", month: "2024-01", start: "2024-01-01", wantErr: true},
		{name: "fecha inválida", start: "2024-02-30", wantErr: true},
		{name: "inicio posterior", start: "2024-02-01", end: "2024-01-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := linenapp.ParseWindow(tt.month, tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := linenapp.ParseKind("returns")
	require.NoError(t, err)
	assert.Equal(t, linen.KindReturned, k)

	k, err = linenapp.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, linen.Kind(""), k)

	_, err = linenapp.ParseKind("lost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── EntryUseCase ──

func TestRecord_NormalizaYGuarda(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinenRepository(ctrl)
	rec := newCountingRecorder()
	uc := linenapp.NewEntryUseCase(repo, linen.NewAggregator(linen.DefaultCatalog()), rec, nil)
	ctx := context.Background()

	var saved *entity.LinenEvent
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev *entity.LinenEvent) error {
		saved = ev
		return nil
	})

	out, err := uc.Record(ctx, actor, linen.KindIncoming, dto.LinenEntryRequest{
		Date: "2024-05-03",
		Note: " 오전 입고 ",
		Items: []dto.LinenItemInput{
			{Name: "싱글이불커버", Quantity: "10"},
			{Name: "  ", Quantity: 4},
			{Name: "수건", Quantity: 0},
			{Name: "베개솜", Quantity: 2.0},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, linen.KindIncoming, saved.Kind)
	assert.Equal(t, "2024-05-03", saved.Date)
	assert.Equal(t, actor.UserID, saved.CreatedBy)
	assert.Equal(t, "오전 입고", saved.Body["note"])
	assert.Equal(t, actor.Name, saved.Body["createdByName"])

	want := []dto.LinenHistoryItem{
		{Name: "싱글 이불 커버", DisplayName: "싱글 이불 커버", Quantity: 10},
		{Name: "베개솜", DisplayName: "베개솜", Quantity: 2},
	}
	if diff := cmp.Diff(want, out.Items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, rec.unmatched[linen.KindIncoming], "베개솜 no está en el catálogo")
	assert.True(t, decimal.NewFromInt(12).Equal(saved.TotalQuantity), "total guardado: %s", saved.TotalQuantity)
	assert.Equal(t, int64(12), out.TotalQuantity)
}

func TestRecord_Validaciones(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinenRepository(ctrl)
	uc := linenapp.NewEntryUseCase(repo, linen.NewAggregator(linen.DefaultCatalog()), nil, nil)
	ctx := context.Background()
	items := []dto.LinenItemInput{{Name: "수건", Quantity: 3}}

	tests := []struct {
		name string
		kind linen.Kind
		in   dto.LinenEntryRequest
	}{
		{"kind desconocido", linen.Kind("lost"), dto.LinenEntryRequest{Date: "2024-05-03", Items: items}},
		{"sin fecha", linen.KindIncoming, dto.LinenEntryRequest{Items: items}},
		{"fecha con hora", linen.KindIncoming, dto.LinenEntryRequest{Date: "2024-05-03T10:00:00Z", Items: items}},
		{"sin líneas", linen.KindReturned, dto.LinenEntryRequest{Date: "2024-05-03"}},
		{"solo líneas vacías", linen.KindReturned, dto.LinenEntryRequest{Date: "2024-05-03", Items: []dto.LinenItemInput{{Name: "", Quantity: 1}, {Name: "수건", Quantity: "abc"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Record(ctx, actor, tt.kind, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDelete_SoloAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinenRepository(ctrl)
	uc := linenapp.NewEntryUseCase(repo, linen.NewAggregator(linen.DefaultCatalog()), nil, nil)
	ctx := context.Background()
	id := "2f1d3c4b-5a69-4b7c-8d9e-0f1a2b3c4d5e"

	err := uc.Delete(ctx, actor, linen.KindIncoming, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	admin := dto.Actor{UserID: "a", Role: "admin"}
	assert.ErrorIs(t, uc.Delete(ctx, admin, linen.KindIncoming, "no-es-uuid"), domain.ErrNotFound)

	repo.EXPECT().Delete(ctx, linen.KindReturned, id).Return(nil)
	assert.NoError(t, uc.Delete(ctx, admin, linen.KindReturned, id))
}

// ── HistoryUseCase ──

func TestHistory_LeeDocumentosAntiguos(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinenRepository(ctrl)
	uc := linenapp.NewHistoryUseCase(repo, linen.NewAggregator(linen.DefaultCatalog()))
	ctx := context.Background()

	legacy := &entity.LinenEvent{
		ID:   "ev-1",
		Kind: linen.KindReturned,
		Body: linen.Document{
			"returnDate": " 2024-04-30 ",
			"linens": []any{
				map[string]any{"linenType": "더블매트커버", "returnQuantity": "2"},
				map[string]any{"qty": 9},
			},
			"note": "구버전",
		},
		TotalQuantity: decimal.RequireFromString("2"),
	}
	repo.EXPECT().List(ctx, linen.KindReturned, linen.Window{StartDate: "2024-04-01"}, 20, 0).
		Return([]*entity.LinenEvent{legacy}, nil)

	out, err := uc.List(ctx, dto.LinenHistoryRequest{Kind: "returns", Start: "2024-04-01"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	got := out.Items[0]
	assert.Equal(t, "2024-04-30", got.Date)
	assert.Equal(t, "구버전", got.Note)
	assert.Equal(t, []dto.LinenHistoryItem{{Name: "더블매트커버", DisplayName: "더블 매트 커버", Quantity: 2}}, got.Items)
	assert.Equal(t, int64(2), got.TotalQuantity)
	assert.Equal(t, dto.PageResponse{Limit: 20, Offset: 0}, out.Page)
}

func TestHistory_FiltroInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := linenapp.NewHistoryUseCase(mocks.NewMockLinenRepository(ctrl), linen.NewAggregator(linen.DefaultCatalog()))

	_, err := uc.List(context.Background(), dto.LinenHistoryRequest{Start: "05/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── ReportUseCase ──

func TestReport_AgregaAmbasSecuencias(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinenRepository(ctrl)
	rec := newCountingRecorder()
	cat := linen.NewCatalog("수건", "발매트")
	uc := linenapp.NewReportUseCase(repo, linen.NewAggregator(cat), rec)
	w := linen.Window{StartDate: "2024-05-01", EndDate: "2024-05-31"}

	repo.EXPECT().ListDocuments(gomock.Any(), linen.KindIncoming, w).Return([]linen.Document{
		{"date": "2024-05-02", "items": []any{map[string]any{"name": "수건", "quantity": 40}}},
		{"date": "2024-06-01", "items": []any{map[string]any{"name": "수건", "quantity": 999}}},
	}, nil)
	repo.EXPECT().ListDocuments(gomock.Any(), linen.KindReturned, w).Return([]linen.Document{
		{"date": "2024-05-20", "items": []any{map[string]any{"name": "발 매트", "quantity": "3"}, map[string]any{"name": "수건", "returnQuantity": 15}}},
	}, nil)

	out, err := uc.Report(context.Background(), dto.LinenReportRequest{Month: "2024-05"})
	require.NoError(t, err)

	want := linen.Report{
		PerCategory: []linen.CategoryLine{
			{Name: "수건", CategoryTotals: linen.CategoryTotals{Incoming: 40, Returned: 15, Net: 25}},
			{Name: "발매트", CategoryTotals: linen.CategoryTotals{Incoming: 0, Returned: 3, Net: -3}},
		},
		TotalIncoming: 40,
		TotalReturned: 18,
		TotalNet:      22,
	}
	if diff := cmp.Diff(want, out.Report); diff != "" {
		t.Errorf("report (-want +got):\n%s", diff)
	}
	assert.Equal(t, w, out.Window)
	assert.Equal(t, 1, rec.reports[linenapp.FormatJSON])
}

func TestReport_ErrorDelRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinenRepository(ctrl)
	uc := linenapp.NewReportUseCase(repo, linen.NewAggregator(linen.DefaultCatalog()), nil)
	boom := errors.New("conexión perdida")

	repo.EXPECT().ListDocuments(gomock.Any(), linen.KindIncoming, gomock.Any()).Return(nil, boom)
	repo.EXPECT().ListDocuments(gomock.Any(), linen.KindReturned, gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := uc.Report(context.Background(), dto.LinenReportRequest{})
	assert.ErrorIs(t, err, boom)
}

func TestExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinenRepository(ctrl)
	rec := newCountingRecorder()
	r := &fakeRenderer{}
	uc := linenapp.NewReportUseCase(repo, linen.NewAggregator(linen.NewCatalog("수건")), rec, r)

	repo.EXPECT().ListDocuments(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	file, err := uc.Export(context.Background(), dto.LinenReportRequest{Start: "2024-05-01", End: "2024-05-31"})
	require.NoError(t, err)
	assert.Equal(t, "linen-report_2024-05-01_2024-05-31.xlsx", file.Filename)
	assert.Equal(t, "application/test", file.ContentType)
	assert.Equal(t, []byte("xlsx-bytes"), file.Data)
	assert.Contains(t, r.gotTitle, "2024-05-01 ~ 2024-05-31")
	assert.Len(t, r.gotReport.PerCategory, 1)
	assert.Equal(t, 1, rec.reports["xlsx"])

	_, err = uc.Export(context.Background(), dto.LinenReportRequest{Format: "csv"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportFileStem(t *testing.T) {
	assert.Equal(t, "linen-report_begin_now", linenapp.ReportFileStem(linen.Window{}))
	assert.Equal(t, "linen-report_begin_2024-01-31", linenapp.ReportFileStem(linen.Window{EndDate: "2024-01-31"}))
}
