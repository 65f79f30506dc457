package linen

import (
	"context"
	"strings"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

// HistoryUseCase historial combinado de entradas y devoluciones.
type HistoryUseCase struct {
	repo repository.LinenRepository
	agg  *linen.Aggregator
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.LinenRepository, agg *linen.Aggregator) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, agg: agg}
}

// List devuelve los eventos crudos (del más nuevo al más viejo) con el nombre normalizado de cada línea.
func (uc *HistoryUseCase) List(ctx context.Context, in dto.LinenHistoryRequest) (*dto.LinenHistoryResponse, error) {
	kind, err := ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	w, err := ParseWindow("", in.Start, in.End)
	if err != nil {
		return nil, err
	}
	page := dto.PageRequest{Limit: in.Limit, Offset: in.Offset}
	page.DefaultPage()

	events, err := uc.repo.List(ctx, kind, w, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.LinenHistoryResponse{
		Items: make([]dto.LinenEventResponse, 0, len(events)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, ev := range events {
		out.Items = append(out.Items, toEventResponse(uc.agg, ev))
	}
	return out, nil
}

// toEventResponse lee el cuerpo con los mismos alias que el agregador,
// así el historial muestra documentos antiguos igual que los nuevos.
func toEventResponse(agg *linen.Aggregator, ev *entity.LinenEvent) dto.LinenEventResponse {
	qtyFields := linen.IncomingQuantityFields
	if ev.Kind == linen.KindReturned {
		qtyFields = linen.ReturnedQuantityFields
	}
	lines := linen.ItemsOf(ev.Body)
	items := make([]dto.LinenHistoryItem, 0, len(lines))
	for _, line := range lines {
		name := linen.NameFields.ResolveString(line)
		if strings.TrimSpace(name) == "" {
			continue
		}
		qty, _ := qtyFields.Resolve(line)
		items = append(items, dto.LinenHistoryItem{
			Name:        name,
			DisplayName: agg.Normalize(name),
			Quantity:    linen.ParseQuantity(qty),
		})
	}
	date := ev.Date
	if date == "" {
		date = linen.DefaultDateOf(ev.Body)
	}
	note, _ := ev.Body["note"].(string)
	return dto.LinenEventResponse{
		ID:            ev.ID,
		Kind:          ev.Kind,
		Date:          date,
		Items:         items,
		TotalQuantity: ev.TotalQuantity.IntPart(),
		Note:          note,
		CreatedBy:     ev.CreatedBy,
		CreatedByName: ev.CreatedByName,
		CreatedAt:     ev.CreatedAt,
	}
}
