package linen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/logger"
)

// MaxNoteRunes longitud máxima de la nota de un registro.
const MaxNoteRunes = 500

// EntryUseCase registro y borrado de entradas/devoluciones.
type EntryUseCase struct {
	repo     repository.LinenRepository
	agg      *linen.Aggregator
	recorder Recorder
	log      *logger.Logger
	now      func() time.Time
}

// NewEntryUseCase construye el caso de uso. recorder y log pueden ser nil.
func NewEntryUseCase(repo repository.LinenRepository, agg *linen.Aggregator, recorder Recorder, log *logger.Logger) *EntryUseCase {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EntryUseCase{repo: repo, agg: agg, recorder: recorder, log: log, now: time.Now}
}

// Record valida el formulario, normaliza cada etiqueta y guarda el documento.
// Las etiquetas sin coincidencia en el catálogo se guardan tal cual y se cuentan en métricas.
// Las líneas sin nombre o con cantidad 0 se descartan; debe quedar al menos una.
func (uc *EntryUseCase) Record(ctx context.Context, actor dto.Actor, kind linen.Kind, in dto.LinenEntryRequest) (*dto.LinenEventResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: kind inválido", domain.ErrInvalidInput)
	}
	date := strings.TrimSpace(in.Date)
	if !ValidDate(date) {
		return nil, fmt.Errorf("%w: date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	note := strings.TrimSpace(in.Note)
	if len([]rune(note)) > MaxNoteRunes {
		return nil, fmt.Errorf("%w: la nota supera %d caracteres", domain.ErrInvalidInput, MaxNoteRunes)
	}

	catalog := uc.agg.Catalog()
	items := make([]any, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		raw := strings.TrimSpace(it.Name)
		if raw == "" {
			continue
		}
		qty := linen.ParseQuantity(it.Quantity)
		if qty == 0 {
			continue
		}
		name := uc.agg.Normalize(raw)
		if !catalog.Contains(name) {
			uc.recorder.UnmatchedLinenName(kind)
			uc.log.Warn().Str("kind", string(kind)).Str("name", raw).Msg("etiqueta de lencería fuera del catálogo")
		}
		items = append(items, linen.Document{"name": name, "quantity": qty})
		total = total.Add(decimal.NewFromInt(qty))
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos una línea con nombre y cantidad", domain.ErrInvalidInput)
	}

	now := uc.now().UTC()
	body := linen.Document{
		"date":          date,
		"items":         items,
		"createdBy":     actor.UserID,
		"createdByName": actor.Name,
		"createdAt":     now.Format(time.RFC3339),
	}
	if note != "" {
		body["note"] = note
	}
	ev := &entity.LinenEvent{
		ID:            uuid.New().String(),
		Kind:          kind,
		Date:          date,
		Body:          body,
		TotalQuantity: total,
		CreatedBy:     actor.UserID,
		CreatedByName: actor.Name,
		CreatedAt:     now,
	}
	if err := uc.repo.Create(ctx, ev); err != nil {
		return nil, err
	}
	out := toEventResponse(uc.agg, ev)
	return &out, nil
}

// Delete borra un evento. Solo admin.
func (uc *EntryUseCase) Delete(ctx context.Context, actor dto.Actor, kind linen.Kind, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, kind, id)
}
