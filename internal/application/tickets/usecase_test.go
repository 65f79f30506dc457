package tickets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/files"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/tickets"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/mocks"
)

// fakeTx ejecuta fn con los mocks; rollbacks cuenta las veces que fn falló.
type fakeTx struct {
	repos     repository.TxRepos
	rollbacks int
}

func (f *fakeTx) Run(_ context.Context, fn func(repos repository.TxRepos) error) error {
	if err := fn(f.repos); err != nil {
		f.rollbacks++
		return err
	}
	return nil
}

type fixture struct {
	uc      *tickets.UseCase
	repo    *mocks.MockTicketRepository
	objects *mocks.MockObjectStore
	tx      *fakeTx
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTicketRepository(ctrl)
	objects := mocks.NewMockObjectStore(ctrl)
	tx := &fakeTx{repos: repository.TxRepos{Objects: objects, Tickets: repo}}
	fs := files.NewService(objects, 1024, "")
	return fixture{uc: tickets.NewUseCase(repo, tx, fs), repo: repo, objects: objects, tx: tx}
}

var (
	staff  = dto.Actor{UserID: "staff-1", Name: "민수", Role: "staff"}
	other  = dto.Actor{UserID: "staff-2", Name: "지은", Role: "staff"}
	admin  = dto.Actor{UserID: "admin-1", Name: "관리자", Role: "admin"}
	ticket = "6a1c2b3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

func TestCreate_ConFoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var photo *entity.StoredObject
	f.objects.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *entity.StoredObject) error {
		photo = o
		return nil
	})
	f.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	out, err := f.uc.Create(ctx, staff, dto.CreateTicketRequest{Title: " 샤워기 고장 ", Location: "302"},
		&dto.FileUpload{Name: "shower.jpg", ContentType: "image/jpeg", Data: []byte("jpg")})
	require.NoError(t, err)

	assert.Equal(t, "샤워기 고장", out.Title)
	assert.Equal(t, entity.TicketPriorityNormal, out.Priority)
	assert.Equal(t, entity.TicketStatusOpen, out.Status)
	assert.Equal(t, "/api/files/"+photo.ID, out.PhotoURL)
	assert.Equal(t, staff.Name, out.CreatedByName)
}

func TestCreate_FallaElTicketRevierteLaFoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boom := errors.New("insert falló")

	f.objects.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	f.repo.EXPECT().Create(ctx, gomock.Any()).Return(boom)

	_, err := f.uc.Create(ctx, staff, dto.CreateTicketRequest{Title: "t", Location: "l"},
		&dto.FileUpload{ContentType: "image/png", Data: []byte("png")})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, f.tx.rollbacks)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, staff, dto.CreateTicketRequest{Title: "t"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, staff, dto.CreateTicketRequest{Title: "t", Location: "l", Priority: "urgent"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, staff, dto.CreateTicketRequest{Title: "t", Location: "l"},
		&dto.FileUpload{ContentType: "video/mp4", Data: []byte("mp4")})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestUpdateStatus_Transiciones(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "open → in_progress", from: entity.TicketStatusOpen, to: entity.TicketStatusInProgress},
		{name: "open → done", from: entity.TicketStatusOpen, to: entity.TicketStatusDone},
		{name: "in_progress → done", from: entity.TicketStatusInProgress, to: entity.TicketStatusDone},
		{name: "done es terminal", from: entity.TicketStatusDone, to: entity.TicketStatusOpen, wantErr: domain.ErrInvalidTransition},
		{name: "in_progress → open", from: entity.TicketStatusInProgress, to: entity.TicketStatusOpen, wantErr: domain.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.repo.EXPECT().GetByID(ctx, ticket).Return(&entity.Ticket{ID: ticket, Status: tt.from}, nil)
			if tt.wantErr == nil {
				f.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
			}

			out, err := f.uc.UpdateStatus(ctx, ticket, dto.UpdateTicketStatusRequest{Status: tt.to, Assignee: "시설팀"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, out.Status)
			assert.Equal(t, "시설팀", out.Assignee)
		})
	}
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.UpdateStatus(context.Background(), ticket, dto.UpdateTicketStatusRequest{Status: "closed"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_NoEncontrado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Get(ctx, "42")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.repo.EXPECT().GetByID(ctx, ticket).Return(nil, nil)
	_, err = f.uc.Get(ctx, ticket)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_AutorOAdmin(t *testing.T) {
	photoID := "0b6f0c55-4b8c-4d52-9a63-1b2f3c4d5e6f"
	stored := &entity.Ticket{ID: ticket, CreatedBy: staff.UserID, PhotoURL: "/api/files/" + photoID}

	t.Run("otro usuario", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), ticket).Return(stored, nil)
		assert.ErrorIs(t, f.uc.Delete(context.Background(), other, ticket), domain.ErrForbidden)
	})

	t.Run("autor borra ticket y foto", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.repo.EXPECT().GetByID(ctx, ticket).Return(stored, nil)
		f.repo.EXPECT().Delete(ctx, ticket).Return(nil)
		f.objects.EXPECT().Delete(ctx, photoID).Return(domain.ErrNotFound)
		assert.NoError(t, f.uc.Delete(ctx, staff, ticket))
	})

	t.Run("admin", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.repo.EXPECT().GetByID(ctx, ticket).Return(&entity.Ticket{ID: ticket, CreatedBy: staff.UserID}, nil)
		f.repo.EXPECT().Delete(ctx, ticket).Return(nil)
		assert.NoError(t, f.uc.Delete(ctx, admin, ticket))
	})
}

func TestList_FiltraPorEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().List(ctx, entity.TicketStatusOpen, 20, 0).Return([]*entity.Ticket{{ID: ticket, Status: entity.TicketStatusOpen}}, nil)

	out, err := f.uc.List(ctx, dto.TicketListRequest{Status: "open"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, ticket, out.Items[0].ID)

	_, err = f.uc.List(ctx, dto.TicketListRequest{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
