package files_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/files"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/mocks"
)

// pngHeader firma mínima que http.DetectContentType reconoce como image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

var actor = dto.Actor{UserID: "u-1", Name: "하나", Role: "staff"}

func TestNewPhoto_Politica(t *testing.T) {
	svc := files.NewService(nil, 16, "")

	tests := []struct {
		name    string
		up      *dto.FileUpload
		wantErr error
		wantCT  string
	}{
		{name: "png declarado", up: &dto.FileUpload{Name: "a.png", ContentType: "image/png", Data: []byte("xx")}, wantCT: "image/png"},
		{name: "tipo con parámetros", up: &dto.FileUpload{ContentType: "Image/JPEG; q=1", Data: []byte("xx")}, wantCT: "image/jpeg"},
		{name: "sin tipo se detecta", up: &dto.FileUpload{Data: pngHeader}, wantCT: "image/png"},
		{name: "pdf rechazado", up: &dto.FileUpload{ContentType: "application/pdf", Data: []byte("%PDF")}, wantErr: domain.ErrUnsupportedMedia},
		{name: "texto detectado rechazado", up: &dto.FileUpload{Data: []byte("hola")}, wantErr: domain.ErrUnsupportedMedia},
		{name: "vacío", up: &dto.FileUpload{ContentType: "image/png"}, wantErr: domain.ErrInvalidInput},
		{name: "nil", up: nil, wantErr: domain.ErrInvalidInput},
		{name: "demasiado grande", up: &dto.FileUpload{ContentType: "image/png", Data: make([]byte, 17)}, wantErr: domain.ErrPayloadTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := svc.NewPhoto(actor, tt.up)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCT, obj.ContentType)
			assert.Equal(t, actor.UserID, obj.CreatedBy)
			assert.NotEmpty(t, obj.ID)
			assert.Equal(t, int64(len(tt.up.Data)), obj.Size)
		})
	}
}

func TestUpload_GuardaYDevuelveURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)
	svc := files.NewService(store, 1024, "https://ops.haru.example/")
	ctx := context.Background()

	store.EXPECT().Put(ctx, gomock.Any()).Return(nil)

	out, err := svc.Upload(ctx, actor, &dto.FileUpload{Name: "room.png", ContentType: "image/png", Data: pngHeader})
	require.NoError(t, err)
	assert.Equal(t, "https://ops.haru.example/api/files/"+out.ID, out.URL)
	assert.Equal(t, out.ID, svc.ObjectID(out.URL))
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)
	svc := files.NewService(store, 1024, "")
	ctx := context.Background()
	id := "0b6f0c55-4b8c-4d52-9a63-1b2f3c4d5e6f"

	_, err := svc.Get(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.EXPECT().Get(ctx, id).Return(nil, nil)
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.EXPECT().Get(ctx, id).Return(&entity.StoredObject{ID: id, ContentType: "image/png"}, nil)
	obj, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)
}

func TestObjectID(t *testing.T) {
	svc := files.NewService(nil, 1, "")
	assert.Equal(t, "", svc.ObjectID(""))
	assert.Equal(t, "", svc.ObjectID("https://cdn.example/x.png"))
	assert.Equal(t, "", svc.ObjectID("/api/files/no-uuid"))
	assert.Equal(t, "0b6f0c55-4b8c-4d52-9a63-1b2f3c4d5e6f", svc.ObjectID("/api/files/0b6f0c55-4b8c-4d52-9a63-1b2f3c4d5e6f"))
}
