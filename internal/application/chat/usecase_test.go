package chat_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/chat"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/mocks"
)

var sender = dto.Actor{UserID: "u-1", Name: "하나", Role: "staff"}

func TestSend_GuardaYDifunde(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChatRepository(ctrl)
	hub := chat.NewHub(4, nil)
	defer hub.Close()
	uc := chat.NewUseCase(repo, hub)
	ctx := context.Background()

	sub, err := uc.Subscribe("")
	require.NoError(t, err)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	out, err := uc.Send(ctx, sender, "", dto.SendMessageRequest{Text: " 3층 청소 완료 "})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultChatRoom, out.Room)
	assert.Equal(t, "3층 청소 완료", out.Text)

	got := <-sub.C
	assert.Equal(t, out.ID, got.ID)
}

func TestSend_Validaciones(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := chat.NewUseCase(mocks.NewMockChatRepository(ctrl), chat.NewHub(1, nil))
	ctx := context.Background()

	_, err := uc.Send(ctx, sender, "general", dto.SendMessageRequest{Text: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Send(ctx, sender, "general", dto.SendMessageRequest{Text: strings.Repeat("가", entity.MaxChatMessageRunes+1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Send(ctx, sender, "../admin", dto.SendMessageRequest{Text: "hi"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChatRepository(ctrl)
	uc := chat.NewUseCase(repo, chat.NewHub(1, nil))
	ctx := context.Background()
	after := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	repo.EXPECT().ListAfter(ctx, "general", time.Time{}, 50).Return(nil, nil)
	out, err := uc.History(ctx, "General", dto.ChatHistoryRequest{})
	require.NoError(t, err)
	assert.Empty(t, out)

	repo.EXPECT().ListAfter(ctx, "front", after, 200).Return([]*entity.ChatMessage{{ID: "m1", Room: "front"}}, nil)
	out, err = uc.History(ctx, "front", dto.ChatHistoryRequest{After: "2024-05-03T09:00:00Z", Limit: 1000})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m1", out[0].ID)

	_, err = uc.History(ctx, "front", dto.ChatHistoryRequest{After: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventID_EsCursorDeHistory(t *testing.T) {
	at := time.Date(2024, 5, 3, 9, 0, 0, 123456000, time.FixedZone("KST", 9*3600))
	id := chat.EventID(dto.ChatMessageResponse{ID: "m1", CreatedAt: at})
	assert.Equal(t, "2024-05-03T00:00:00.123456Z", id)
}

func TestReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChatRepository(ctrl)
	uc := chat.NewUseCase(repo, chat.NewHub(1, nil))
	ctx := context.Background()

	// sin Last-Event-ID o con uno ajeno no se consulta el repositorio
	out, err := uc.Replay(ctx, "general", "")
	require.NoError(t, err)
	assert.Nil(t, out)
	out, err = uc.Replay(ctx, "general", "m-42")
	require.NoError(t, err)
	assert.Nil(t, out)

	last := time.Date(2024, 5, 3, 9, 0, 0, 500000, time.UTC)
	repo.EXPECT().ListAfter(ctx, "general", last, 200).
		Return([]*entity.ChatMessage{{ID: "m2", Room: "general", Text: "perdido", CreatedAt: last.Add(time.Second)}}, nil)
	out, err = uc.Replay(ctx, "general", chat.EventID(dto.ChatMessageResponse{CreatedAt: last}))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "perdido", out[0].Text)
}
