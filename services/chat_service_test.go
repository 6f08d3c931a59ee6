package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Vijay-C-S/zenzone-sub001/models"
	"github.com/Vijay-C-S/zenzone-sub001/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCompletion struct {
	text  string
	err   error
	calls int
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt, mode string) (string, error) {
	f.calls++
	return f.text, f.err
}

func newChat(t *testing.T, client CompletionClient) (*ChatService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	crisis := NewCrisisService(db)
	require.NoError(t, crisis.Seed())
	return NewChatService(db, client, crisis), db
}

func TestChatSend_NormalMessage(t *testing.T) {
	client := &fakeCompletion{text: "That sounds like a lot to carry. Be kind to yourself today."}
	svc, db := newChat(t, client)

	reply, err := svc.Send(context.Background(), 1, "I had a stressful day at work")
	require.NoError(t, err)
	require.False(t, reply.IsCrisis)
	require.Equal(t, 1, client.calls)
	require.Contains(t, reply.Message.Response, "That sounds like a lot to carry")
	require.Contains(t, reply.Message.Response, utils.ChatDisclaimer)

	var n int64
	require.NoError(t, db.Model(&models.ChatMessage{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestChatSend_CrisisSkipsModel(t *testing.T) {
	client := &fakeCompletion{text: "should not be used"}
	svc, _ := newChat(t, client)

	reply, err := svc.Send(context.Background(), 1, "sometimes I think about suicide")
	require.NoError(t, err)
	require.True(t, reply.IsCrisis)
	require.Equal(t, 0, client.calls)
	require.Equal(t, utils.CrisisDisclaimer, reply.Message.Response)
	require.NotEmpty(t, reply.Resources)
}

func TestChatSend_UpstreamFailureFallsBack(t *testing.T) {
	client := &fakeCompletion{err: errors.New("service unavailable")}
	svc, _ := newChat(t, client)

	reply, err := svc.Send(context.Background(), 1, "feeling a bit tired lately")
	require.NoError(t, err)
	require.False(t, reply.IsCrisis)
	require.Equal(t, fallbackResponse, reply.Message.Response)
}

func TestChatSend_Validation(t *testing.T) {
	svc, _ := newChat(t, &fakeCompletion{})

	_, err := svc.Send(context.Background(), 1, "   ")
	require.ErrorIs(t, err, ErrValidation)
}

func TestChatHistory(t *testing.T) {
	client := &fakeCompletion{text: "ok"}
	svc, _ := newChat(t, client)

	_, err := svc.Send(context.Background(), 1, "first")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), 1, "second")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), 2, "someone else")
	require.NoError(t, err)

	messages, err := svc.History(1, 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)
}
