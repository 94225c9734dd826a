package test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/logic"
	"github.com/Crimone/Scoparia/test/mocks"
	"github.com/Crimone/Scoparia/wikidot"
)

type dispatcherHarness struct {
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	mockTexts   *mocks.MockITexts
	mockClient  *mocks.MockIClient
	mockEmailer *mocks.MockIEmailSender
	mockPusher  *mocks.MockIPushSender
}

func setupDispatcherTest(t *testing.T) (*gomock.Controller, *dispatcherHarness, logic.IChannelDispatcher) {

	ctrl := gomock.NewController(t)
	h := &dispatcherHarness{
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockTexts:   mocks.NewMockITexts(ctrl),
		mockClient:  mocks.NewMockIClient(ctrl),
		mockEmailer: mocks.NewMockIEmailSender(ctrl),
		mockPusher:  mocks.NewMockIPushSender(ctrl),
	}
	stubLogger(h.mockLogger)
	stubTexts(h.mockTexts)

	disp, err := logic.NewChannelDispatcher(h.mockLogger, h.mockMetrics, h.mockTexts,
		h.mockClient, h.mockEmailer, h.mockPusher)
	assert.NoError(t, err)

	return ctrl, h, disp
}

func dispatchSub() *dal.Subscriber {
	return &dal.Subscriber{
		UserId:      42,
		Username:    "alice",
		Email:       "alice@example.com",
		PushUrls:    []string{"https://push.example.com/hook"},
		Timezone:    "UTC",
		EnablePM:    true,
		EnableEmail: true,
		EnablePush:  true,
	}
}

func dispatchStubs() []*wikidot.PostStub {
	return []*wikidot.PostStub{{
		PostId:      200,
		ThreadId:    100,
		Title:       "Re: hello",
		Link:        siteOne + "/forum/t-100#post-200",
		AuthorName:  "bob",
		Content:     "<p>content</p>",
		PublishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		SiteUrl:     siteOne,
	}}
}

func TestDispatch_AllChannels(t *testing.T) {
	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	sub := dispatchSub()
	stubs := dispatchStubs()

	h.mockClient.EXPECT().SendPrivateMessage(gomock.Any(), 42, gomock.Any(), gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().NotificationSent("pm")
	h.mockEmailer.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().NotificationSent("email")
	h.mockPusher.EXPECT().FormatFor("https://push.example.com/hook").Return("markdown")
	h.mockPusher.EXPECT().Send(gomock.Any(), "https://push.example.com/hook", gomock.Any(), gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().NotificationSent("push")

	disp.SendAll(context.Background(), sub, stubs)
}

func TestDispatch_PmFailureDoesNotBlockOthers(t *testing.T) {
	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	sub := dispatchSub()
	stubs := dispatchStubs()

	h.mockClient.EXPECT().SendPrivateMessage(gomock.Any(), 42, gomock.Any(), gomock.Any()).
		Return(errors.New("no permission"))
	h.mockMetrics.EXPECT().NotificationFailed("pm")
	h.mockEmailer.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().NotificationSent("email")
	h.mockPusher.EXPECT().FormatFor(gomock.Any()).Return("text")
	h.mockPusher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().NotificationSent("push")

	disp.SendAll(context.Background(), sub, stubs)
}

func TestDispatch_DisabledChannelsSkipped(t *testing.T) {
	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	sub := dispatchSub()
	sub.EnablePM = false
	sub.EnablePush = false
	stubs := dispatchStubs()

	h.mockEmailer.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().NotificationSent("email")

	disp.SendAll(context.Background(), sub, stubs)
}

func TestDispatch_NoEmailAddressSkipsEmail(t *testing.T) {
	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	sub := dispatchSub()
	sub.Email = ""
	sub.EnablePM = false
	sub.EnablePush = false

	disp.SendAll(context.Background(), sub, dispatchStubs())
	_ = h
}

func TestDispatch_EmptyBatchNoSends(t *testing.T) {
	ctrl, _, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	disp.SendAll(context.Background(), dispatchSub(), nil)
}
