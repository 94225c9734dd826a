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
	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/test/mocks"
	"github.com/Crimone/Scoparia/wikidot"
)

const siteOne = "https://scp-wiki.wikidot.com"

type cycleHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockMetrics    *mocks.MockIMetrics
	mockRepo       *mocks.MockIRepo
	mockWatermarks *mocks.MockIWatermarkStore
	mockFeed       *mocks.MockIFeedSource
	mockThreads    *mocks.MockIThreadResolver
	mockPosts      *mocks.MockIPostResolver
	mockRecipients *mocks.MockIRecipientResolver
	mockAggregator *mocks.MockIAggregator
	mockDispatcher *mocks.MockIChannelDispatcher
	mockBlocked    *mocks.MockIBlockedUsers
}

func setupCycleTest(t *testing.T) (*gomock.Controller, *cycleHarness, logic.ICycleOrchestrator) {

	ctrl := gomock.NewController(t)

	h := &cycleHarness{
		cfg: &shared.Config{
			Sites: []string{siteOne},
		},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		mockRepo:       mocks.NewMockIRepo(ctrl),
		mockWatermarks: mocks.NewMockIWatermarkStore(ctrl),
		mockFeed:       mocks.NewMockIFeedSource(ctrl),
		mockThreads:    mocks.NewMockIThreadResolver(ctrl),
		mockPosts:      mocks.NewMockIPostResolver(ctrl),
		mockRecipients: mocks.NewMockIRecipientResolver(ctrl),
		mockAggregator: mocks.NewMockIAggregator(ctrl),
		mockDispatcher: mocks.NewMockIChannelDispatcher(ctrl),
		mockBlocked:    mocks.NewMockIBlockedUsers(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	orch := logic.NewCycleOrchestrator(h.cfg, h.mockLogger, h.mockMetrics, h.mockRepo,
		h.mockWatermarks, h.mockFeed, h.mockThreads, h.mockPosts, h.mockRecipients,
		h.mockAggregator, h.mockDispatcher, h.mockBlocked)

	return ctrl, h, orch
}

func makeSubs(userIds ...int) map[int]*dal.Subscriber {
	res := map[int]*dal.Subscriber{}
	for _, id := range userIds {
		res[id] = &dal.Subscriber{UserId: id, Username: "user", Timezone: "UTC", EnablePM: true}
	}
	return res
}

func makeStub(postId, threadId int) *wikidot.PostStub {
	return &wikidot.PostStub{
		PostId:      postId,
		ThreadId:    threadId,
		Title:       "Re: something",
		Link:        siteOne + "/forum/t-100#post-200",
		AuthorName:  "poster",
		Content:     "<p>hello</p>",
		PublishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		SiteUrl:     siteOne,
	}
}

func TestCycle_SubscriberLoadFails(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetSubscribers().Return(nil, errors.New("db broken"))

	err := orch.RunCycle(context.Background())

	assert.Error(t, err)
}

func TestCycle_EmptyRosterSkips(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetSubscribers().Return(map[int]*dal.Subscriber{}, nil)
	// No watermark reads, no feed fetches

	err := orch.RunCycle(context.Background())

	assert.NoError(t, err)
}

func TestCycle_FirstContactStoresWatermarkWithoutFetching(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetSubscribers().Return(makeSubs(1), nil)
	h.mockAggregator.EXPECT().Reset()
	h.mockWatermarks.EXPECT().Get(siteOne).Return(time.Time{}, false, nil)
	h.mockWatermarks.EXPECT().Set(siteOne, gomock.Any()).Return(nil)
	h.mockAggregator.EXPECT().Batches().Return(map[int][]*wikidot.PostStub{})

	err := orch.RunCycle(context.Background())

	assert.NoError(t, err)
}

func TestCycle_FetchFailureLeavesWatermark(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	h.mockRepo.EXPECT().GetSubscribers().Return(makeSubs(1), nil)
	h.mockAggregator.EXPECT().Reset()
	h.mockWatermarks.EXPECT().Get(siteOne).Return(since, true, nil)
	h.mockFeed.EXPECT().FetchSince(gomock.Any(), siteOne, gomock.Any()).
		Return(nil, time.Time{}, errors.New("503"))
	h.mockMetrics.EXPECT().SiteFetchFailed(siteOne)
	// Watermark must not move
	h.mockAggregator.EXPECT().Batches().Return(map[int][]*wikidot.PostStub{})

	err := orch.RunCycle(context.Background())

	assert.NoError(t, err)
}

func TestCycle_NoNewPostsStillAdvancesWatermark(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	h.mockRepo.EXPECT().GetSubscribers().Return(makeSubs(1), nil)
	h.mockAggregator.EXPECT().Reset()
	h.mockWatermarks.EXPECT().Get(siteOne).Return(since, true, nil)
	h.mockFeed.EXPECT().FetchSince(gomock.Any(), siteOne, gomock.Any()).
		Return([]*wikidot.PostStub{}, asOf, nil)
	h.mockWatermarks.EXPECT().Set(siteOne, asOf).Return(nil)
	h.mockAggregator.EXPECT().Batches().Return(map[int][]*wikidot.PostStub{})

	err := orch.RunCycle(context.Background())

	assert.NoError(t, err)
}

func TestCycle_PostRoutedToRecipients(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	subs := makeSubs(1, 2)
	stub := makeStub(200, 100)
	thread := &wikidot.Thread{
		SiteUrl:  siteOne,
		Id:       100,
		Title:    "A thread",
		Category: wikidot.Category{Id: 50, Title: "Discussion"},
	}
	post := &wikidot.Post{SiteUrl: siteOne, ThreadId: 100, Id: 200}

	h.mockRepo.EXPECT().GetSubscribers().Return(subs, nil)
	h.mockAggregator.EXPECT().Reset()
	h.mockWatermarks.EXPECT().Get(siteOne).Return(since, true, nil)
	h.mockFeed.EXPECT().FetchSince(gomock.Any(), siteOne, gomock.Any()).
		Return([]*wikidot.PostStub{stub}, asOf, nil)
	h.mockThreads.EXPECT().Resolve(gomock.Any(), siteOne, 100).Return(thread, nil)
	h.mockPosts.EXPECT().Resolve(gomock.Any(), siteOne, 100, 200).Return(post, nil)
	h.mockRecipients.EXPECT().Resolve(gomock.Any(), post, thread, subs).
		Return(map[int]struct{}{1: {}})
	h.mockAggregator.EXPECT().Add(1, stub)
	h.mockWatermarks.EXPECT().Set(siteOne, asOf).Return(nil)
	h.mockAggregator.EXPECT().Batches().
		Return(map[int][]*wikidot.PostStub{1: {stub}})
	h.mockBlocked.EXPECT().IsBlocked(1).Return(false, nil)
	h.mockDispatcher.EXPECT().SendAll(gomock.Any(), subs[1], checkStubSlice(stub))

	err := orch.RunCycle(context.Background())

	assert.NoError(t, err)
	assert.Len(t, stub.Breadcrumbs, 2)
	assert.Equal(t, "Discussion", stub.Breadcrumbs[0].Text)
	assert.Equal(t, siteOne+"/forum/c-50", stub.Breadcrumbs[0].Url)
	assert.Equal(t, "A thread", stub.Breadcrumbs[1].Text)
}

func TestCycle_DeletedPostSkipped(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	stub := makeStub(200, 100)
	thread := &wikidot.Thread{SiteUrl: siteOne, Id: 100}

	h.mockRepo.EXPECT().GetSubscribers().Return(makeSubs(1), nil)
	h.mockAggregator.EXPECT().Reset()
	h.mockWatermarks.EXPECT().Get(siteOne).Return(since, true, nil)
	h.mockFeed.EXPECT().FetchSince(gomock.Any(), siteOne, gomock.Any()).
		Return([]*wikidot.PostStub{stub}, asOf, nil)
	h.mockThreads.EXPECT().Resolve(gomock.Any(), siteOne, 100).Return(thread, nil)
	h.mockPosts.EXPECT().Resolve(gomock.Any(), siteOne, 100, 200).Return(nil, nil)
	h.mockWatermarks.EXPECT().Set(siteOne, asOf).Return(nil)
	h.mockAggregator.EXPECT().Batches().Return(map[int][]*wikidot.PostStub{})

	err := orch.RunCycle(context.Background())

	assert.NoError(t, err)
}

func TestCycle_BlockedUserDropped(t *testing.T) {
	ctrl, h, orch := setupCycleTest(t)
	defer ctrl.Finish()

	subs := makeSubs(7)
	stub := makeStub(200, 100)

	h.mockRepo.EXPECT().GetSubscribers().Return(subs, nil)
	h.mockAggregator.EXPECT().Reset()
	h.mockWatermarks.EXPECT().Get(siteOne).Return(time.Time{}, false, nil)
	h.mockWatermarks.EXPECT().Set(siteOne, gomock.Any()).Return(nil)
	h.mockAggregator.EXPECT().Batches().
		Return(map[int][]*wikidot.PostStub{7: {stub}})
	h.mockBlocked.EXPECT().IsBlocked(7).Return(true, nil)
	// No SendAll for blocked user

	err := orch.RunCycle(context.Background())

	assert.NoError(t, err)
}

func checkStubSlice(items ...*wikidot.PostStub) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		slice, ok := x.([]*wikidot.PostStub)
		if !ok || len(slice) != len(items) {
			return false
		}
		for i := range slice {
			if slice[i] != items[i] {
				return false
			}
		}
		return true
	})
}
