package test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/logic"
	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/test/mocks"
	"github.com/Crimone/Scoparia/wikidot"
)

const configWikiUrl = "https://scoparia-config.wikidot.com"
const configCategory = "user"

type syncHarness struct {
	cfg        *shared.Config
	mockLogger *mocks.MockILogger
	mockRepo   *mocks.MockIRepo
	mockClient *mocks.MockIClient
}

func setupSyncTest(t *testing.T) (*gomock.Controller, *syncHarness, logic.ISyncService) {

	ctrl := gomock.NewController(t)
	h := &syncHarness{
		cfg: &shared.Config{
			ConfigWiki: shared.ConfigWiki{Url: configWikiUrl, Category: configCategory},
		},
		mockLogger: mocks.NewMockILogger(ctrl),
		mockRepo:   mocks.NewMockIRepo(ctrl),
		mockClient: mocks.NewMockIClient(ctrl),
	}
	stubLogger(h.mockLogger)

	svc := logic.NewSyncService(h.cfg, h.mockLogger, h.mockRepo, h.mockClient)
	return ctrl, h, svc
}

func TestSyncContacts_UpsertsEachContact(t *testing.T) {
	ctrl, h, svc := setupSyncTest(t)
	defer ctrl.Finish()

	h.mockClient.EXPECT().GetContacts(gomock.Any()).Return([]*wikidot.Contact{
		{UserId: 1, Username: "alice", Email: "alice@example.com"},
		{UserId: 2, Username: "bob", Email: "bob@example.com"},
	}, nil)
	h.mockRepo.EXPECT().UpsertContact(1, "alice", "alice@example.com").Return(nil)
	h.mockRepo.EXPECT().UpsertContact(2, "bob", "bob@example.com").Return(nil)

	err := svc.SyncContacts(context.Background())

	assert.NoError(t, err)
}

func TestSyncContacts_FetchFailurePropagates(t *testing.T) {
	ctrl, h, svc := setupSyncTest(t)
	defer ctrl.Finish()

	h.mockClient.EXPECT().GetContacts(gomock.Any()).Return(nil, errors.New("not logged in"))

	err := svc.SyncContacts(context.Background())

	assert.Error(t, err)
}

func TestSyncConfigs_ValidPage(t *testing.T) {
	ctrl, h, svc := setupSyncTest(t)
	defer ctrl.Finish()

	page := &wikidot.ConfigPage{
		Name:      "42",
		CreatedBy: &wikidot.User{Kind: wikidot.UserRegistered, Id: 42, Name: "alice"},
		Content: "timezone: Asia/Shanghai\n" +
			"mention_level: all\n" +
			"enable_wikidot_pm: \"1\"\n" +
			"enable_email: \"1\"\n" +
			"enable_push: \"0\"\n",
		PushUrls: []string{"https://push.example.com/hook"},
		Email:    "alice@example.com",
	}
	h.mockClient.EXPECT().ListConfigPages(gomock.Any(), configWikiUrl, configCategory).
		Return([]*wikidot.ConfigPage{page}, nil)
	h.mockRepo.EXPECT().UpsertSubscriberConfig(gomock.Cond(func(sub *dal.Subscriber) bool {
		return sub.UserId == 42 &&
			sub.Username == "alice" &&
			sub.Timezone == "Asia/Shanghai" &&
			sub.MentionLevel == dal.MentionAll &&
			sub.Email == "alice@example.com" &&
			sub.EnablePM && sub.EnableEmail && !sub.EnablePush
	})).Return(nil)

	err := svc.SyncUserConfigs(context.Background())

	assert.NoError(t, err)
}

func TestSyncConfigs_ImpostorPageDeleted(t *testing.T) {
	ctrl, h, svc := setupSyncTest(t)
	defer ctrl.Finish()

	// Page claims to be user 42's but was created by user 7
	page := &wikidot.ConfigPage{
		Name:      "42",
		CreatedBy: &wikidot.User{Kind: wikidot.UserRegistered, Id: 7, Name: "mallory"},
		Content:   "timezone: UTC\n",
	}
	h.mockClient.EXPECT().ListConfigPages(gomock.Any(), configWikiUrl, configCategory).
		Return([]*wikidot.ConfigPage{page}, nil)
	h.mockClient.EXPECT().DeletePage(gomock.Any(), configWikiUrl, "user:42").Return(nil)
	// No upsert

	err := svc.SyncUserConfigs(context.Background())

	assert.NoError(t, err)
}

func TestSyncConfigs_NonNumericNameSkipped(t *testing.T) {
	ctrl, h, svc := setupSyncTest(t)
	defer ctrl.Finish()

	page := &wikidot.ConfigPage{
		Name:      "readme",
		CreatedBy: &wikidot.User{Kind: wikidot.UserRegistered, Id: 7, Name: "admin"},
	}
	h.mockClient.EXPECT().ListConfigPages(gomock.Any(), configWikiUrl, configCategory).
		Return([]*wikidot.ConfigPage{page}, nil)

	err := svc.SyncUserConfigs(context.Background())

	assert.NoError(t, err)
}

func TestSyncConfigs_InvalidYamlGetsDefaults(t *testing.T) {
	ctrl, h, svc := setupSyncTest(t)
	defer ctrl.Finish()

	page := &wikidot.ConfigPage{
		Name:      "42",
		CreatedBy: &wikidot.User{Kind: wikidot.UserRegistered, Id: 42, Name: "alice"},
		Content:   "{{{{not yaml",
	}
	h.mockClient.EXPECT().ListConfigPages(gomock.Any(), configWikiUrl, configCategory).
		Return([]*wikidot.ConfigPage{page}, nil)
	h.mockRepo.EXPECT().UpsertSubscriberConfig(gomock.Cond(func(sub *dal.Subscriber) bool {
		return sub.UserId == 42 &&
			sub.Timezone == "UTC" &&
			sub.MentionLevel == dal.MentionHover &&
			!sub.EnablePM && !sub.EnableEmail && !sub.EnablePush
	})).Return(nil)

	err := svc.SyncUserConfigs(context.Background())

	assert.NoError(t, err)
}
