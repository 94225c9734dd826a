package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/logic"
	"github.com/Crimone/Scoparia/test/mocks"
	"github.com/Crimone/Scoparia/wikidot"
)

type recipientsHarness struct {
	mockLogger     *mocks.MockILogger
	mockPageAuthor *mocks.MockIPageAuthorResolver
}

func setupRecipientsTest(t *testing.T) (*gomock.Controller, *recipientsHarness, logic.IRecipientResolver) {
	ctrl := gomock.NewController(t)
	h := &recipientsHarness{
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockPageAuthor: mocks.NewMockIPageAuthorResolver(ctrl),
	}
	stubLogger(h.mockLogger)
	rr := logic.NewRecipientResolver(h.mockLogger, h.mockPageAuthor)
	return ctrl, h, rr
}

func regUser(id int) *wikidot.User {
	return &wikidot.User{Kind: wikidot.UserRegistered, Id: id, Name: fmt.Sprintf("user-%d", id)}
}

func subWithMentions(id int, level dal.MentionLevel) *dal.Subscriber {
	return &dal.Subscriber{UserId: id, Username: fmt.Sprintf("user-%d", id), MentionLevel: level}
}

func mentionSpan(userId int, withHover bool) string {
	class := "printuser"
	if withHover {
		class = "printuser avatarhover"
	}
	return fmt.Sprintf(`<span class="%s"><a href="https://www.wikidot.com/user:info/user-%d"`+
		` onclick="WIKIDOT.page.listeners.userInfo(%d); return false;">user-%d</a></span>`,
		class, userId, userId, userId)
}

func TestRecipients_ParentChainAuthors(t *testing.T) {
	ctrl, _, rr := setupRecipientsTest(t)
	defer ctrl.Finish()

	post := &wikidot.Post{
		Id:        200,
		CreatedBy: regUser(9),
		Parents: []*wikidot.Post{
			{Id: 150, CreatedBy: regUser(1)},
			{Id: 120, CreatedBy: regUser(2)},
			{Id: 110, CreatedBy: nil},
		},
	}
	thread := &wikidot.Thread{Id: 100}
	subs := map[int]*dal.Subscriber{
		1: subWithMentions(1, dal.MentionHover),
		3: subWithMentions(3, dal.MentionHover),
	}

	got := rr.Resolve(context.Background(), post, thread, subs)

	assert.Equal(t, map[int]struct{}{1: {}}, got)
}

func TestRecipients_ThreadCreator(t *testing.T) {
	ctrl, _, rr := setupRecipientsTest(t)
	defer ctrl.Finish()

	post := &wikidot.Post{Id: 200, CreatedBy: regUser(9)}
	thread := &wikidot.Thread{Id: 100, CreatedBy: regUser(5)}
	subs := map[int]*dal.Subscriber{5: subWithMentions(5, dal.MentionHover)}

	got := rr.Resolve(context.Background(), post, thread, subs)

	assert.Contains(t, got, 5)
}

func TestRecipients_SelfReplyStillNotifies(t *testing.T) {
	ctrl, _, rr := setupRecipientsTest(t)
	defer ctrl.Finish()

	// User 5 replies in their own thread; they still get notified
	post := &wikidot.Post{Id: 200, CreatedBy: regUser(5)}
	thread := &wikidot.Thread{Id: 100, CreatedBy: regUser(5)}
	subs := map[int]*dal.Subscriber{5: subWithMentions(5, dal.MentionHover)}

	got := rr.Resolve(context.Background(), post, thread, subs)

	assert.Contains(t, got, 5)
}

func TestRecipients_PageAuthor(t *testing.T) {
	ctrl, h, rr := setupRecipientsTest(t)
	defer ctrl.Finish()

	post := &wikidot.Post{Id: 200, CreatedBy: regUser(9)}
	thread := &wikidot.Thread{Id: 100, SiteUrl: siteOne, PageFullname: "scp-173"}
	subs := map[int]*dal.Subscriber{8: subWithMentions(8, dal.MentionHover)}

	h.mockPageAuthor.EXPECT().Resolve(gomock.Any(), siteOne, "scp-173").Return(8, true)

	got := rr.Resolve(context.Background(), post, thread, subs)

	assert.Contains(t, got, 8)
}

func TestRecipients_NoPageNoLookup(t *testing.T) {
	ctrl, _, rr := setupRecipientsTest(t)
	defer ctrl.Finish()

	post := &wikidot.Post{Id: 200, CreatedBy: regUser(9)}
	thread := &wikidot.Thread{Id: 100}
	subs := map[int]*dal.Subscriber{8: subWithMentions(8, dal.MentionHover)}

	got := rr.Resolve(context.Background(), post, thread, subs)

	assert.Empty(t, got)
}

func TestRecipients_Mentions(t *testing.T) {
	tests := []struct {
		name      string
		level     dal.MentionLevel
		withHover bool
		notified  bool
	}{
		{"hover level with hover class", dal.MentionHover, true, true},
		{"hover level without hover class", dal.MentionHover, false, false},
		{"all level without hover class", dal.MentionAll, false, true},
		{"disabled level with hover class", dal.MentionDisabled, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, _, rr := setupRecipientsTest(t)
			defer ctrl.Finish()

			post := &wikidot.Post{
				Id:        200,
				CreatedBy: regUser(9),
				Text:      "<p>hey " + mentionSpan(4, tc.withHover) + " look at this</p>",
			}
			thread := &wikidot.Thread{Id: 100}
			subs := map[int]*dal.Subscriber{4: subWithMentions(4, tc.level)}

			got := rr.Resolve(context.Background(), post, thread, subs)

			if tc.notified {
				assert.Contains(t, got, 4)
			} else {
				assert.NotContains(t, got, 4)
			}
		})
	}
}

func TestRecipients_MentionOfNonSubscriberIgnored(t *testing.T) {
	ctrl, _, rr := setupRecipientsTest(t)
	defer ctrl.Finish()

	post := &wikidot.Post{
		Id:        200,
		CreatedBy: regUser(9),
		Text:      "<p>" + mentionSpan(77, true) + "</p>",
	}
	thread := &wikidot.Thread{Id: 100}
	subs := map[int]*dal.Subscriber{4: subWithMentions(4, dal.MentionAll)}

	got := rr.Resolve(context.Background(), post, thread, subs)

	assert.Empty(t, got)
}
