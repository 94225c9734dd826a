package logic

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_recipients.go -package mocks github.com/Crimone/Scoparia/logic IRecipientResolver

// IRecipientResolver decides which subscribers a post concerns. A
// subscriber qualifies when the post replies to one of their posts, sits
// in a thread they started, discusses a wiki page they authored, or
// @mentions them (subject to their mention level). The post's own author
// is not excluded: someone replying to themselves still triggers their
// own subscriptions.
type IRecipientResolver interface {
	Resolve(ctx context.Context, post *wikidot.Post, thread *wikidot.Thread,
		subs map[int]*dal.Subscriber) map[int]struct{}
}

type recipientResolver struct {
	logger     shared.ILogger
	pageAuthor IPageAuthorResolver
}

func NewRecipientResolver(logger shared.ILogger, pageAuthor IPageAuthorResolver) IRecipientResolver {
	return &recipientResolver{
		logger:     logger,
		pageAuthor: pageAuthor,
	}
}

func (rr *recipientResolver) Resolve(ctx context.Context, post *wikidot.Post, thread *wikidot.Thread,
	subs map[int]*dal.Subscriber) map[int]struct{} {

	recipients := map[int]struct{}{}

	// Replies: every ancestor author along the parent chain
	for _, parent := range post.Parents {
		if parent.CreatedBy == nil || parent.CreatedBy.Id == 0 {
			continue
		}
		if sub, ok := subs[parent.CreatedBy.Id]; ok {
			recipients[sub.UserId] = struct{}{}
			rr.logger.Debugf("Post %d replies to %s's post", post.Id, sub.Username)
		}
	}

	// Thread creator
	if thread.CreatedBy != nil && thread.CreatedBy.Id != 0 {
		if sub, ok := subs[thread.CreatedBy.Id]; ok {
			recipients[sub.UserId] = struct{}{}
			rr.logger.Debugf("Post %d in %s's thread", post.Id, sub.Username)
		}
	}

	// Author of the wiki page this thread discusses, if any
	if thread.PageFullname != "" {
		if authorId, found := rr.pageAuthor.Resolve(ctx, thread.SiteUrl, thread.PageFullname); found {
			if sub, ok := subs[authorId]; ok {
				recipients[sub.UserId] = struct{}{}
				rr.logger.Debugf("Post %d in thread for page created by %s", post.Id, sub.Username)
			}
		}
	}

	rr.checkMentions(post, subs, recipients)
	return recipients
}

// checkMentions scans the post body for rendered user references and
// applies each mentioned subscriber's mention level preference.
func (rr *recipientResolver) checkMentions(post *wikidot.Post, subs map[int]*dal.Subscriber,
	recipients map[int]struct{}) {

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(post.Text))
	if err != nil {
		rr.logger.Debugf("Failed to parse post %d body for mentions: %v", post.Id, err)
		return
	}

	doc.Find("span.printuser").Each(func(_ int, s *goquery.Selection) {
		mentioned, err := wikidot.ParseUser(s)
		if err != nil || mentioned.Id == 0 {
			return
		}
		sub, ok := subs[mentioned.Id]
		if !ok {
			return
		}
		if _, ok := recipients[sub.UserId]; ok {
			return
		}
		if sub.MentionLevel == dal.MentionDisabled {
			rr.logger.Debugf("User %s has disabled mention notifications", sub.Username)
			return
		}
		hasAvatarHover := s.HasClass("avatarhover")
		if sub.MentionLevel == dal.MentionHover && !hasAvatarHover {
			rr.logger.Debugf("User %s requires avatarhover, but mention doesn't have it", sub.Username)
			return
		}
		recipients[sub.UserId] = struct{}{}
		rr.logger.Debugf("Post %d mentions %s", post.Id, sub.Username)
	})
}
