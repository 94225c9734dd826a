package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_orchestrator.go -package mocks github.com/Crimone/Scoparia/logic ICycleOrchestrator

// ICycleOrchestrator runs one full polling cycle: fetch each site's
// forum feed since the last watermark, resolve posts, compute
// recipients, and dispatch one batched notification per subscriber.
type ICycleOrchestrator interface {
	RunCycle(ctx context.Context) error
}

type cycleOrchestrator struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    IMetrics
	repo       dal.IRepo
	watermarks IWatermarkStore
	feed       wikidot.IFeedSource
	threads    IThreadResolver
	posts      IPostResolver
	recipients IRecipientResolver
	aggregator IAggregator
	dispatcher IChannelDispatcher
	blocked    IBlockedUsers
}

func NewCycleOrchestrator(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	repo dal.IRepo,
	watermarks IWatermarkStore,
	feed wikidot.IFeedSource,
	threads IThreadResolver,
	posts IPostResolver,
	recipients IRecipientResolver,
	aggregator IAggregator,
	dispatcher IChannelDispatcher,
	blocked IBlockedUsers,
) ICycleOrchestrator {
	return &cycleOrchestrator{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		repo:       repo,
		watermarks: watermarks,
		feed:       feed,
		threads:    threads,
		posts:      posts,
		recipients: recipients,
		aggregator: aggregator,
		dispatcher: dispatcher,
		blocked:    blocked,
	}
}

func (o *cycleOrchestrator) RunCycle(ctx context.Context) error {

	started := time.Now()
	o.logger.Info("Starting notification cycle")

	subs, err := o.repo.GetSubscribers()
	if err != nil {
		return fmt.Errorf("failed to load subscribers: %w", err)
	}
	o.metrics.SubscriberCount(len(subs))
	if len(subs) == 0 {
		o.logger.Warn("No subscribers; skipping cycle")
		return nil
	}

	o.aggregator.Reset()
	for _, site := range o.cfg.Sites {
		o.processSite(ctx, site, subs)
	}

	batches := o.aggregator.Batches()
	notified := 0
	for userId, stubs := range batches {
		isBlocked, err := o.blocked.IsBlocked(userId)
		if err != nil {
			o.logger.Errorf("Failed to check blocklist for user %d: %v", userId, err)
		}
		if isBlocked {
			o.logger.Infof("User %d is blocked; dropping %d post(s)", userId, len(stubs))
			continue
		}
		o.dispatcher.SendAll(ctx, subs[userId], stubs)
		notified++
	}

	elapsed := time.Since(started)
	o.metrics.CycleCompleted(elapsed.Seconds())
	o.logger.Infof("Cycle completed in %v: %d user(s) notified", elapsed.Round(time.Millisecond), notified)
	return nil
}

// processSite advances one site's watermark. The watermark only moves
// forward after a successful feed fetch, so a failed fetch gets retried
// from the same point next cycle.
func (o *cycleOrchestrator) processSite(ctx context.Context, site string, subs map[int]*dal.Subscriber) {

	since, found, err := o.watermarks.Get(site)
	if err != nil {
		o.logger.Errorf("Failed to read watermark for %s; skipping site: %v", site, err)
		return
	}
	if !found {
		// First contact: don't flood subscribers with the feed's backlog
		o.logger.Infof("First contact with %s; starting from now", site)
		if err := o.watermarks.Set(site, time.Now().UTC()); err != nil {
			o.logger.Errorf("Failed to store watermark for %s: %v", site, err)
		}
		return
	}

	stubs, asOf, err := o.feed.FetchSince(ctx, site, &since)
	if err != nil {
		o.logger.Errorf("Failed to fetch feed for %s: %v", site, err)
		o.metrics.SiteFetchFailed(site)
		return
	}
	o.metrics.SiteFetched(site, len(stubs))
	o.logger.Infof("Fetched %d new post(s) from %s", len(stubs), site)

	for _, stub := range stubs {
		if err := o.processStub(ctx, stub, subs); err != nil {
			o.logger.Warnf("Failed to process post %d in thread %d on %s: %v",
				stub.PostId, stub.ThreadId, site, err)
		}
	}

	if err := o.watermarks.Set(site, asOf); err != nil {
		o.logger.Errorf("Failed to store watermark for %s: %v", site, err)
	}
}

func (o *cycleOrchestrator) processStub(ctx context.Context, stub *wikidot.PostStub,
	subs map[int]*dal.Subscriber) error {

	thread, err := o.threads.Resolve(ctx, stub.SiteUrl, stub.ThreadId)
	if err != nil {
		return fmt.Errorf("thread resolution failed: %w", err)
	}
	post, err := o.posts.Resolve(ctx, stub.SiteUrl, stub.ThreadId, stub.PostId)
	if err != nil {
		return fmt.Errorf("post resolution failed: %w", err)
	}
	if post == nil {
		// Deleted between feed publication and now
		o.logger.Debugf("Post %d no longer exists in thread %d; skipping", stub.PostId, stub.ThreadId)
		return nil
	}

	stub.Breadcrumbs = buildBreadcrumbs(thread, post)

	recipients := o.recipients.Resolve(ctx, post, thread, subs)
	for userId := range recipients {
		o.aggregator.Add(userId, stub)
	}
	return nil
}

// buildBreadcrumbs assembles the context trail shown in notifications:
// forum category, thread, then the reply chain from root to direct
// parent.
func buildBreadcrumbs(thread *wikidot.Thread, post *wikidot.Post) []wikidot.Link {
	ub := shared.UrlBuilder{Site: thread.SiteUrl}
	crumbs := []wikidot.Link{
		{Text: thread.Category.Title, Url: ub.CategoryUrl(thread.Category.Id)},
		{Text: thread.Title, Url: ub.ThreadUrl(thread.Id)},
	}
	// Parents run from direct parent to root; breadcrumbs read the
	// other way around.
	for i := len(post.Parents) - 1; i >= 0; i-- {
		parent := post.Parents[i]
		text := parent.Title
		if text == "" {
			text = fmt.Sprintf("Re #%d", parent.Id)
		}
		crumbs = append(crumbs, wikidot.Link{Text: text, Url: ub.PostUrl(thread.Id, parent.Id)})
	}
	return crumbs
}
