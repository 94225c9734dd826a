package logic

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_thread_resolver.go -package mocks github.com/Crimone/Scoparia/logic IThreadResolver

// IThreadResolver resolves thread metadata, memoizing successful
// lookups. Many stubs of one cycle typically land in the same few
// threads, so the cache collapses most backend calls. Failed lookups are
// not cached; they get retried on next use.
type IThreadResolver interface {
	Resolve(ctx context.Context, siteUrl string, threadId int) (*wikidot.Thread, error)
}

type threadResolver struct {
	logger  shared.ILogger
	metrics IMetrics
	client  wikidot.IClient
	group   singleflight.Group
	mu      sync.RWMutex
	cache   map[string]*wikidot.Thread
}

func NewThreadResolver(logger shared.ILogger, metrics IMetrics, client wikidot.IClient) IThreadResolver {
	return &threadResolver{
		logger:  logger,
		metrics: metrics,
		client:  client,
		cache:   map[string]*wikidot.Thread{},
	}
}

func (tr *threadResolver) Resolve(ctx context.Context, siteUrl string, threadId int) (*wikidot.Thread, error) {

	key := fmt.Sprintf("%s|%d", siteUrl, threadId)

	tr.mu.RLock()
	cached, ok := tr.cache[key]
	tr.mu.RUnlock()
	if ok {
		tr.metrics.ThreadResolved("hit")
		return cached, nil
	}

	val, err, _ := tr.group.Do(key, func() (interface{}, error) {
		thread, err := tr.client.FetchThread(ctx, siteUrl, threadId)
		if err != nil {
			return nil, err
		}
		tr.mu.Lock()
		tr.cache[key] = thread
		tr.mu.Unlock()
		tr.logger.Debugf("Resolved thread %d on %s: %s", threadId, siteUrl, thread.Title)
		return thread, nil
	})
	if err != nil {
		return nil, err
	}
	tr.metrics.ThreadResolved("miss")
	return val.(*wikidot.Thread), nil
}
