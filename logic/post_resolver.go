package logic

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_post_resolver.go -package mocks github.com/Crimone/Scoparia/logic IPostResolver

// IPostResolver resolves a single post with its parent chain. A nil
// post with nil error means the post is absent from its thread, which
// happens when it was deleted between feed publication and resolution.
// Successful lookups are memoized; absent posts and failures are not.
type IPostResolver interface {
	Resolve(ctx context.Context, siteUrl string, threadId, postId int) (*wikidot.Post, error)
}

type postResolver struct {
	logger  shared.ILogger
	metrics IMetrics
	client  wikidot.IClient
	group   singleflight.Group
	mu      sync.RWMutex
	cache   map[string]*wikidot.Post
}

func NewPostResolver(logger shared.ILogger, metrics IMetrics, client wikidot.IClient) IPostResolver {
	return &postResolver{
		logger:  logger,
		metrics: metrics,
		client:  client,
		cache:   map[string]*wikidot.Post{},
	}
}

func (pr *postResolver) Resolve(ctx context.Context, siteUrl string, threadId, postId int) (*wikidot.Post, error) {

	key := fmt.Sprintf("%s|%d|%d", siteUrl, threadId, postId)

	pr.mu.RLock()
	cached, ok := pr.cache[key]
	pr.mu.RUnlock()
	if ok {
		pr.metrics.PostResolved("hit")
		return cached, nil
	}

	val, err, _ := pr.group.Do(key, func() (interface{}, error) {
		post, err := pr.client.FetchPost(ctx, siteUrl, threadId, postId)
		if err != nil {
			return nil, err
		}
		if post != nil {
			pr.mu.Lock()
			pr.cache[key] = post
			pr.mu.Unlock()
			pr.logger.Debugf("Resolved post %d in thread %d with %d parents", postId, threadId, len(post.Parents))
		}
		return post, nil
	})
	if err != nil {
		return nil, err
	}
	pr.metrics.PostResolved("miss")
	if val == nil {
		return nil, nil
	}
	return val.(*wikidot.Post), nil
}
