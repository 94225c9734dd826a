package wikidot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/mmcdole/gofeed"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_feed_source.go -package mocks github.com/Crimone/Scoparia/wikidot IFeedSource

const feedTimeoutSec = 30

var (
	reThreadPath = regexp.MustCompile(`t-(\d+)`)
	reBrTag      = regexp.MustCompile(`<br\s*/?>`)
)

// IFeedSource fetches a site's forum activity feed. FetchSince returns
// the stubs strictly newer than since, together with the feed's as-of
// time (its lastBuildDate, or the fetch time when the feed carries no
// timestamp). A nil since returns all entries the feed currently holds.
type IFeedSource interface {
	FetchSince(ctx context.Context, siteUrl string, since *time.Time) ([]*PostStub, time.Time, error)
}

type feedSource struct {
	logger     shared.ILogger
	userAgent  shared.IUserAgent
	httpClient *http.Client
	parser     *gofeed.Parser
}

func NewFeedSource(logger shared.ILogger, userAgent shared.IUserAgent) IFeedSource {
	return &feedSource{
		logger:     logger,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: feedTimeoutSec * time.Second},
		parser:     gofeed.NewParser(),
	}
}

func (fs *feedSource) FetchSince(ctx context.Context, siteUrl string, since *time.Time) ([]*PostStub, time.Time, error) {

	ub := shared.UrlBuilder{Site: siteUrl}
	feedUrl := ub.FeedUrl()
	fs.logger.Infof("Fetching forum feed from %s", feedUrl)

	var feed *gofeed.Feed
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedUrl, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			fs.userAgent.AddUserAgent(req)
			resp, err := fs.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return fmt.Errorf("feed returned HTTP status %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("feed returned HTTP status %d", resp.StatusCode))
			}
			if feed, err = fs.parser.Parse(resp.Body); err != nil {
				return retry.Unrecoverable(fmt.Errorf("malformed feed: %w", err))
			}
			return nil
		},
		retry.Attempts(requestAttempts),
		retry.Delay(time.Second),
		retry.MaxDelay(time.Minute),
		retry.MaxJitter(2*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			fs.logger.Debugf("Retrying feed fetch from %s after error (attempt %d): %v", feedUrl, n, err)
		}),
	)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to fetch feed from %s: %w", feedUrl, err)
	}

	asOf := time.Now().UTC()
	if feed.UpdatedParsed != nil {
		asOf = feed.UpdatedParsed.UTC()
	} else {
		fs.logger.Debugf("No lastBuildDate in feed %s, using current time", feedUrl)
	}

	parsedFeedUrl, err := url.Parse(feedUrl)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to parse feed URL %s: %v", feedUrl, err)
	}
	feedScheme := parsedFeedUrl.Scheme

	var stubs []*PostStub
	for _, item := range feed.Items {
		stub, err := fs.parseItem(item, feedScheme, since)
		if err != nil {
			fs.logger.Warnf("Skipping feed entry %q: %v", item.Link, err)
			continue
		}
		if stub != nil {
			stubs = append(stubs, stub)
		}
	}

	fs.logger.Infof("Fetched %d posts from feed %s", len(stubs), feedUrl)
	return stubs, asOf, nil
}

// parseItem turns one feed entry into a PostStub. Returns nil without
// error for entries at or before the since cutoff.
func (fs *feedSource) parseItem(item *gofeed.Item, feedScheme string, since *time.Time) (*PostStub, error) {

	if item.PublishedParsed == nil {
		return nil, fmt.Errorf("entry has no publish date")
	}
	publishedAt := item.PublishedParsed.UTC()
	if since != nil && !publishedAt.After(*since) {
		return nil, nil
	}

	parsedLink, err := url.Parse(item.Link)
	if err != nil {
		return nil, fmt.Errorf("invalid entry link: %v", err)
	}
	// Wikidot emits http links even on https sites
	parsedLink.Scheme = feedScheme
	link := parsedLink.String()

	if parsedLink.Fragment == "" {
		return nil, fmt.Errorf("entry link has no post fragment")
	}
	postId, err := strconv.Atoi(strings.TrimPrefix(parsedLink.Fragment, "post-"))
	if err != nil {
		return nil, fmt.Errorf("invalid post fragment %q", parsedLink.Fragment)
	}
	groups := reThreadPath.FindStringSubmatch(parsedLink.Path)
	if groups == nil {
		return nil, fmt.Errorf("entry link has no thread id")
	}
	threadId, _ := strconv.Atoi(groups[1])

	authorName := ""
	if wdExt, ok := item.Extensions["wikidot"]; ok {
		if values, ok := wdExt["authorName"]; ok && len(values) > 0 {
			authorName = values[0].Value
		}
	}

	content := strings.TrimSpace(item.Content)
	if content == "" {
		content = strings.TrimSpace(item.Description)
	}
	if feedScheme == "https" {
		content = strings.ReplaceAll(content, "http://"+parsedLink.Host, "https://"+parsedLink.Host)
	}
	// The last two lines of a feed entry are category and thread links;
	// drop everything from the second-to-last <br> onwards
	brMatches := reBrTag.FindAllStringIndex(content, -1)
	if len(brMatches) >= 2 {
		content = content[:brMatches[len(brMatches)-2][0]]
	}

	return &PostStub{
		PostId:      postId,
		ThreadId:    threadId,
		Title:       item.Title,
		Link:        link,
		AuthorName:  authorName,
		Content:     content,
		PublishedAt: publishedAt,
		SiteUrl:     feedScheme + "://" + parsedLink.Host,
	}, nil
}
