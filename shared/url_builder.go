package shared

import (
	"fmt"
)

// UrlBuilder builds canonical URLs into a Wikidot site's forum.
// Site is the scheme+host root without a trailing slash, e.g.
// "https://scp-wiki-cn.wikidot.com".
type UrlBuilder struct {
	Site string
}

func (ub *UrlBuilder) SiteUrl() string {
	return ub.Site
}

func (ub *UrlBuilder) CategoryUrl(categoryId int) string {
	return fmt.Sprintf("%s/forum/c-%d", ub.Site, categoryId)
}

func (ub *UrlBuilder) ThreadUrl(threadId int) string {
	return fmt.Sprintf("%s/forum/t-%d", ub.Site, threadId)
}

func (ub *UrlBuilder) PostUrl(threadId, postId int) string {
	return fmt.Sprintf("%s/forum/t-%d#post-%d", ub.Site, threadId, postId)
}

func (ub *UrlBuilder) PageUrl(fullname string) string {
	return fmt.Sprintf("%s/%s", ub.Site, fullname)
}

func (ub *UrlBuilder) AjaxUrl() string {
	return fmt.Sprintf("%s/ajax-module-connector.php", ub.Site)
}

func (ub *UrlBuilder) FeedUrl() string {
	return fmt.Sprintf("%s/feed/forum/posts.xml", ub.Site)
}
