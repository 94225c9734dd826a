package wikidot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	reForumThreadId = regexp.MustCompile(`WIKIDOT\.forumThreadId = (\d+);`)
	reCategoryHref  = regexp.MustCompile(`/forum/c-(\d+)/?`)
	reDigits        = regexp.MustCompile(`(\d+)`)
)

// parseThreadPage extracts thread metadata from a ForumViewThreadModule
// response document.
func parseThreadPage(doc *goquery.Document, siteUrl string) (*Thread, error) {

	bcElem := doc.Find("div.forum-breadcrumbs").First()
	if bcElem.Length() == 0 {
		return nil, fmt.Errorf("%w: breadcrumbs element", ErrNoElement)
	}
	// Thread title is the trailing text node of the breadcrumbs
	title := strings.TrimSpace(bcElem.Contents().Last().Text())
	title = strings.TrimPrefix(title, "» ")

	descElem := doc.Find("div.description-block").First()
	if descElem.Length() == 0 {
		return nil, fmt.Errorf("%w: description block element", ErrNoElement)
	}
	var sb strings.Builder
	for _, node := range descElem.Contents().Nodes {
		if node.Type != html.TextNode {
			continue
		}
		sb.WriteString(strings.TrimSpace(node.Data))
	}
	description := sb.String()

	statsElem := doc.Find("div.statistics").First()
	userElem := statsElem.Find("span.printuser").First()
	if userElem.Length() == 0 {
		return nil, fmt.Errorf("%w: thread creator element", ErrNoElement)
	}
	createdBy, err := ParseUser(userElem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse thread creator: %w", err)
	}

	odateElem := statsElem.Find("span.odate").First()
	if odateElem.Length() == 0 {
		return nil, fmt.Errorf("%w: thread odate element", ErrNoElement)
	}
	createdAt, err := ParseOdate(odateElem)
	if err != nil {
		return nil, err
	}

	postCount, err := parsePostCount(statsElem)
	if err != nil {
		return nil, err
	}

	threadId, err := parseThreadIdScript(doc)
	if err != nil {
		return nil, err
	}

	category, err := parseBreadcrumbsCategory(bcElem)
	if err != nil {
		return nil, err
	}

	return &Thread{
		SiteUrl:      siteUrl,
		Id:           threadId,
		Title:        title,
		Description:  description,
		CreatedBy:    createdBy,
		CreatedAt:    createdAt,
		PostCount:    postCount,
		Category:     category,
		PageFullname: parseRelatedPage(descElem),
	}, nil
}

// parsePostCount reads the number before the third <br> of the
// statistics block, which is how the thread view reports its post count.
func parsePostCount(statsElem *goquery.Selection) (int, error) {
	brElems := statsElem.Find("br")
	if brElems.Length() < 3 {
		return 0, fmt.Errorf("%w: statistics br elements", ErrNoElement)
	}
	node := brElems.Get(2).PrevSibling
	for node != nil && node.Type != html.TextNode {
		node = node.PrevSibling
	}
	if node == nil {
		return 0, fmt.Errorf("%w: post count text", ErrNoElement)
	}
	groups := reDigits.FindStringSubmatch(node.Data)
	if groups == nil {
		return 0, fmt.Errorf("%w: post count number", ErrNoElement)
	}
	return strconv.Atoi(groups[1])
}

func parseThreadIdScript(doc *goquery.Document) (int, error) {
	var threadId int
	var found bool
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		groups := reForumThreadId.FindStringSubmatch(s.Text())
		if groups == nil {
			return true
		}
		threadId, _ = strconv.Atoi(groups[1])
		found = true
		return false
	})
	if !found {
		return 0, fmt.Errorf("%w: forumThreadId script", ErrNoElement)
	}
	return threadId, nil
}

func parseBreadcrumbsCategory(bcElem *goquery.Selection) (Category, error) {
	catElem := bcElem.Find("a[href^='/forum/c-']").First()
	if catElem.Length() == 0 {
		return Category{}, fmt.Errorf("%w: category link in breadcrumbs", ErrNoElement)
	}
	href := catElem.AttrOr("href", "")
	groups := reCategoryHref.FindStringSubmatch(href)
	if groups == nil {
		return Category{}, fmt.Errorf("invalid category href format: %q", href)
	}
	id, _ := strconv.Atoi(groups[1])
	return Category{Id: id, Title: strings.TrimSpace(catElem.Text())}, nil
}

// parseRelatedPage finds the wiki page a per-page discussion thread
// belongs to. Returns an empty string for standalone threads.
func parseRelatedPage(descElem *goquery.Selection) string {
	var fullname string
	descElem.Find("a[href^='/']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		candidate := strings.TrimPrefix(s.AttrOr("href", ""), "/")
		if strings.HasPrefix(candidate, "forum") || strings.HasPrefix(candidate, "feed") {
			return true
		}
		fullname = candidate
		return false
	})
	return fullname
}
