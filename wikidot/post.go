package wikidot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parsePostElement parses one div.post element into a Post. The parent
// chain is not filled in here; see parseParentChain.
func parsePostElement(postElem *goquery.Selection, threadId int, siteUrl string) (*Post, error) {

	idAttr, ok := postElem.Attr("id")
	if !ok {
		return nil, fmt.Errorf("%w: post id attribute", ErrNoElement)
	}
	postId, err := strconv.Atoi(strings.TrimPrefix(idAttr, "post-"))
	if err != nil {
		return nil, fmt.Errorf("invalid post id format %q", idAttr)
	}

	title := strings.TrimSpace(postElem.Find("div.title").First().Text())

	text := ""
	contentElem := postElem.Find("div.content").First()
	if contentElem.Length() != 0 {
		if text, err = contentElem.Html(); err != nil {
			return nil, fmt.Errorf("failed to extract post %d content: %v", postId, err)
		}
	}

	userElem := postElem.Find("div.info span.printuser").First()
	if userElem.Length() == 0 {
		return nil, fmt.Errorf("%w: post %d author element", ErrNoElement, postId)
	}
	createdBy, err := ParseUser(userElem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse post %d author: %w", postId, err)
	}

	odateElem := postElem.Find("div.info span.odate").First()
	if odateElem.Length() == 0 {
		return nil, fmt.Errorf("%w: post %d odate element", ErrNoElement, postId)
	}
	createdAt, err := ParseOdate(odateElem)
	if err != nil {
		return nil, err
	}

	res := &Post{
		SiteUrl:   siteUrl,
		ThreadId:  threadId,
		Id:        postId,
		Title:     title,
		Text:      text,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}

	// Edit info is only present on edited posts
	changesElem := postElem.Find("div.changes").First()
	if changesElem.Length() != 0 {
		editedUserElem := changesElem.Find("span.printuser").First()
		editedOdateElem := changesElem.Find("span.odate").First()
		if editedUserElem.Length() != 0 && editedOdateElem.Length() != 0 {
			if editedBy, err := ParseUser(editedUserElem); err == nil {
				if editedAt, err := ParseOdate(editedOdateElem); err == nil {
					res.EditedBy = editedBy
					res.EditedAt = editedAt
				}
			}
		}
	}

	return res, nil
}

// parseParentChain walks up the nested div.post-container ancestors of a
// post and parses each enclosing post, ordered from direct parent to root.
// The chain is truncated at the first ancestor that cannot be parsed; a
// partial chain is not an error.
func parseParentChain(containerElem *goquery.Selection, threadId int, siteUrl string) []*Post {
	var parents []*Post
	ancestors := containerElem.ParentsFiltered("div.post-container")
	for i := 0; i < ancestors.Length(); i++ {
		parentPostElem := ancestors.Eq(i).ChildrenFiltered("div.post").First()
		if parentPostElem.Length() == 0 {
			break
		}
		parent, err := parsePostElement(parentPostElem, threadId, siteUrl)
		if err != nil {
			break
		}
		parents = append(parents, parent)
	}
	return parents
}

// findPost locates a specific post in a ForumViewThreadPostsModule
// response. Returns nil if the post is not present in the document.
func findPost(doc *goquery.Document, threadId, postId int, siteUrl string) (*Post, error) {
	postElem := doc.Find(fmt.Sprintf("div.post#post-%d", postId)).First()
	if postElem.Length() == 0 {
		return nil, nil
	}
	post, err := parsePostElement(postElem, threadId, siteUrl)
	if err != nil {
		return nil, err
	}
	post.Parents = parseParentChain(postElem.Parent(), threadId, siteUrl)
	return post, nil
}
