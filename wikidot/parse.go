package wikidot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userInfoUrlPrefix = "https://www.wikidot.com/user:info/"

var reUserInfoOnclick = regexp.MustCompile(`userInfo\((\d+)\)`)

// ParseUser parses a span.printuser element into a User value.
// Wikidot renders five different shapes for these spans; they are told
// apart by classes and content, not by any explicit marker.
func ParseUser(sel *goquery.Selection) (*User, error) {

	if sel.HasClass("deleted") {
		id, _ := strconv.Atoi(sel.AttrOr("data-id", "0"))
		return &User{
			Kind:     UserDeleted,
			Id:       id,
			Name:     "account deleted",
			UnixName: "account_deleted",
		}, nil
	}

	if sel.HasClass("anonymous") {
		res := &User{
			Kind:     UserAnonymous,
			Name:     "Anonymous",
			UnixName: "anonymous",
		}
		ipElem := sel.Find("span.ip").First()
		if ipElem.Length() != 0 {
			ip := strings.TrimSpace(ipElem.Text())
			ip = strings.ReplaceAll(ip, "(", "")
			ip = strings.ReplaceAll(ip, ")", "")
			res.Ip = strings.TrimSpace(ip)
		}
		return res, nil
	}

	// Guests carry a Gravatar image
	imgElem := sel.Find("img").First()
	if src, ok := imgElem.Attr("src"); ok && strings.Contains(src, "gravatar.com") {
		name := strings.TrimSpace(sel.Text())
		if ix := strings.IndexRune(name, ' '); ix != -1 {
			name = name[:ix]
		}
		return &User{
			Kind:      UserGuest,
			Name:      name,
			AvatarUrl: src,
		}, nil
	}

	if strings.TrimSpace(sel.Text()) == "Wikidot" {
		return &User{
			Kind:     UserSystem,
			Name:     "Wikidot",
			UnixName: "wikidot",
		}, nil
	}

	linkElem := sel.Find("a").Last()
	if linkElem.Length() == 0 {
		return nil, fmt.Errorf("%w: link in printuser span", ErrNoElement)
	}
	onclick := linkElem.AttrOr("onclick", "")
	groups := reUserInfoOnclick.FindStringSubmatch(onclick)
	if groups == nil {
		return nil, fmt.Errorf("%w: user id in printuser onclick %q", ErrNoElement, onclick)
	}
	id, err := strconv.Atoi(groups[1])
	if err != nil {
		return nil, fmt.Errorf("invalid user id in printuser onclick %q: %v", onclick, err)
	}

	return &User{
		Kind:      UserRegistered,
		Id:        id,
		Name:      linkElem.Text(),
		UnixName:  strings.TrimPrefix(linkElem.AttrOr("href", ""), userInfoUrlPrefix),
		AvatarUrl: fmt.Sprintf("https://www.wikidot.com/avatar.php?userid=%d", id),
	}, nil
}

// ParseOdate extracts the UTC timestamp encoded in a span.odate element's
// "time_<unix>" class.
func ParseOdate(sel *goquery.Selection) (time.Time, error) {
	classAttr := sel.AttrOr("class", "")
	for _, class := range strings.Fields(classAttr) {
		if !strings.HasPrefix(class, "time_") {
			continue
		}
		unix, err := strconv.ParseInt(strings.TrimPrefix(class, "time_"), 10, 64)
		if err != nil {
			continue
		}
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: unix time class in odate element", ErrNoElement)
}
