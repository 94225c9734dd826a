package wikidot

import (
	"time"
)

// UserKind distinguishes the ways Wikidot renders an author.
type UserKind int

const (
	UserRegistered UserKind = iota
	UserDeleted
	UserAnonymous
	UserGuest
	UserSystem
)

func (k UserKind) String() string {
	switch k {
	case UserRegistered:
		return "user"
	case UserDeleted:
		return "deleted"
	case UserAnonymous:
		return "anonymous"
	case UserGuest:
		return "guest"
	case UserSystem:
		return "wikidot"
	}
	return "unknown"
}

// User is any kind of Wikidot author. Id is only meaningful for
// registered and deleted users; Ip only for anonymous ones.
type User struct {
	Kind      UserKind
	Id        int
	Name      string
	UnixName  string
	AvatarUrl string
	Ip        string
}

// Link is a clickable breadcrumb element.
type Link struct {
	Text string
	Url  string
}

type Category struct {
	Id    int
	Title string
}

type Thread struct {
	SiteUrl      string
	Id           int
	Title        string
	Description  string
	CreatedBy    *User
	CreatedAt    time.Time
	PostCount    int
	Category     Category
	PageFullname string // empty if the thread has no associated wiki page
}

type Post struct {
	SiteUrl   string
	ThreadId  int
	Id        int
	Title     string
	Text      string // inner HTML of the post body
	CreatedBy *User
	CreatedAt time.Time
	EditedBy  *User
	EditedAt  time.Time
	// Parents is the reply chain from direct parent towards the root.
	// It may be truncated if an ancestor could not be parsed.
	Parents []*Post
}

type Page struct {
	SiteUrl   string
	Fullname  string
	Title     string
	CreatedBy *User
	CreatedAt time.Time
	UpdatedBy *User
	UpdatedAt time.Time
}

// PostStub is one entry of a site's forum RSS feed, plus the breadcrumbs
// computed during resolution.
type PostStub struct {
	PostId      int
	ThreadId    int
	Title       string
	Link        string
	AuthorName  string
	Content     string
	PublishedAt time.Time
	SiteUrl     string
	Breadcrumbs []Link
}

// Contact is a back contact of the service account, with the email
// address Wikidot exposes on the contacts dashboard.
type Contact struct {
	UserId   int
	Username string
	Email    string
}

// ConfigPage is one subscriber preference page as returned by ListPagesModule.
type ConfigPage struct {
	Name      string
	CreatedBy *User // nil if the creator element could not be parsed
	Content   string
	PushUrls  []string
	Email     string
}
