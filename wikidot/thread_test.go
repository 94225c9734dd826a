package wikidot

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threadSiteUrl = "https://scp-wiki-cn.wikidot.com"

const registeredUserMarkup = `<span class="printuser avatarhover">` +
	`<a href="https://www.wikidot.com/user:info/dr-grom" onclick="WIKIDOT.page.listeners.userInfo(4598089); return false;">Dr Grom</a>` +
	`</span>`

func threadDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.Nil(t, err)
	return doc
}

func pageThreadMarkup() string {
	return `<div class="forum-thread-box">` +
		`<div class="forum-breadcrumbs">` +
		`<a href="/forum/start">Forum</a> » ` +
		`<a href="/forum/c-50/per-page-discussions">Per page discussions</a> » SCP-173` +
		`</div>` +
		`<div class="description-block well">` +
		`This is the discussion related to the wiki page <a href="/scp-173">SCP-173</a>.` +
		`</div>` +
		`<div class="statistics">` +
		`Started by: ` + registeredUserMarkup + `<br>` +
		`Date: <span class="odate time_1714550400 format_x">01 May 2024</span><br>` +
		`Number of posts: 7<br>` +
		`Number of users: 3` +
		`</div>` +
		`<script type="text/javascript">WIKIDOT.forumThreadId = 123456;</script>` +
		`</div>`
}

func TestParseThreadPage_PageDiscussion(t *testing.T) {
	thread, err := parseThreadPage(threadDoc(t, pageThreadMarkup()), threadSiteUrl)
	require.Nil(t, err)
	assert.Equal(t, threadSiteUrl, thread.SiteUrl)
	assert.Equal(t, 123456, thread.Id)
	assert.Equal(t, "SCP-173", thread.Title)
	assert.Equal(t, "This is the discussion related to the wiki page.", thread.Description)
	assert.Equal(t, "Dr Grom", thread.CreatedBy.Name)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), thread.CreatedAt)
	assert.Equal(t, 7, thread.PostCount)
	assert.Equal(t, Category{Id: 50, Title: "Per page discussions"}, thread.Category)
	assert.Equal(t, "scp-173", thread.PageFullname)
}

func TestParseThreadPage_StandaloneThread(t *testing.T) {
	markup := `<div class="forum-thread-box">` +
		`<div class="forum-breadcrumbs">` +
		`<a href="/forum/start">Forum</a> » ` +
		`<a href="/forum/c-89000/general">General</a> » Welcome newcomers` +
		`</div>` +
		`<div class="description-block well">Say hello here.</div>` +
		`<div class="statistics">` +
		`Started by: ` + registeredUserMarkup + `<br>` +
		`Date: <span class="odate time_1700000000 format_x">x</span><br>` +
		`Number of posts: 42<br>` +
		`Number of users: 12` +
		`</div>` +
		`<script type="text/javascript">WIKIDOT.forumThreadId = 99;</script>` +
		`</div>`
	thread, err := parseThreadPage(threadDoc(t, markup), threadSiteUrl)
	require.Nil(t, err)
	assert.Equal(t, 99, thread.Id)
	assert.Equal(t, "Welcome newcomers", thread.Title)
	assert.Equal(t, "Say hello here.", thread.Description)
	assert.Equal(t, 42, thread.PostCount)
	assert.Equal(t, Category{Id: 89000, Title: "General"}, thread.Category)
	assert.Equal(t, "", thread.PageFullname)
}

func TestParseThreadPage_MissingBreadcrumbs(t *testing.T) {
	_, err := parseThreadPage(threadDoc(t, `<div class="statistics"></div>`), threadSiteUrl)
	assert.ErrorIs(t, err, ErrNoElement)
}

func TestParseThreadPage_MissingThreadIdScript(t *testing.T) {
	markup := strings.Replace(pageThreadMarkup(),
		"WIKIDOT.forumThreadId = 123456;", "var unrelated = 1;", 1)
	_, err := parseThreadPage(threadDoc(t, markup), threadSiteUrl)
	assert.ErrorIs(t, err, ErrNoElement)
}

func TestParseThreadPage_TooFewStatisticsLines(t *testing.T) {
	markup := strings.Replace(pageThreadMarkup(),
		"Number of posts: 7<br>", "", 1)
	_, err := parseThreadPage(threadDoc(t, markup), threadSiteUrl)
	assert.ErrorIs(t, err, ErrNoElement)
}
