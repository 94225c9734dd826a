package logic

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crimone/Scoparia/texts"
	"github.com/Crimone/Scoparia/wikidot"
)

func TestTruncateHtmlSafe_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "<p>hello</p>", truncateHtmlSafe("<p>hello</p>", 200))
	assert.Equal(t, "  ", truncateHtmlSafe("  ", 200))
}

func TestTruncateHtmlSafe_CutsBeforeTornTag(t *testing.T) {
	text := strings.Repeat("a", 190) + `<a href="https://example.com/quite-a-long-path">link</a>`
	res := truncateHtmlSafe(text, 200)
	assert.Equal(t, strings.Repeat("a", 190)+"...", res)
}

func TestTruncateHtmlSafe_ClosesUnbalancedTags(t *testing.T) {
	text := "<p>" + strings.Repeat("a", 250) + "</p>"
	res := truncateHtmlSafe(text, 200)
	assert.Equal(t, "<p>"+strings.Repeat("a", 197)+"...</p>", res)
}

func TestTruncateHtmlSafe_KeepsRunesIntact(t *testing.T) {
	text := strings.Repeat("收", 70)
	res := truncateHtmlSafe(text, 200)
	assert.True(t, utf8.ValidString(res))
	assert.Equal(t, strings.Repeat("收", 66)+"...", res)
}

func TestHtmlToText(t *testing.T) {
	res := htmlToText("<p>Hello &amp; goodbye</p><p>second<br/>third</p>")
	assert.Equal(t, "Hello & goodbye\nsecond\nthird", res)
}

func composeStub() *wikidot.PostStub {
	return &wikidot.PostStub{
		PostId:      1003,
		ThreadId:    123456,
		Title:       "Re: Containment",
		Link:        "https://scp-wiki-cn.wikidot.com/forum/t-123456/containment#post-1003",
		AuthorName:  "Dr Grom",
		Content:     "<p>Looks breached to me.</p>",
		PublishedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		SiteUrl:     "https://scp-wiki-cn.wikidot.com",
		Breadcrumbs: []wikidot.Link{
			{Text: "Per page discussions", Url: "https://scp-wiki-cn.wikidot.com/forum/c-50"},
			{Text: "SCP-173", Url: "https://scp-wiki-cn.wikidot.com/forum/t-123456"},
		},
	}
}

func TestCompose_TitleForOneAndManyPosts(t *testing.T) {
	fmtr, err := NewFormatter(texts.NewTexts(), "markdown")
	require.Nil(t, err)

	title, _ := fmtr.Compose([]*wikidot.PostStub{composeStub()}, "UTC")
	assert.Equal(t, "[Scoparia] New post", title)

	title, _ = fmtr.Compose([]*wikidot.PostStub{composeStub(), composeStub(), composeStub()}, "UTC")
	assert.Equal(t, "[Scoparia] 3 new posts", title)
}

func TestCompose_MarkdownBody(t *testing.T) {
	fmtr, err := NewFormatter(texts.NewTexts(), "markdown")
	require.Nil(t, err)

	_, body := fmtr.Compose([]*wikidot.PostStub{composeStub()}, "UTC")

	assert.Contains(t, body, "💬 **Re: Containment** - 👤 **Dr Grom** - 🕐 01 May 2024, 08:00:00 UTC")
	assert.Contains(t, body, "> Looks breached to me.")
	assert.Contains(t, body, "ℹ️ [Per page discussions](https://scp-wiki-cn.wikidot.com/forum/c-50) » [SCP-173](https://scp-wiki-cn.wikidot.com/forum/t-123456)")
	assert.Contains(t, body, "🔗 <https://scp-wiki-cn.wikidot.com/forum/t-123456/containment#post-1003>")
	assert.Contains(t, body, "*Powered by [Scoparia](https://github.com/Crimone/Scoparia)*")
}

func TestCompose_UntitledPostHeaderOmitsTitle(t *testing.T) {
	fmtr, err := NewFormatter(texts.NewTexts(), "markdown")
	require.Nil(t, err)

	stub := composeStub()
	stub.Title = ""
	_, body := fmtr.Compose([]*wikidot.PostStub{stub}, "UTC")

	assert.Contains(t, body, "👤 **Dr Grom** - 🕐")
	assert.NotContains(t, body, "💬")
}

func TestCompose_TimezoneApplied(t *testing.T) {
	fmtr, err := NewFormatter(texts.NewTexts(), "text")
	require.Nil(t, err)

	_, body := fmtr.Compose([]*wikidot.PostStub{composeStub()}, "Asia/Shanghai")
	assert.Contains(t, body, "01 May 2024, 16:00:00 CST")
}

func TestCompose_UnknownTimezoneFallsBackToUtc(t *testing.T) {
	fmtr, err := NewFormatter(texts.NewTexts(), "text")
	require.Nil(t, err)

	_, body := fmtr.Compose([]*wikidot.PostStub{composeStub()}, "Not/AZone")
	assert.Contains(t, body, "01 May 2024, 08:00:00 UTC")
}

func TestCompose_FtmlUsesDateElement(t *testing.T) {
	fmtr, err := NewFormatter(texts.NewTexts(), "ftml")
	require.Nil(t, err)

	_, body := fmtr.Compose([]*wikidot.PostStub{composeStub()}, "Asia/Shanghai")

	assert.Contains(t, body, `[[date 1714550400 format="%e %b %Y, %H:%M:%S|agohover"]]`)
	assert.Contains(t, body, "[[*user Dr Grom]]")
}

func TestCompose_QqpushStripsUrlsAndLongNumbers(t *testing.T) {
	fmtr, err := NewFormatter(texts.NewTexts(), "qqpush")
	require.Nil(t, err)

	stub := composeStub()
	stub.Content = "<p>see https://example.com/page and post 1234567</p>"
	_, body := fmtr.Compose([]*wikidot.PostStub{stub}, "UTC")

	assert.NotContains(t, body, "http")
	assert.NotContains(t, body, "1234567")
	assert.Contains(t, body, "Dr Grom")
	assert.Contains(t, body, "⚡ Powered by Scoparia")
}

func TestNewFormatter_UnknownFormat(t *testing.T) {
	_, err := NewFormatter(texts.NewTexts(), "carrier-pigeon")
	assert.NotNil(t, err)
}
