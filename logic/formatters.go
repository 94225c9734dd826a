package logic

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Crimone/Scoparia/texts"
	"github.com/Crimone/Scoparia/wikidot"
)

const (
	// Post bodies get truncated to this many bytes before formatting
	contentTruncateLen = 200
	timeLayout         = "02 Jan 2006, 15:04:05 MST"
)

var (
	reBrOrParaClose = regexp.MustCompile(`(?i)<br\s*/?>|</p>`)
	reBareUrl       = regexp.MustCompile(`https?://[^\s]+`)
	reMarkdownLink  = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reLongNumber    = regexp.MustCompile(`\d{5,}`)
)

// IFormatter renders a batch of posts into one notification. Each
// implementation targets one delivery format; NewFormatter picks the
// right one by name.
type IFormatter interface {
	Compose(stubs []*wikidot.PostStub, timezone string) (title, body string)
}

// formatterCaps is the per-format capability surface. The shared
// composition loop in formatter.Compose delegates all format-specific
// rendering here.
type formatterCaps interface {
	FormatTime(t time.Time, loc *time.Location) string
	FormatContent(htmlContent string) string
	FormatParentLink(link wikidot.Link) string
	FormatHeader(stub *wikidot.PostStub, timeStr string) string
	FormatLink(stub *wikidot.PostStub) string
	FormatSection(content, headerLine, parentsLine, linkLine string) string
	Separator() string
	Footer() string
	PostProcess(body string) string
}

func NewFormatter(txt texts.ITexts, format string) (IFormatter, error) {
	var caps formatterCaps
	switch format {
	case "html":
		caps = &htmlCaps{txt: txt}
	case "markdown":
		caps = &markdownCaps{txt: txt}
	case "text":
		caps = &textCaps{txt: txt}
	case "ftml":
		caps = &ftmlCaps{txt: txt}
	case "qqpush":
		caps = &qqpushCaps{textCaps{txt: txt}}
	default:
		return nil, fmt.Errorf("unsupported format type: %s", format)
	}
	return &formatter{txt: txt, caps: caps}, nil
}

type formatter struct {
	txt  texts.ITexts
	caps formatterCaps
}

func (f *formatter) Compose(stubs []*wikidot.PostStub, timezone string) (string, string) {

	title := f.txt.Get("title-one.txt")
	if len(stubs) != 1 {
		title = f.txt.WithVals("title-many.txt", map[string]string{"count": strconv.Itoa(len(stubs))})
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	var sections []string
	for _, stub := range stubs {
		timeStr := f.caps.FormatTime(stub.PublishedAt, loc)
		content := f.caps.FormatContent(truncateHtmlSafe(stub.Content, contentTruncateLen))

		parentLinks := make([]string, 0, len(stub.Breadcrumbs))
		for _, link := range stub.Breadcrumbs {
			parentLinks = append(parentLinks, f.caps.FormatParentLink(link))
		}
		parentsLine := "ℹ️ " + strings.Join(parentLinks, " » ")

		headerLine := f.caps.FormatHeader(stub, timeStr)
		linkLine := f.caps.FormatLink(stub)
		sections = append(sections, f.caps.FormatSection(content, headerLine, parentsLine, linkLine))
	}
	sections = append(sections, f.caps.Footer())

	body := f.caps.PostProcess(strings.Join(sections, f.caps.Separator()))
	return title, body
}

// truncateHtmlSafe shortens an HTML fragment without leaving tags torn
// open: it cuts outside of tags, then reparses so the serializer closes
// whatever the cut left unbalanced.
func truncateHtmlSafe(htmlText string, maxLen int) string {
	if len(strings.TrimSpace(htmlText)) == 0 || len(htmlText) <= maxLen {
		return htmlText
	}

	pos := maxLen
	if tagStart := strings.LastIndex(htmlText[:pos], "<"); tagStart != -1 {
		searchEnd := pos + 100
		if searchEnd > len(htmlText) {
			searchEnd = len(htmlText)
		}
		tagEnd := strings.Index(htmlText[tagStart:searchEnd], ">")
		if tagEnd == -1 || tagStart+tagEnd >= pos {
			pos = tagStart
		}
	}
	for pos > 0 && !utf8.RuneStart(htmlText[pos]) {
		pos--
	}
	truncated := htmlText[:pos] + "..."

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(truncated))
	if err != nil {
		return truncated
	}
	res, err := doc.Find("body").Html()
	if err != nil {
		return truncated
	}
	return res
}

// htmlToText flattens an HTML fragment to plain text, keeping line
// breaks from br and p elements.
func htmlToText(htmlContent string) string {
	withBreaks := reBrOrParaClose.ReplaceAllString(htmlContent, "\n")
	stripped := bluemonday.StrictPolicy().Sanitize(withBreaks)
	return strings.TrimSpace(html.UnescapeString(stripped))
}

func quoteLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// --- HTML ---

type htmlCaps struct {
	txt texts.ITexts
}

func (c *htmlCaps) FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeLayout)
}

func (c *htmlCaps) FormatContent(htmlContent string) string {
	return htmlContent
}

func (c *htmlCaps) FormatParentLink(link wikidot.Link) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, link.Url, html.EscapeString(link.Text))
}

func (c *htmlCaps) FormatHeader(stub *wikidot.PostStub, timeStr string) string {
	if stub.Title != "" {
		return fmt.Sprintf("💬 <strong>%s</strong> - 👤 <strong>%s</strong> - 🕐 %s",
			html.EscapeString(stub.Title), html.EscapeString(stub.AuthorName), timeStr)
	}
	return fmt.Sprintf("👤 <strong>%s</strong> - 🕐 %s", html.EscapeString(stub.AuthorName), timeStr)
}

func (c *htmlCaps) FormatLink(stub *wikidot.PostStub) string {
	return fmt.Sprintf(`🔗 <a href="%s">%s</a>`, stub.Link, stub.Link)
}

func (c *htmlCaps) FormatSection(content, headerLine, parentsLine, linkLine string) string {
	return fmt.Sprintf(`
<p style="margin-bottom: 0.5em;">%s</p>
<p style="margin-bottom: 0.5em;">%s</p>
<blockquote>%s</blockquote>
<p style="margin-top: 0.5em;">%s</p>
`, linkLine, headerLine, content, parentsLine)
}

func (c *htmlCaps) Separator() string            { return "\n\n<hr>\n\n" }
func (c *htmlCaps) Footer() string               { return c.txt.Get("footer.html") }
func (c *htmlCaps) PostProcess(body string) string { return body }

// --- Markdown ---

type markdownCaps struct {
	txt texts.ITexts
}

func (c *markdownCaps) FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeLayout)
}

func (c *markdownCaps) FormatContent(htmlContent string) string {
	return quoteLines(htmlToText(htmlContent))
}

func (c *markdownCaps) FormatParentLink(link wikidot.Link) string {
	return fmt.Sprintf("[%s](%s)", link.Text, link.Url)
}

func (c *markdownCaps) FormatHeader(stub *wikidot.PostStub, timeStr string) string {
	if stub.Title != "" {
		return fmt.Sprintf("💬 **%s** - 👤 **%s** - 🕐 %s", stub.Title, stub.AuthorName, timeStr)
	}
	return fmt.Sprintf("👤 **%s** - 🕐 %s", stub.AuthorName, timeStr)
}

func (c *markdownCaps) FormatLink(stub *wikidot.PostStub) string {
	return fmt.Sprintf("🔗 <%s>", stub.Link)
}

func (c *markdownCaps) FormatSection(content, headerLine, parentsLine, linkLine string) string {
	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n\n%s\n", linkLine, headerLine, content, parentsLine)
}

func (c *markdownCaps) Separator() string            { return "\n\n---\n\n" }
func (c *markdownCaps) Footer() string               { return c.txt.Get("footer.md") }
func (c *markdownCaps) PostProcess(body string) string { return body }

// --- Plain text ---

type textCaps struct {
	txt texts.ITexts
}

func (c *textCaps) FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeLayout)
}

func (c *textCaps) FormatContent(htmlContent string) string {
	return htmlToText(htmlContent)
}

func (c *textCaps) FormatParentLink(link wikidot.Link) string {
	return link.Text
}

func (c *textCaps) FormatHeader(stub *wikidot.PostStub, timeStr string) string {
	if stub.Title != "" {
		return fmt.Sprintf("💬 %s - 👤 %s - 🕐 %s", stub.Title, stub.AuthorName, timeStr)
	}
	return fmt.Sprintf("👤 %s - 🕐 %s", stub.AuthorName, timeStr)
}

func (c *textCaps) FormatLink(stub *wikidot.PostStub) string {
	return "🔗 " + stub.Link
}

func (c *textCaps) FormatSection(content, headerLine, parentsLine, linkLine string) string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", linkLine, headerLine, content, parentsLine)
}

func (c *textCaps) Separator() string            { return "\n\n══════\n\n" }
func (c *textCaps) Footer() string               { return c.txt.Get("footer.txt") }
func (c *textCaps) PostProcess(body string) string { return body }

// --- FTML (Wikidot markup) ---

type ftmlCaps struct {
	txt texts.ITexts
}

// FTML leaves timezone conversion to the [[date]] element, which renders
// in the reader's local time.
func (c *ftmlCaps) FormatTime(t time.Time, _ *time.Location) string {
	return fmt.Sprintf(`[[date %d format="%%e %%b %%Y, %%H:%%M:%%S|agohover"]]`, t.Unix())
}

func (c *ftmlCaps) FormatContent(htmlContent string) string {
	return quoteLines(htmlToText(htmlContent))
}

func (c *ftmlCaps) FormatParentLink(link wikidot.Link) string {
	return fmt.Sprintf("[*%s %s]", link.Url, link.Text)
}

func (c *ftmlCaps) FormatHeader(stub *wikidot.PostStub, timeStr string) string {
	if stub.Title != "" {
		return fmt.Sprintf("💬 **%s** - [[*user %s]] - 🕐 %s", stub.Title, stub.AuthorName, timeStr)
	}
	return fmt.Sprintf("[[*user %s]] - 🕐 %s", stub.AuthorName, timeStr)
}

func (c *ftmlCaps) FormatLink(stub *wikidot.PostStub) string {
	return "🔗 " + stub.Link
}

func (c *ftmlCaps) FormatSection(content, headerLine, parentsLine, linkLine string) string {
	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n\n%s\n", linkLine, headerLine, content, parentsLine)
}

func (c *ftmlCaps) Separator() string            { return "\n\n------\n\n" }
func (c *ftmlCaps) Footer() string               { return c.txt.Get("footer.ftml") }
func (c *ftmlCaps) PostProcess(body string) string { return body }

// --- QQ push (plain text, no links, no long numbers) ---

type qqpushCaps struct {
	textCaps
}

func (c *qqpushCaps) FormatLink(_ *wikidot.PostStub) string {
	return ""
}

func (c *qqpushCaps) FormatSection(content, headerLine, parentsLine, _ string) string {
	return fmt.Sprintf("%s\n%s\n%s", headerLine, content, parentsLine)
}

func (c *qqpushCaps) Footer() string {
	return c.txt.Get("footer-qqpush.txt")
}

// QQ flags messages with URLs or long digit strings as spam, so both
// get stripped from the final body.
func (c *qqpushCaps) PostProcess(body string) string {
	body = reBareUrl.ReplaceAllString(body, "")
	body = reMarkdownLink.ReplaceAllString(body, "$1")
	return reLongNumber.ReplaceAllString(body, "")
}
