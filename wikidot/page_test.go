package wikidot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListPagesBody(t *testing.T) {
	body := buildListPagesBody([]string{"name", "content"}, []string{"email"})
	assert.Equal(t, `[[div class="page"]]
[[span class="query_name"]] %%name%% [[/span]]`+
		`[[span class="query_content"]] %%content%% [[/span]]`+
		`[[span class="query_email"]] %%form_data{email}%% [[/span]]
[[/div]]`, body)
}

func pageElementMarkup() string {
	return `<div class="page">` +
		`<span class="query_fullname"> scp-173 </span>` +
		`<span class="query_title"> SCP-173 </span>` +
		`<span class="query_created_by_linked">` + registeredUserMarkup + `</span>` +
		`<span class="query_created_at"><span class="odate time_1714550400 format_x">x</span></span>` +
		`<span class="query_updated_by_linked">` + registeredUserMarkup + `</span>` +
		`<span class="query_updated_at"><span class="odate time_1714636800 format_x">x</span></span>` +
		`</div>`
}

func TestParsePageElement(t *testing.T) {
	doc := threadDoc(t, pageElementMarkup())
	page, err := parsePageElement(doc.Find("div.page").First(), threadSiteUrl)
	require.Nil(t, err)
	assert.Equal(t, threadSiteUrl, page.SiteUrl)
	assert.Equal(t, "scp-173", page.Fullname)
	assert.Equal(t, "SCP-173", page.Title)
	assert.Equal(t, "Dr Grom", page.CreatedBy.Name)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), page.CreatedAt)
	assert.Equal(t, "Dr Grom", page.UpdatedBy.Name)
	assert.Equal(t, time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC), page.UpdatedAt)
}

func TestParsePageElement_MissingFullname(t *testing.T) {
	doc := threadDoc(t, `<div class="page"><span class="query_title">x</span></div>`)
	_, err := parsePageElement(doc.Find("div.page").First(), threadSiteUrl)
	assert.ErrorIs(t, err, ErrNoElement)
}

func TestParseConfigPageElement(t *testing.T) {
	markup := `<div class="page">` +
		`<span class="query_name"> 4598089 </span>` +
		`<span class="query_created_by_linked">` + registeredUserMarkup + `</span>` +
		`<span class="query_content">timezone: Asia/Shanghai</span>` +
		`<span class="query_email"> grom@example.com </span>` +
		`<span class="query_apprise_urls">
https://push.example.com/hook?format=qqpush

https://other.example.com/notify
</span>` +
		`</div>`
	doc := threadDoc(t, markup)
	page := parseConfigPageElement(doc.Find("div.page").First())
	assert.Equal(t, "4598089", page.Name)
	require.NotNil(t, page.CreatedBy)
	assert.Equal(t, 4598089, page.CreatedBy.Id)
	assert.Equal(t, "timezone: Asia/Shanghai", page.Content)
	assert.Equal(t, "grom@example.com", page.Email)
	assert.Equal(t, []string{
		"https://push.example.com/hook?format=qqpush",
		"https://other.example.com/notify",
	}, page.PushUrls)
}

func TestParseConfigPageElement_NoCreator(t *testing.T) {
	markup := `<div class="page">` +
		`<span class="query_name">4598089</span>` +
		`<span class="query_content"></span>` +
		`</div>`
	doc := threadDoc(t, markup)
	page := parseConfigPageElement(doc.Find("div.page").First())
	assert.Nil(t, page.CreatedBy)
	assert.Empty(t, page.PushUrls)
}
