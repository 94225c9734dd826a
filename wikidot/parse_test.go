package wikidot

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printuserSel(t *testing.T, markup string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.Nil(t, err)
	sel := doc.Find("span.printuser").First()
	require.NotEqual(t, 0, sel.Length())
	return sel
}

func TestParseUser_Registered(t *testing.T) {
	markup := `<span class="printuser avatarhover">` +
		`<a href="https://www.wikidot.com/user:info/dr-grom" onclick="WIKIDOT.page.listeners.userInfo(4598089); return false;">` +
		`<img class="small" src="https://www.wikidot.com/avatar.php?userid=4598089" alt="Dr Grom"></a>` +
		`<a href="https://www.wikidot.com/user:info/dr-grom" onclick="WIKIDOT.page.listeners.userInfo(4598089); return false;">Dr Grom</a>` +
		`</span>`
	user, err := ParseUser(printuserSel(t, markup))
	require.Nil(t, err)
	assert.Equal(t, UserRegistered, user.Kind)
	assert.Equal(t, 4598089, user.Id)
	assert.Equal(t, "Dr Grom", user.Name)
	assert.Equal(t, "dr-grom", user.UnixName)
	assert.Equal(t, "https://www.wikidot.com/avatar.php?userid=4598089", user.AvatarUrl)
}

func TestParseUser_Deleted(t *testing.T) {
	markup := `<span class="printuser deleted" data-id="2345678">(account deleted)</span>`
	user, err := ParseUser(printuserSel(t, markup))
	require.Nil(t, err)
	assert.Equal(t, UserDeleted, user.Kind)
	assert.Equal(t, 2345678, user.Id)
	assert.Equal(t, "account deleted", user.Name)
	assert.Equal(t, "account_deleted", user.UnixName)
}

func TestParseUser_Anonymous(t *testing.T) {
	markup := `<span class="printuser anonymous">` +
		`<a href="javascript:;" onclick="WIKIDOT.page.listeners.anonymousUserInfo('203.0.113.7'); return false;">Anonymous ` +
		`<span class="ip">(203.0.113.7)</span></a></span>`
	user, err := ParseUser(printuserSel(t, markup))
	require.Nil(t, err)
	assert.Equal(t, UserAnonymous, user.Kind)
	assert.Equal(t, "Anonymous", user.Name)
	assert.Equal(t, "203.0.113.7", user.Ip)
}

func TestParseUser_Guest(t *testing.T) {
	markup := `<span class="printuser">` +
		`<img class="small" src="https://secure.gravatar.com/avatar.php?gravatar_id=abc&default=https://www.wikidot.com/common--images/avatars/default/a16.png&size=16">` +
		`maria (guest)</span>`
	user, err := ParseUser(printuserSel(t, markup))
	require.Nil(t, err)
	assert.Equal(t, UserGuest, user.Kind)
	assert.Equal(t, "maria", user.Name)
	assert.Contains(t, user.AvatarUrl, "gravatar.com")
}

func TestParseUser_System(t *testing.T) {
	markup := `<span class="printuser">Wikidot</span>`
	user, err := ParseUser(printuserSel(t, markup))
	require.Nil(t, err)
	assert.Equal(t, UserSystem, user.Kind)
	assert.Equal(t, "Wikidot", user.Name)
	assert.Equal(t, "wikidot", user.UnixName)
}

func TestParseUser_NoLink(t *testing.T) {
	markup := `<span class="printuser">someone</span>`
	_, err := ParseUser(printuserSel(t, markup))
	assert.ErrorIs(t, err, ErrNoElement)
}

func TestParseUser_LinkWithoutUserId(t *testing.T) {
	markup := `<span class="printuser"><a href="https://www.wikidot.com/user:info/x" onclick="doSomethingElse(); return false;">x</a></span>`
	_, err := ParseUser(printuserSel(t, markup))
	assert.ErrorIs(t, err, ErrNoElement)
}

func TestParseOdate(t *testing.T) {
	markup := `<span class="odate time_1714550400 format_%25e%20%25b%20%25Y%2C%20%25H%3A%25M%7Cagohover">01 May 2024, 08:00</span>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.Nil(t, err)
	ts, err := ParseOdate(doc.Find("span.odate").First())
	require.Nil(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), ts)
}

func TestParseOdate_NoTimeClass(t *testing.T) {
	markup := `<span class="odate format_x">01 May 2024</span>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.Nil(t, err)
	_, err = ParseOdate(doc.Find("span.odate").First())
	assert.ErrorIs(t, err, ErrNoElement)
}
