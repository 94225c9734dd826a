package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 4))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
}

func TestGetHostName(t *testing.T) {
	host, err := GetHostName("https://scp-wiki-cn.wikidot.com/forum/t-123#post-456")
	assert.Nil(t, err)
	assert.Equal(t, "scp-wiki-cn.wikidot.com", host)
}

func TestUrlBuilder(t *testing.T) {
	ub := UrlBuilder{Site: "https://scp-wiki-cn.wikidot.com"}
	assert.Equal(t, "https://scp-wiki-cn.wikidot.com/forum/c-89000", ub.CategoryUrl(89000))
	assert.Equal(t, "https://scp-wiki-cn.wikidot.com/forum/t-123#post-456", ub.PostUrl(123, 456))
	assert.Equal(t, "https://scp-wiki-cn.wikidot.com/ajax-module-connector.php", ub.AjaxUrl())
}
