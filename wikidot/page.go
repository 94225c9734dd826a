package wikidot

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// buildListPagesBody renders the ListPagesModule template that wraps each
// requested field in a query_<field> span, so the response can be parsed
// back out of the rendered HTML.
func buildListPagesBody(fields, formDataFields []string) string {
	var sb strings.Builder
	sb.WriteString("[[div class=\"page\"]]\n")
	for _, field := range fields {
		fmt.Fprintf(&sb, "[[span class=\"query_%s\"]] %%%%%s%%%% [[/span]]", field, field)
	}
	for _, field := range formDataFields {
		fmt.Fprintf(&sb, "[[span class=\"query_%s\"]] %%%%form_data{%s}%%%% [[/span]]", field, field)
	}
	sb.WriteString("\n[[/div]]")
	return sb.String()
}

func queryFieldText(pageElem *goquery.Selection, field string) string {
	return strings.TrimSpace(pageElem.Find("span.query_" + field).First().Text())
}

// parsePageElement parses one div.page element rendered by the
// ListPagesModule template into a Page.
func parsePageElement(pageElem *goquery.Selection, siteUrl string) (*Page, error) {

	fullname := queryFieldText(pageElem, "fullname")
	if fullname == "" {
		return nil, fmt.Errorf("%w: page fullname value", ErrNoElement)
	}
	title := queryFieldText(pageElem, "title")

	createdByElem := pageElem.Find("span.query_created_by_linked span.printuser").First()
	if createdByElem.Length() == 0 {
		return nil, fmt.Errorf("%w: creator element for page %s", ErrNoElement, fullname)
	}
	createdBy, err := ParseUser(createdByElem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse creator of page %s: %w", fullname, err)
	}

	createdAtElem := pageElem.Find("span.query_created_at span.odate").First()
	if createdAtElem.Length() == 0 {
		return nil, fmt.Errorf("%w: created at element for page %s", ErrNoElement, fullname)
	}
	createdAt, err := ParseOdate(createdAtElem)
	if err != nil {
		return nil, err
	}

	updatedByElem := pageElem.Find("span.query_updated_by_linked span.printuser").First()
	if updatedByElem.Length() == 0 {
		return nil, fmt.Errorf("%w: updater element for page %s", ErrNoElement, fullname)
	}
	updatedBy, err := ParseUser(updatedByElem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updater of page %s: %w", fullname, err)
	}

	updatedAtElem := pageElem.Find("span.query_updated_at span.odate").First()
	if updatedAtElem.Length() == 0 {
		return nil, fmt.Errorf("%w: updated at element for page %s", ErrNoElement, fullname)
	}
	updatedAt, err := ParseOdate(updatedAtElem)
	if err != nil {
		return nil, err
	}

	return &Page{
		SiteUrl:   siteUrl,
		Fullname:  fullname,
		Title:     title,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
		UpdatedBy: updatedBy,
		UpdatedAt: updatedAt,
	}, nil
}

// parseConfigPageElement parses one div.page element of a subscriber
// preference page listing. A missing or unparseable creator is reported
// through a nil CreatedBy, not an error; the caller decides what to do
// with such pages.
func parseConfigPageElement(pageElem *goquery.Selection) *ConfigPage {
	res := &ConfigPage{
		Name:    queryFieldText(pageElem, "name"),
		Content: queryFieldText(pageElem, "content"),
		Email:   queryFieldText(pageElem, "email"),
	}

	createdByElem := pageElem.Find("span.query_created_by_linked span.printuser").First()
	if createdByElem.Length() != 0 {
		if user, err := ParseUser(createdByElem); err == nil {
			res.CreatedBy = user
		}
	}

	for _, line := range strings.Split(queryFieldText(pageElem, "apprise_urls"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			res.PushUrls = append(res.PushUrls, line)
		}
	}

	return res
}
