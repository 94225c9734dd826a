package wikidot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/retry"
	"golang.org/x/time/rate"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_wikidot_client.go -package mocks github.com/Crimone/Scoparia/wikidot IClient

const (
	wikidotRoot       = "https://www.wikidot.com"
	loginUrl          = wikidotRoot + "/default--flow/login__LoginPopupScreen"
	ajaxContentType   = "application/x-www-form-urlencoded; charset=UTF-8"
	ajaxReferer       = wikidotRoot + "/"
	sessionCookieName = "WIKIDOT_SESSION_ID"
	// An arbitrary but consistent CSRF token; Wikidot only checks that the
	// cookie and the form field carry the same value.
	wikidotToken7 = "123456"

	listPagesPerPage  = 50
	defaultTimeoutSec = 20
	requestAttempts   = 5
)

var rePageId = regexp.MustCompile(`WIKIREQUEST\.info\.pageId = (\d+);`)

// IClient talks to Wikidot: the Ajax Module Connector, the login flow,
// the contacts dashboard and page management.
type IClient interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context)
	Ajax(ctx context.Context, siteUrl string, params map[string]string) (string, error)
	FetchThread(ctx context.Context, siteUrl string, threadId int) (*Thread, error)
	FetchPost(ctx context.Context, siteUrl string, threadId, postId int) (*Post, error)
	FetchPage(ctx context.Context, siteUrl, fullname string) (*Page, error)
	ListConfigPages(ctx context.Context, siteUrl, category string) ([]*ConfigPage, error)
	GetContacts(ctx context.Context) ([]*Contact, error)
	SendPrivateMessage(ctx context.Context, toUserId int, subject, body string) error
	DeletePage(ctx context.Context, siteUrl, fullname string) error
}

type amcResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Body    string `json:"body"`
}

type client struct {
	cfg        *shared.Config
	logger     shared.ILogger
	userAgent  shared.IUserAgent
	httpClient *http.Client
	limiter    *rate.Limiter
	muSession  sync.Mutex
	cookies    map[string]string
	loggedIn   bool
}

func NewClient(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) IClient {

	timeoutSec := cfg.RequestTimeoutSec
	if timeoutSec == 0 {
		timeoutSec = defaultTimeoutSec
	}
	reqsPerSec := cfg.RequestsPerSec
	if reqsPerSec == 0 {
		reqsPerSec = 2
	}

	return &client{
		cfg:        cfg,
		logger:     logger,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(reqsPerSec), 1),
		cookies:    map[string]string{"wikidot_token7": wikidotToken7},
	}
}

func (c *client) setCookie(name, value string) {
	c.muSession.Lock()
	c.cookies[name] = value
	c.muSession.Unlock()
}

func (c *client) cookieHeader() string {
	c.muSession.Lock()
	defer c.muSession.Unlock()
	var sb strings.Builder
	for name, value := range c.cookies {
		fmt.Fprintf(&sb, "%s=%s;", name, value)
	}
	return sb.String()
}

// requireSession guards operations that only work with an authenticated
// session. Without this check Wikidot fails in confusing ways later.
func (c *client) requireSession() error {
	c.muSession.Lock()
	defer c.muSession.Unlock()
	if !c.loggedIn {
		return ErrLoginRequired
	}
	return nil
}

func (c *client) Login(ctx context.Context) error {

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("login", c.cfg.Secrets.WikidotUser)
	form.Set("password", c.cfg.Secrets.WikidotPass)
	form.Set("action", "Login2Action")
	form.Set("event", "login")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", ajaxContentType)
	req.Header.Set("Referer", ajaxReferer)
	req.Header.Set("Cookie", c.cookieHeader())
	c.userAgent.AddUserAgent(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with HTTP status %d", resp.StatusCode)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read login response: %w", err)
	}
	if strings.Contains(string(bodyBytes), "The login and password do not match") {
		return errors.New("login failed: invalid username or password")
	}

	var sessionId string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			sessionId = cookie.Value
			break
		}
	}
	if sessionId == "" {
		return errors.New("login failed: no session cookie in response")
	}

	c.setCookie(sessionCookieName, sessionId)
	c.muSession.Lock()
	c.loggedIn = true
	c.muSession.Unlock()
	c.logger.Infof("Logged in to Wikidot as %s", c.cfg.Secrets.WikidotUser)
	return nil
}

func (c *client) Logout(ctx context.Context) {
	// Logout failures don't matter; the session cookie is dropped either way
	_, err := c.Ajax(ctx, wikidotRoot, map[string]string{
		"action":     "Login2Action",
		"event":      "logout",
		"moduleName": "Empty",
	})
	if err != nil {
		c.logger.Debugf("Logout request failed: %v", err)
	}
	c.muSession.Lock()
	delete(c.cookies, sessionCookieName)
	c.loggedIn = false
	c.muSession.Unlock()
}

// Ajax posts one request to a site's ajax-module-connector.php and
// returns the body field of the response envelope. Transient HTTP
// failures are retried; protocol-level errors are not.
func (c *client) Ajax(ctx context.Context, siteUrl string, params map[string]string) (string, error) {

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	ub := shared.UrlBuilder{Site: siteUrl}
	form := url.Values{}
	for name, value := range params {
		form.Set(name, value)
	}
	form.Set("wikidot_token7", wikidotToken7)

	var body string
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, ub.AjaxUrl(), strings.NewReader(form.Encode()))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", ajaxContentType)
			req.Header.Set("Referer", ajaxReferer)
			req.Header.Set("Cookie", c.cookieHeader())
			c.userAgent.AddUserAgent(req)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return fmt.Errorf("AMC returned HTTP status %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("AMC returned HTTP status %d", resp.StatusCode))
			}

			bodyBytes, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			var envelope amcResponse
			if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
				return retry.Unrecoverable(fmt.Errorf("malformed AMC response: %w", err))
			}
			if envelope.Status != "" && envelope.Status != "ok" {
				if envelope.Status == "no_permission" {
					return retry.Unrecoverable(ErrForbidden)
				}
				return retry.Unrecoverable(&StatusError{Status: envelope.Status, Message: envelope.Message})
			}
			body = envelope.Body
			return nil
		},
		retry.Attempts(requestAttempts),
		retry.Delay(time.Second),
		retry.MaxDelay(time.Minute),
		retry.MaxJitter(2*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debugf("Retrying AMC request to %s after error (attempt %d): %v", siteUrl, n, err)
		}),
	)
	return body, err
}

func (c *client) FetchThread(ctx context.Context, siteUrl string, threadId int) (*Thread, error) {

	body, err := c.Ajax(ctx, siteUrl, map[string]string{
		"t":          strconv.Itoa(threadId),
		"moduleName": "forum/ForumViewThreadModule",
	})
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			// Keep the original AMC status visible in logs even though
			// callers treat any protocol refusal as a missing thread
			return nil, fmt.Errorf("thread %d on %s (status %q): %w", threadId, siteUrl, statusErr.Status, ErrNotFound)
		}
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse thread %d response: %v", threadId, err)
	}
	thread, err := parseThreadPage(doc, siteUrl)
	if err != nil {
		return nil, fmt.Errorf("thread %d on %s: %w", threadId, siteUrl, err)
	}
	if thread.Id != threadId {
		return nil, fmt.Errorf("requested thread %d but got %d: %w", threadId, thread.Id, ErrIdentityMismatch)
	}
	return thread, nil
}

// FetchPost fetches a single post with its parent chain. Returns nil
// without error if the post does not appear in the thread.
func (c *client) FetchPost(ctx context.Context, siteUrl string, threadId, postId int) (*Post, error) {

	body, err := c.Ajax(ctx, siteUrl, map[string]string{
		"postId":     strconv.Itoa(postId),
		"t":          strconv.Itoa(threadId),
		"order":      "",
		"moduleName": "forum/ForumViewThreadPostsModule",
	})
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse post %d response: %v", postId, err)
	}
	post, err := findPost(doc, threadId, postId, siteUrl)
	if err != nil {
		return nil, fmt.Errorf("post %d in thread %d on %s: %w", postId, threadId, siteUrl, err)
	}
	return post, nil
}

func (c *client) queryListPages(ctx context.Context, siteUrl string, fields, formDataFields []string,
	perPage, offset int, category, fullname string) (*goquery.Selection, error) {

	params := map[string]string{
		"moduleName":  "list/ListPagesModule",
		"perPage":     strconv.Itoa(perPage),
		"offset":      strconv.Itoa(offset),
		"module_body": buildListPagesBody(fields, formDataFields),
	}
	if category != "" {
		params["category"] = category
	}
	if fullname != "" {
		params["fullname"] = fullname
	}

	body, err := c.Ajax(ctx, siteUrl, params)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ListPagesModule response: %v", err)
	}
	return doc.Find("div.page"), nil
}

// FetchPage fetches page metadata via ListPagesModule. Returns nil
// without error if no such page exists.
func (c *client) FetchPage(ctx context.Context, siteUrl, fullname string) (*Page, error) {

	fields := []string{"fullname", "title", "created_by_linked", "created_at", "updated_by_linked", "updated_at"}
	pageElems, err := c.queryListPages(ctx, siteUrl, fields, nil, 1, 0, "", fullname)
	if err != nil {
		return nil, err
	}
	if pageElems.Length() == 0 {
		return nil, nil
	}
	return parsePageElement(pageElems.First(), siteUrl)
}

// ListConfigPages lists all subscriber preference pages in a category,
// following pagination to the end.
func (c *client) ListConfigPages(ctx context.Context, siteUrl, category string) ([]*ConfigPage, error) {

	fields := []string{"name", "created_by_linked", "content"}
	formDataFields := []string{"apprise_urls", "email"}

	var res []*ConfigPage
	for offset := 0; ; offset += listPagesPerPage {
		pageElems, err := c.queryListPages(ctx, siteUrl, fields, formDataFields,
			listPagesPerPage, offset, category, "")
		if err != nil {
			if offset == 0 {
				return nil, err
			}
			c.logger.Errorf("Failed to list config pages at offset %d: %v", offset, err)
			break
		}
		if pageElems.Length() == 0 {
			break
		}
		pageElems.Each(func(_ int, s *goquery.Selection) {
			res = append(res, parseConfigPageElement(s))
		})
		if pageElems.Length() < listPagesPerPage {
			break
		}
	}
	return res, nil
}

// GetContacts retrieves the service account's back contacts with their
// email addresses. Emails are personal information; callers use them and
// throw them away, they are never persisted.
func (c *client) GetContacts(ctx context.Context) ([]*Contact, error) {

	if err := c.requireSession(); err != nil {
		return nil, err
	}

	body, err := c.Ajax(ctx, wikidotRoot, map[string]string{
		"moduleName": "dashboard/messages/DMContactsModule",
	})
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contacts response: %v", err)
	}

	// Back contacts sit under an h2 heading; no heading means no contacts
	heading := doc.Find("h2").First()
	if heading.Length() == 0 {
		c.logger.Info("No back contacts found")
		return nil, nil
	}
	table := heading.NextAllFiltered(".contact-list-table").First()
	if table.Length() == 0 {
		c.logger.Info("No back contacts table found")
		return nil, nil
	}

	var res []*Contact
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		userElem := cells.Eq(0).Find("span.printuser").First()
		if userElem.Length() == 0 {
			return
		}
		user, err := ParseUser(userElem)
		if err != nil || user.Id == 0 || user.Name == "" {
			return
		}
		res = append(res, &Contact{
			UserId:   user.Id,
			Username: user.Name,
			Email:    strings.TrimSpace(cells.Eq(1).Text()),
		})
	})

	c.logger.Infof("Retrieved %d back contacts with email addresses", len(res))
	return res, nil
}

func (c *client) SendPrivateMessage(ctx context.Context, toUserId int, subject, body string) error {

	if err := c.requireSession(); err != nil {
		return err
	}

	_, err := c.Ajax(ctx, wikidotRoot, map[string]string{
		"source":     body,
		"subject":    subject,
		"to_user_id": strconv.Itoa(toUserId),
		"action":     "DashboardMessageAction",
		"event":      "send",
		"moduleName": "Empty",
	})
	if err != nil {
		return fmt.Errorf("failed to send private message to user %d: %w", toUserId, err)
	}
	return nil
}

// DeletePage removes a page. The page id needed by WikiPageAction is
// only available in the rendered page source, so this fetches the page
// first.
func (c *client) DeletePage(ctx context.Context, siteUrl, fullname string) error {

	if err := c.requireSession(); err != nil {
		return err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	pageUrl := fmt.Sprintf("%s/%s/norender/true/noredirect/true", siteUrl, fullname)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageUrl, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Cookie", c.cookieHeader())
	c.userAgent.AddUserAgent(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch page %s: %w", fullname, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch page %s: HTTP status %d", fullname, resp.StatusCode)
	}
	for _, cookie := range resp.Cookies() {
		c.setCookie(cookie.Name, cookie.Value)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	groups := rePageId.FindStringSubmatch(string(bodyBytes))
	if groups == nil {
		return fmt.Errorf("page id of %s: %w", fullname, ErrNoElement)
	}

	_, err = c.Ajax(ctx, siteUrl, map[string]string{
		"action":     "WikiPageAction",
		"event":      "deletePage",
		"page_id":    groups[1],
		"moduleName": "Empty",
	})
	if err != nil {
		return fmt.Errorf("failed to delete page %s: %w", fullname, err)
	}
	c.logger.Infof("Deleted page %s (id %s)", fullname, groups[1])
	return nil
}
