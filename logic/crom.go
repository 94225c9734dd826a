package logic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_crom.go -package mocks github.com/Crimone/Scoparia/logic ICromClient

const (
	defaultCromApiUrl = "https://apiv2.crom.avn.sh/graphql"
	cromTimeoutSec    = 10
	cromAttempts      = 10
)

// ErrPageNotIndexed means Crom has no record of the page at all. This
// is different from knowing the page but not its creator: an unindexed
// page may still have an author that Wikidot can tell us about.
var ErrPageNotIndexed = errors.New("page not indexed by Crom")

// Crom indexes the SCP wikis and answers page attribution queries much
// faster than scraping Wikidot does.
type ICromClient interface {
	GetPageAuthorId(ctx context.Context, siteUrl, fullname string) (id int, found bool, err error)
}

type cromClient struct {
	cfg        *shared.Config
	logger     shared.ILogger
	httpClient *http.Client
	apiUrl     string
}

func NewCromClient(cfg *shared.Config, logger shared.ILogger) ICromClient {
	apiUrl := cfg.CromApiUrl
	if apiUrl == "" {
		apiUrl = defaultCromApiUrl
	}
	return &cromClient{
		cfg:        cfg,
		logger:     logger,
		httpClient: &http.Client{Timeout: cromTimeoutSec * time.Second},
		apiUrl:     apiUrl,
	}
}

const pageAuthorQuery = `
query GetPageAuthor($url: URL!) {
    wikidotPage(url: $url) {
        createdBy {
            id
        }
    }
}`

type cromAuthorResponse struct {
	Data struct {
		WikidotPage *struct {
			CreatedBy *struct {
				Id string `json:"id"`
			} `json:"createdBy"`
		} `json:"wikidotPage"`
	} `json:"data"`
}

func (cc *cromClient) GetPageAuthorId(ctx context.Context, siteUrl, fullname string) (int, bool, error) {

	// Crom stores all Wikidot URLs with an http scheme
	canonicalUrl := fmt.Sprintf("%s/%s", strings.Replace(siteUrl, "https://", "http://", 1), fullname)

	reqObj := map[string]interface{}{
		"query":     pageAuthorQuery,
		"variables": map[string]string{"url": canonicalUrl},
	}
	reqBytes, err := json.Marshal(reqObj)
	if err != nil {
		return 0, false, err
	}

	var bodyBytes []byte
	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, cc.apiUrl, bytes.NewReader(reqBytes))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			resp, err := cc.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return fmt.Errorf("Crom returned HTTP status %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("Crom returned HTTP status %d", resp.StatusCode))
			}
			if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
				return err
			}
			return nil
		},
		retry.Attempts(cromAttempts),
		retry.Delay(400*time.Millisecond),
		retry.MaxDelay(time.Minute),
		retry.MaxJitter(2*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			cc.logger.Debugf("Retrying Crom query for %s after error (attempt %d): %v", canonicalUrl, n, err)
		}),
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to query Crom for %s: %w", canonicalUrl, err)
	}

	var obj cromAuthorResponse
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return 0, false, fmt.Errorf("malformed Crom response for %s: %w", canonicalUrl, err)
	}
	if obj.Data.WikidotPage == nil {
		return 0, false, fmt.Errorf("%s: %w", canonicalUrl, ErrPageNotIndexed)
	}
	if obj.Data.WikidotPage.CreatedBy == nil {
		// Crom knows the page but the creator's account was deleted
		return 0, false, nil
	}

	// The id field is Base64-encoded JSON: {"type":"WikidotUser","id":"8366274"}
	decoded, err := base64.StdEncoding.DecodeString(obj.Data.WikidotPage.CreatedBy.Id)
	if err != nil {
		return 0, false, fmt.Errorf("malformed Crom user id for %s: %w", canonicalUrl, err)
	}
	var userObj struct {
		Type string `json:"type"`
		Id   string `json:"id"`
	}
	if err = json.Unmarshal(decoded, &userObj); err != nil {
		return 0, false, fmt.Errorf("malformed Crom user id for %s: %w", canonicalUrl, err)
	}
	id, err := strconv.Atoi(userObj.Id)
	if err != nil {
		return 0, false, fmt.Errorf("malformed Crom user id for %s: %v", canonicalUrl, err)
	}

	cc.logger.Debugf("Retrieved author id %d for %s from Crom", id, canonicalUrl)
	return id, true, nil
}
