package logic

import (
	"context"
	"errors"

	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_page_author.go -package mocks github.com/Crimone/Scoparia/logic IPageAuthorResolver

// IPageAuthorResolver answers "who wrote this wiki page". It asks Crom
// first and falls back to scraping Wikidot when Crom cannot answer.
type IPageAuthorResolver interface {
	Resolve(ctx context.Context, siteUrl, fullname string) (id int, found bool)
}

type pageAuthorResolver struct {
	logger shared.ILogger
	crom   ICromClient
	client wikidot.IClient
}

func NewPageAuthorResolver(logger shared.ILogger, crom ICromClient, client wikidot.IClient) IPageAuthorResolver {
	return &pageAuthorResolver{
		logger: logger,
		crom:   crom,
		client: client,
	}
}

func (par *pageAuthorResolver) Resolve(ctx context.Context, siteUrl, fullname string) (int, bool) {

	id, found, err := par.crom.GetPageAuthorId(ctx, siteUrl, fullname)
	if err == nil {
		return id, found
	}
	if errors.Is(err, ErrPageNotIndexed) {
		par.logger.Debugf("Crom has not indexed %s/%s, trying Wikidot", siteUrl, fullname)
	} else {
		par.logger.Debugf("Crom lookup failed for %s/%s, falling back to Wikidot: %v", siteUrl, fullname, err)
	}

	page, err := par.client.FetchPage(ctx, siteUrl, fullname)
	if err != nil {
		par.logger.Debugf("Wikidot page lookup failed for %s/%s: %v", siteUrl, fullname, err)
		return 0, false
	}
	if page == nil || page.CreatedBy == nil || page.CreatedBy.Id == 0 {
		return 0, false
	}
	return page.CreatedBy.Id, true
}
