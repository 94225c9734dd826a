package logic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_sync.go -package mocks github.com/Crimone/Scoparia/logic ISyncService

// ISyncService keeps the subscriber roster in step with Wikidot: back
// contacts provide the id/name/email identity, and pages on the config
// wiki provide each user's notification preferences.
type ISyncService interface {
	SyncContacts(ctx context.Context) error
	SyncUserConfigs(ctx context.Context) error
}

type syncService struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
	client wikidot.IClient
}

func NewSyncService(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo,
	client wikidot.IClient) ISyncService {
	return &syncService{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		client: client,
	}
}

// SyncContacts updates subscriber identities from the service account's
// back contacts. Preferences set through the config wiki are untouched.
func (s *syncService) SyncContacts(ctx context.Context) error {

	contacts, err := s.client.GetContacts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch contacts: %w", err)
	}
	s.logger.Infof("Syncing %d contact(s)", len(contacts))

	for _, contact := range contacts {
		if err := s.repo.UpsertContact(contact.UserId, contact.Username, contact.Email); err != nil {
			s.logger.Errorf("Failed to store contact %d (%s): %v", contact.UserId, contact.Username, err)
		}
	}
	return nil
}

// SyncUserConfigs reads every page in the config wiki's user category.
// A page's name must be the numeric id of the user who created it;
// pages that fail this check are deleted so nobody can plant
// preferences for someone else.
func (s *syncService) SyncUserConfigs(ctx context.Context) error {

	wikiUrl := s.cfg.ConfigWiki.Url
	category := s.cfg.ConfigWiki.Category
	pages, err := s.client.ListConfigPages(ctx, wikiUrl, category)
	if err != nil {
		return fmt.Errorf("failed to list config pages: %w", err)
	}
	s.logger.Infof("Found %d page(s) in category %s", len(pages), category)

	synced := 0
	for _, page := range pages {
		if page.CreatedBy == nil || page.CreatedBy.Id == 0 {
			s.logger.Warnf("Page %s has no parseable creator; skipping", page.Name)
			continue
		}
		claimedId, err := strconv.Atoi(page.Name)
		if err != nil {
			s.logger.Warnf("Page name %s is not a user id; skipping", page.Name)
			continue
		}
		if page.CreatedBy.Id != claimedId {
			s.logger.Warnf("Page %s created by user %d, not its claimed owner; deleting",
				page.Name, page.CreatedBy.Id)
			fullname := fmt.Sprintf("%s:%s", category, page.Name)
			if err := s.client.DeletePage(ctx, wikiUrl, fullname); err != nil {
				s.logger.Errorf("Failed to delete page %s: %v", fullname, err)
			}
			continue
		}

		sub := s.parseConfig(page, claimedId)
		if err := s.repo.UpsertSubscriberConfig(sub); err != nil {
			s.logger.Errorf("Failed to store config for user %d: %v", claimedId, err)
			continue
		}
		synced++
	}
	s.logger.Infof("Synced %d user configuration(s)", synced)
	return nil
}

// parseConfig interprets a config page's YAML body plus its form-data
// fields. Unknown or malformed values fall back to safe defaults.
func (s *syncService) parseConfig(page *wikidot.ConfigPage, userId int) *dal.Subscriber {

	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(page.Content), &raw); err != nil {
		s.logger.Errorf("Could not parse config page %s: invalid YAML", page.Name)
		raw = map[string]interface{}{}
	}

	timezone := "UTC"
	if tz, ok := raw["timezone"].(string); ok {
		timezone = tz
	}
	mentionStr, _ := raw["mention_level"].(string)
	mentionLevel, ok := dal.ParseMentionLevel(strings.ToLower(mentionStr))
	if !ok {
		mentionLevel = dal.MentionHover
	}

	return &dal.Subscriber{
		UserId:       userId,
		Username:     page.CreatedBy.Name,
		Email:        page.Email,
		PushUrls:     page.PushUrls,
		Timezone:     timezone,
		MentionLevel: mentionLevel,
		EnablePM:     flagEnabled(raw["enable_wikidot_pm"]),
		EnableEmail:  flagEnabled(raw["enable_email"]),
		EnablePush:   flagEnabled(raw["enable_push"]),
	}
}

// Flags on config pages are the literal string "1"; anything else,
// including absence, means off.
func flagEnabled(val interface{}) bool {
	str, ok := val.(string)
	return ok && str == "1"
}
