package server

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/dto"
	"github.com/Crimone/Scoparia/logic"
	"github.com/Crimone/Scoparia/shared"
)

type apiHandlerGroup struct {
	cfg          *shared.Config
	logger       shared.ILogger
	metrics      logic.IMetrics
	repo         dal.IRepo
	orchestrator logic.ICycleOrchestrator
	syncer       logic.ISyncService
	cycleRunning atomic.Bool
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
	orchestrator logic.ICycleOrchestrator,
	syncer logic.ISyncService,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:          cfg,
		logger:       logger,
		metrics:      metrics,
		repo:         repo,
		orchestrator: orchestrator,
		syncer:       syncer,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/cycle", func(w http.ResponseWriter, r *http.Request) { hg.postCycle(w, r) }},
		{"POST", "/sync", func(w http.ResponseWriter, r *http.Request) { hg.postSync(w, r) }},
		{"GET", "/subscribers", func(w http.ResponseWriter, r *http.Request) { hg.getSubscribers(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// postCycle kicks off a notification cycle in the background. Only one
// cycle may run at a time.
func (hg *apiHandlerGroup) postCycle(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/cycle: Request received")
	obs := hg.metrics.StartWebRequestIn("post_cycle")
	defer obs.Finish()

	if !hg.cycleRunning.CompareAndSwap(false, true) {
		writeErrorResponse(w, "409 Cycle Already Running", http.StatusConflict)
		return
	}
	go func() {
		defer hg.cycleRunning.Store(false)
		if err := hg.orchestrator.RunCycle(context.Background()); err != nil {
			hg.logger.Errorf("Triggered cycle failed: %v", err)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	writeJsonResponse(hg.logger, w, dto.CycleStarted{Status: "started"})
}

func (hg *apiHandlerGroup) postSync(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/sync: Request received")
	obs := hg.metrics.StartWebRequestIn("post_sync")
	defer obs.Finish()

	if err := hg.syncer.SyncContacts(r.Context()); err != nil {
		hg.logger.Errorf("Contacts sync failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if err := hg.syncer.SyncUserConfigs(r.Context()); err != nil {
		hg.logger.Errorf("User config sync failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, dto.SyncResult{Status: "ok"})
}

func (hg *apiHandlerGroup) getSubscribers(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("GET /api/subscribers: Request received")
	obs := hg.metrics.StartWebRequestIn("get_subscribers")
	defer obs.Finish()

	subs, err := hg.repo.GetSubscribers()
	if err != nil {
		hg.logger.Errorf("Failed to load subscribers: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]dto.Subscriber, 0, len(subs))
	for _, sub := range subs {
		res = append(res, dto.Subscriber{
			UserId:       sub.UserId,
			Username:     sub.Username,
			Email:        sub.Email,
			PushUrls:     sub.PushUrls,
			Timezone:     sub.Timezone,
			MentionLevel: string(sub.MentionLevel),
			EnablePM:     sub.EnablePM,
			EnableEmail:  sub.EnableEmail,
			EnablePush:   sub.EnablePush,
		})
	}
	writeJsonResponse(hg.logger, w, res)
}
