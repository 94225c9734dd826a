package logic

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_watermarks.go -package mocks github.com/Crimone/Scoparia/logic IWatermarkStore

const watermarkMetaKey = "last_feed_check"

// IWatermarkStore persists the per-site "seen up to" timestamps that
// drive incremental feed processing. All watermarks live in a single
// serialized document so partially written state cannot occur.
type IWatermarkStore interface {
	Get(site string) (ts time.Time, found bool, err error)
	Set(site string, ts time.Time) error
}

type watermarkStore struct {
	logger shared.ILogger
	repo   dal.IRepo
	mu     sync.Mutex
}

func NewWatermarkStore(logger shared.ILogger, repo dal.IRepo) IWatermarkStore {
	return &watermarkStore{
		logger: logger,
		repo:   repo,
	}
}

func (ws *watermarkStore) load() (map[string]time.Time, error) {
	val, found, err := ws.repo.GetMetadata(watermarkMetaKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load watermarks: %w", err)
	}
	res := map[string]time.Time{}
	if !found {
		return res, nil
	}
	if err = json.Unmarshal([]byte(val), &res); err != nil {
		// A corrupt document means every site looks like first contact,
		// which is the safe direction: no duplicate notifications.
		ws.logger.Warnf("Failed to parse stored watermarks; treating all sites as new: %v", err)
		return map[string]time.Time{}, nil
	}
	return res, nil
}

func (ws *watermarkStore) Get(site string) (time.Time, bool, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	marks, err := ws.load()
	if err != nil {
		return time.Time{}, false, err
	}
	ts, found := marks[site]
	return ts.UTC(), found, nil
}

func (ws *watermarkStore) Set(site string, ts time.Time) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	marks, err := ws.load()
	if err != nil {
		return err
	}
	marks[site] = ts.UTC()
	data, err := json.Marshal(marks)
	if err != nil {
		return fmt.Errorf("failed to serialize watermarks: %w", err)
	}
	if err = ws.repo.SetMetadata(watermarkMetaKey, string(data)); err != nil {
		return fmt.Errorf("failed to store watermarks: %w", err)
	}
	return nil
}
