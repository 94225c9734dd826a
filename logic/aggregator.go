package logic

import (
	"sync"

	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_aggregator.go -package mocks github.com/Crimone/Scoparia/logic IAggregator

// IAggregator collects posts per recipient over one polling cycle so
// each user gets a single notification per channel.
type IAggregator interface {
	Reset()
	Add(userId int, stub *wikidot.PostStub)
	Batches() map[int][]*wikidot.PostStub
}

type aggregator struct {
	mu      sync.Mutex
	batches map[int][]*wikidot.PostStub
}

func NewAggregator() IAggregator {
	return &aggregator{batches: make(map[int][]*wikidot.PostStub)}
}

func (a *aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.batches = make(map[int][]*wikidot.PostStub)
}

func (a *aggregator) Add(userId int, stub *wikidot.PostStub) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.batches[userId] = append(a.batches[userId], stub)
}

// Batches returns a copy of the collected batches. Each batch keeps the
// order posts were added in, so notifications read in processing order.
func (a *aggregator) Batches() map[int][]*wikidot.PostStub {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := make(map[int][]*wikidot.PostStub, len(a.batches))
	for userId, stubs := range a.batches {
		cpy := make([]*wikidot.PostStub, len(stubs))
		copy(cpy, stubs)
		res[userId] = cpy
	}
	return res
}
