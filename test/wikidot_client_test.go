package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/test/mocks"
	"github.com/Crimone/Scoparia/wikidot"
)

func TestFetchThread_KeepsAmcStatusInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"try_again","message":"Temporarily unavailable"}`))
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	stubLogger(mockLogger)

	cfg := &shared.Config{RequestsPerSec: 100}
	c := wikidot.NewClient(cfg, mockLogger, shared.NewUserAgent(cfg))

	_, err := c.FetchThread(context.Background(), srv.URL, 123456)

	assert.ErrorIs(t, err, wikidot.ErrNotFound)
	assert.Contains(t, err.Error(), "try_again")
}
