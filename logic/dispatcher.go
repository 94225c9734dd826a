package logic

import (
	"context"
	"fmt"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/texts"
	"github.com/Crimone/Scoparia/wikidot"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_dispatcher.go -package mocks github.com/Crimone/Scoparia/logic IChannelDispatcher

const maxPMSubjectLen = 98

// IChannelDispatcher fans one user's batch out to every channel the
// user has enabled. A failure on one channel never blocks the others.
type IChannelDispatcher interface {
	SendAll(ctx context.Context, sub *dal.Subscriber, stubs []*wikidot.PostStub)
}

type channelDispatcher struct {
	logger  shared.ILogger
	metrics IMetrics
	client  wikidot.IClient
	emailer IEmailSender
	pusher  IPushSender
	fmtrs   map[string]IFormatter
}

func NewChannelDispatcher(
	logger shared.ILogger,
	metrics IMetrics,
	txt texts.ITexts,
	client wikidot.IClient,
	emailer IEmailSender,
	pusher IPushSender,
) (IChannelDispatcher, error) {
	fmtrs := make(map[string]IFormatter)
	for _, format := range []string{"html", "markdown", "text", "ftml", "qqpush"} {
		f, err := NewFormatter(txt, format)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s formatter: %w", format, err)
		}
		fmtrs[format] = f
	}
	return &channelDispatcher{
		logger:  logger,
		metrics: metrics,
		client:  client,
		emailer: emailer,
		pusher:  pusher,
		fmtrs:   fmtrs,
	}, nil
}

func (d *channelDispatcher) SendAll(ctx context.Context, sub *dal.Subscriber, stubs []*wikidot.PostStub) {
	if len(stubs) == 0 {
		return
	}
	if sub.EnablePM {
		d.sendPM(ctx, sub, stubs)
	}
	if sub.EnableEmail && sub.Email != "" {
		d.sendEmail(ctx, sub, stubs)
	}
	if sub.EnablePush {
		for _, endpoint := range sub.PushUrls {
			d.sendPush(ctx, sub, endpoint, stubs)
		}
	}
}

func (d *channelDispatcher) sendPM(ctx context.Context, sub *dal.Subscriber, stubs []*wikidot.PostStub) {
	title, body := d.fmtrs["ftml"].Compose(stubs, sub.Timezone)
	// Wikidot rejects overlong PM subjects
	title = shared.TruncateWithEllipsis(title, maxPMSubjectLen)
	if err := d.client.SendPrivateMessage(ctx, sub.UserId, title, body); err != nil {
		d.logger.Warnf("Failed to send PM to user %d (%s): %v", sub.UserId, sub.Username, err)
		d.metrics.NotificationFailed("pm")
		return
	}
	d.logger.Infof("Sent PM to user %d (%s): %d post(s)", sub.UserId, sub.Username, len(stubs))
	d.metrics.NotificationSent("pm")
}

func (d *channelDispatcher) sendEmail(ctx context.Context, sub *dal.Subscriber, stubs []*wikidot.PostStub) {
	title, body := d.fmtrs["html"].Compose(stubs, sub.Timezone)
	if err := d.emailer.Send(ctx, sub.Email, title, body); err != nil {
		d.logger.Warnf("Failed to send email to user %d (%s): %v", sub.UserId, sub.Username, err)
		d.metrics.NotificationFailed("email")
		return
	}
	d.logger.Infof("Sent email to user %d (%s): %d post(s)", sub.UserId, sub.Username, len(stubs))
	d.metrics.NotificationSent("email")
}

func (d *channelDispatcher) sendPush(ctx context.Context, sub *dal.Subscriber, endpoint string, stubs []*wikidot.PostStub) {
	format := d.pusher.FormatFor(endpoint)
	title, body := d.fmtrs[format].Compose(stubs, sub.Timezone)
	if err := d.pusher.Send(ctx, endpoint, title, body); err != nil {
		d.logger.Warnf("Failed to push to user %d (%s): %v", sub.UserId, sub.Username, err)
		d.metrics.NotificationFailed("push")
		return
	}
	d.logger.Infof("Pushed to user %d (%s): %d post(s)", sub.UserId, sub.Username, len(stubs))
	d.metrics.NotificationSent("push")
}
