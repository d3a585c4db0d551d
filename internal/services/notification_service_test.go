package services

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"workhub_backend/internal/email"
	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events map[string][]dto.Event
}

func (p *recordingPublisher) Publish(userID string, event dto.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[userID] = append(p.events[userID], event)
}

func (p *recordingPublisher) of(userID string) []dto.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]dto.Event(nil), p.events[userID]...)
}

func TestNotifyPersistsPublishesAndMails(t *testing.T) {
	f := newFixture(t)
	pub := &recordingPublisher{events: map[string][]dto.Event{}}
	notifications := NewNotificationService(f.mail, email.NewTemplateManager(), f.repos.Users, f.repos.Notifications, pub)

	notifications.Notify(f.db, f.client.ID, email.TemplateTaskDelivered, "Task delivered",
		email.TemplateData{"TaskTitle": "Fix sink", "Message": "done"})
	notifications.Notify(f.db, "", email.TemplateTaskDelivered, "ignored", nil)
	notifications.Wait()

	events := pub.of(f.client.ID)
	require.Len(t, events, 1)
	assert.Equal(t, email.TemplateTaskDelivered, events[0].Type)
	assert.Equal(t, "Task delivered", events[0].Subject)
	assert.Equal(t, "Fix sink", events[0].Data["TaskTitle"])
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].SentAt.IsZero())

	feed, err := notifications.List(f.db, actorOf(f.client), &dto.NotificationListQuery{})
	require.NoError(t, err)
	items := feed.Data.([]*dto.NotificationResponse)
	require.Len(t, items, 1)
	assert.Equal(t, events[0].ID, items[0].ID)
	assert.Equal(t, "Fix sink", items[0].Data["TaskTitle"])
	assert.False(t, items[0].IsRead)

	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{f.client.Email}, sent[0].To)
}

func TestNotificationFeed(t *testing.T) {
	f := newFixture(t)
	client := actorOf(f.client)
	svc := f.svc.NotificationService

	for _, tpl := range []string{email.TemplateTaskDelivered, email.TemplateExtensionRequested, email.TemplateTaskDelivered} {
		svc.Notify(f.db, f.client.ID, tpl, "subject", email.TemplateData{"TaskTitle": "t"})
	}
	svc.Notify(f.db, f.worker.ID, email.TemplateTaskPaid, "subject", nil)
	svc.Wait()

	count, err := svc.UnreadCount(f.db, client)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count.Unread)

	feed, err := svc.List(f.db, client, &dto.NotificationListQuery{Type: email.TemplateTaskDelivered})
	require.NoError(t, err)
	assert.EqualValues(t, 2, feed.Total)

	first := feed.Data.([]*dto.NotificationResponse)[0]
	require.NoError(t, svc.MarkRead(f.db, client, first.ID))
	require.NoError(t, svc.MarkRead(f.db, client, first.ID), "marking twice is fine")

	err = svc.MarkRead(f.db, actorOf(f.worker), first.ID)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err), "foreign notification")

	unread, err := svc.List(f.db, client, &dto.NotificationListQuery{UnreadOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread.Total)

	all, err := svc.MarkAllRead(f.db, client)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Updated)

	count, err = svc.UnreadCount(f.db, client)
	require.NoError(t, err)
	assert.Zero(t, count.Unread)

	workerCount, err := svc.UnreadCount(f.db, actorOf(f.worker))
	require.NoError(t, err)
	assert.EqualValues(t, 1, workerCount.Unread)
}

func TestNotificationCleanup(t *testing.T) {
	f := newFixture(t)
	svc := f.svc.NotificationService
	old := time.Now().UTC().Add(-60 * 24 * time.Hour)

	for _, n := range []*models.Notification{
		{UserID: f.client.ID, Type: "a", Title: "old read", IsRead: true},
		{UserID: f.client.ID, Type: "a", Title: "old unread"},
		{UserID: f.client.ID, Type: "a", Title: "fresh read", IsRead: true},
	} {
		n.SetData(nil)
		require.NoError(t, f.repos.Notifications.Create(f.db, n))
		if n.Title != "fresh read" {
			require.NoError(t, f.db.Model(n).UpdateColumn("created_at", old).Error)
		}
	}

	removed, err := svc.Cleanup(f.db, 30*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	var left int64
	require.NoError(t, f.db.Model(&models.Notification{}).Count(&left).Error)
	assert.EqualValues(t, 2, left)
}
