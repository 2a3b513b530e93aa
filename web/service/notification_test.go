package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/websocket"
)

func newTestNotificationService() *NotificationService {
	hub := websocket.NewHub()
	go hub.Run()
	return NewNotificationService(hub)
}

func TestCreateFromContactThenList(t *testing.T) {
	setup()
	defer teardown()

	service := newTestNotificationService()

	contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, database.GetDB().Create(contact).Error)

	_, before, err := service.List(50, 0)
	assert.NoError(t, err)

	n, err := service.CreateFromContact(contact)
	assert.NoError(t, err)
	assert.False(t, n.Read)
	assert.Equal(t, model.NotificationTypeContact, n.Type)
	assert.Contains(t, n.Title, "A")

	notifications, after, err := service.List(50, 0)
	assert.NoError(t, err)
	assert.Equal(t, before+1, after)
	assert.Equal(t, n.Id, notifications[0].Id)
	assert.False(t, notifications[0].Read)
}

func TestMarkReadIdempotent(t *testing.T) {
	setup()
	defer teardown()

	service := newTestNotificationService()
	n, err := service.CreateSystem("title", "body")
	assert.NoError(t, err)

	first, err := service.MarkRead(n.Id)
	assert.NoError(t, err)
	assert.True(t, first.Read)

	_, unread, err := service.List(50, 0)
	assert.NoError(t, err)

	// Second call changes nothing
	second, err := service.MarkRead(n.Id)
	assert.NoError(t, err)
	assert.True(t, second.Read)

	_, unreadAgain, err := service.List(50, 0)
	assert.NoError(t, err)
	assert.Equal(t, unread, unreadAgain)
}

func TestMarkAllRead(t *testing.T) {
	setup()
	defer teardown()

	service := newTestNotificationService()
	for i := 0; i < 3; i++ {
		_, err := service.CreateSystem("title", "body")
		assert.NoError(t, err)
	}

	assert.NoError(t, service.MarkAllRead())

	notifications, unread, err := service.List(50, 0)
	assert.NoError(t, err)
	assert.Zero(t, unread)
	for _, n := range notifications {
		assert.True(t, n.Read)
	}
}

func TestDeleteNotification(t *testing.T) {
	setup()
	defer teardown()

	service := newTestNotificationService()
	n, err := service.CreateSystem("title", "body")
	assert.NoError(t, err)

	_, before, err := service.List(50, 0)
	assert.NoError(t, err)

	assert.NoError(t, service.Delete(n.Id))

	notifications, after, err := service.List(50, 0)
	assert.NoError(t, err)
	assert.Equal(t, before-1, after)
	for _, item := range notifications {
		assert.NotEqual(t, n.Id, item.Id)
	}

	// Deleting again reports not found
	assert.ErrorIs(t, service.Delete(n.Id), gorm.ErrRecordNotFound)
}

func TestPruneRead(t *testing.T) {
	setup()
	defer teardown()

	service := newTestNotificationService()
	n, err := service.CreateSystem("old", "body")
	assert.NoError(t, err)
	_, err = service.MarkRead(n.Id)
	assert.NoError(t, err)

	// Cutoff in the future catches the read notification
	pruned, err := service.PruneRead(n.CreatedAt + 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, pruned)

	// Unread notifications survive pruning regardless of age
	fresh, err := service.CreateSystem("fresh", "body")
	assert.NoError(t, err)
	pruned, err = service.PruneRead(fresh.CreatedAt + 1)
	assert.NoError(t, err)
	assert.Zero(t, pruned)
}
