package service

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/websocket"
)

func newTestContactService() *ContactService {
	return NewContactService(newTestNotificationService())
}

func TestSubmitCreatesNotification(t *testing.T) {
	setup()
	defer teardown()

	service := newTestContactService()

	contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, service.Submit(contact))
	assert.Equal(t, model.ContactStatusNew, contact.Status)

	var notifications []*model.Notification
	err := database.GetDB().Where("contact_id = ?", contact.Id).Find(&notifications).Error
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)
}

func TestGetMarksNewAsRead(t *testing.T) {
	setup()
	defer teardown()

	service := newTestContactService()
	contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, service.Submit(contact))

	opened, err := service.Get(contact.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.ContactStatusRead, opened.Status)

	// Already-read messages keep their status
	again, err := service.Get(contact.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.ContactStatusRead, again.Status)
}

func awaitFrame(t *testing.T, member *websocket.Client) websocket.Message {
	t.Helper()
	select {
	case data := <-member.Send:
		var msg websocket.Message
		assert.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return websocket.Message{}
	}
}

func TestGetBroadcastsLinkedNotificationUpdate(t *testing.T) {
	setup()
	defer teardown()

	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()
	service := NewContactService(NewNotificationService(hub))

	member := websocket.NewClient(hub, nil)
	hub.Register(member)
	assert.Eventually(t, func() bool { return hub.MemberCount() == 1 }, time.Second, 5*time.Millisecond)

	contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, service.Submit(contact))
	assert.Equal(t, websocket.EventNewNotification, awaitFrame(t, member).Event)

	opened, err := service.Get(contact.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.ContactStatusRead, opened.Status)
	assert.Equal(t, websocket.EventNotificationUpdated, awaitFrame(t, member).Event)

	var n model.Notification
	assert.NoError(t, database.GetDB().Where("contact_id = ?", contact.Id).First(&n).Error)
	assert.True(t, n.Read)

	// reopening an already-read message broadcasts nothing further
	_, err = service.Get(contact.Id)
	assert.NoError(t, err)
	select {
	case data := <-member.Send:
		t.Fatalf("unexpected frame: %s", data)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	setup()
	defer teardown()

	service := newTestContactService()
	contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, service.Submit(contact))

	_, err := service.UpdateStatus(contact.Id, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := service.UpdateStatus(contact.Id, model.ContactStatusSpam)
	assert.NoError(t, err)
	assert.Equal(t, model.ContactStatusSpam, updated.Status)

	_, err = service.UpdateStatus(9999, model.ContactStatusRead)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReply(t *testing.T) {
	setup()
	defer teardown()

	service := newTestContactService()
	contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, service.Submit(contact))

	replied, err := service.Reply(contact.Id, "thanks for reaching out")
	assert.NoError(t, err)
	assert.Equal(t, model.ContactStatusReplied, replied.Status)
	assert.Equal(t, "thanks for reaching out", replied.Reply)
	assert.NotZero(t, replied.RepliedAt)
}

func TestDeleteCascadesNotifications(t *testing.T) {
	setup()
	defer teardown()

	service := newTestContactService()
	contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, service.Submit(contact))

	assert.NoError(t, service.Delete(contact.Id))

	var count int64
	err := database.GetDB().Model(model.Notification{}).
		Where("contact_id = ?", contact.Id).
		Count(&count).Error
	assert.NoError(t, err)
	assert.Zero(t, count)

	_, err = service.Get(contact.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListByStatus(t *testing.T) {
	setup()
	defer teardown()

	service := newTestContactService()
	for i := 0; i < 3; i++ {
		contact := &model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
		assert.NoError(t, service.Submit(contact))
	}

	contacts, err := service.List(model.ContactStatusNew, 50, 0)
	assert.NoError(t, err)
	assert.Len(t, contacts, 3)

	_, err = service.List("bogus", 50, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
