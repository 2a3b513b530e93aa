package websocket

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"

	"github.com/velmara/heritage-panel/database/model"
)

func waitForMembers(t *testing.T, hub *Hub, want int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return hub.MemberCount() == want
	}, time.Second, 5*time.Millisecond)
}

func receiveMessage(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case data := <-client.Send:
		var msg Message
		assert.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return Message{}
	}
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	first := NewClient(hub, nil)
	second := NewClient(hub, nil)
	hub.Register(first)
	hub.Register(second)
	waitForMembers(t, hub, 2)

	hub.Broadcast(EventNewNotification, map[string]any{"id": 1})

	for _, client := range []*Client{first, second} {
		msg := receiveMessage(t, client)
		assert.Equal(t, EventNewNotification, msg.Event)
		assert.NotZero(t, msg.Time)
	}
	assert.Eventually(t, func() bool {
		return hub.BroadcastsSent() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestHubUnregisteredReceivesNothing(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	member := NewClient(hub, nil)
	outsider := NewClient(hub, nil)
	hub.Register(member)
	waitForMembers(t, hub, 1)

	hub.Broadcast(EventAllNotificationsRead, map[string]any{})

	receiveMessage(t, member)
	select {
	case <-outsider.Send:
		t.Fatal("unadmitted connection received a broadcast")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := NewClient(hub, nil)
	hub.Register(client)
	waitForMembers(t, hub, 1)

	hub.Unregister(client)
	waitForMembers(t, hub, 0)

	// Send channel is closed on unregister
	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubKicksManySlowMembersWithoutStalling(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	clients := make([]*Client, 40)
	for i := range clients {
		clients[i] = NewClient(hub, nil)
		hub.Register(clients[i])
	}
	waitForMembers(t, hub, len(clients))

	// fill every send buffer so one fan-out kicks the whole room
	for _, c := range clients {
		for len(c.Send) < cap(c.Send) {
			c.Send <- []byte("{}")
		}
	}

	hub.Broadcast(EventNewNotification, nil)
	waitForMembers(t, hub, 0)

	// the hub still serves new members afterwards
	fresh := NewClient(hub, nil)
	hub.Register(fresh)
	waitForMembers(t, hub, 1)

	hub.Broadcast(EventNotificationUpdated, nil)
	assert.Equal(t, EventNotificationUpdated, receiveMessage(t, fresh).Event)
}

func TestHubPerConnectionOrdering(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := NewClient(hub, nil)
	hub.Register(client)
	waitForMembers(t, hub, 1)

	hub.Broadcast(EventNewNotification, map[string]any{"seq": 1})
	hub.Broadcast(EventNotificationUpdated, map[string]any{"seq": 2})
	hub.Broadcast(EventNotificationDeleted, map[string]any{"seq": 3})

	events := []EventType{
		receiveMessage(t, client).Event,
		receiveMessage(t, client).Event,
		receiveMessage(t, client).Event,
	}
	assert.Equal(t, []EventType{EventNewNotification, EventNotificationUpdated, EventNotificationDeleted}, events)
}

func TestBroadcastNewNotificationPayload(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := NewClient(hub, nil)
	hub.Register(client)
	waitForMembers(t, hub, 1)

	contactId := 3
	notification := &model.Notification{Id: 9, Type: model.NotificationTypeContact, Title: "t", ContactId: &contactId}
	contact := &model.ContactMessage{Id: 3, Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	BroadcastNewNotification(hub, notification, contact)

	msg := receiveMessage(t, client)
	assert.Equal(t, EventNewNotification, msg.Event)

	payload, ok := msg.Payload.(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, payload, "notification")
	assert.Contains(t, payload, "contact")

	// Redelivery of the same payload yields the same frame content
	BroadcastNewNotification(hub, notification, contact)
	again := receiveMessage(t, client)
	assert.Equal(t, msg.Event, again.Event)
	assert.Equal(t, msg.Payload, again.Payload)
}
