package websocket

import "github.com/velmara/heritage-panel/database/model"

// Broadcast helpers keyed to the notification lifecycle. They take the
// hub explicitly; callers hold a reference handed out at startup.

// BroadcastNewNotification announces a freshly persisted notification,
// together with the contact message that triggered it when present.
func BroadcastNewNotification(h *Hub, n *model.Notification, contact *model.ContactMessage) {
	if h == nil || n == nil {
		return
	}
	payload := map[string]any{"notification": n}
	if contact != nil {
		payload["contact"] = contact
	}
	h.Broadcast(EventNewNotification, payload)
}

// BroadcastNotificationUpdated announces a state change on one
// notification, typically the read flag flipping.
func BroadcastNotificationUpdated(h *Hub, n *model.Notification) {
	if h == nil || n == nil {
		return
	}
	h.Broadcast(EventNotificationUpdated, map[string]any{"notification": n})
}

// BroadcastAllRead announces that every notification has been marked read.
func BroadcastAllRead(h *Hub) {
	if h == nil {
		return
	}
	h.Broadcast(EventAllNotificationsRead, map[string]any{})
}

// BroadcastNotificationDeleted announces a deletion by id.
func BroadcastNotificationDeleted(h *Hub, id int) {
	if h == nil {
		return
	}
	h.Broadcast(EventNotificationDeleted, map[string]any{"id": id})
}
