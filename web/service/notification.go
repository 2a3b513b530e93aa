package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/websocket"
)

// NotificationService owns the notification lifecycle. Every mutation
// commits before its broadcast fires; broadcasts are best-effort and
// never roll a write back.
type NotificationService struct {
	hub *websocket.Hub
}

func NewNotificationService(hub *websocket.Hub) *NotificationService {
	return &NotificationService{hub: hub}
}

// CreateFromContact persists a notification for a just-submitted
// contact message and broadcasts it to the admin room.
func (s *NotificationService) CreateFromContact(contact *model.ContactMessage) (*model.Notification, error) {
	db := database.GetDB()
	n := &model.Notification{
		Type:      model.NotificationTypeContact,
		Title:     fmt.Sprintf("New contact message from %s", contact.Name),
		Message:   contact.Subject,
		ContactId: &contact.Id,
	}
	if err := db.Create(n).Error; err != nil {
		return nil, err
	}
	websocket.BroadcastNewNotification(s.hub, n, contact)
	return n, nil
}

// CreateSystem persists a system notification and broadcasts it.
func (s *NotificationService) CreateSystem(title, message string) (*model.Notification, error) {
	db := database.GetDB()
	n := &model.Notification{
		Type:    model.NotificationTypeSystem,
		Title:   title,
		Message: message,
	}
	if err := db.Create(n).Error; err != nil {
		return nil, err
	}
	websocket.BroadcastNewNotification(s.hub, n, nil)
	return n, nil
}

// List returns notifications newest first plus the authoritative unread
// count recomputed from storage.
func (s *NotificationService) List(limit, offset int) ([]*model.Notification, int64, error) {
	db := database.GetDB()
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var notifications []*model.Notification
	err := db.Model(model.Notification{}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).
		Error
	if err != nil {
		return nil, 0, err
	}

	var unread int64
	err = db.Model(model.Notification{}).Where("read = ?", false).Count(&unread).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

func (s *NotificationService) Get(id int) (*model.Notification, error) {
	db := database.GetDB()
	n := &model.Notification{}
	err := db.Model(model.Notification{}).Where("id = ?", id).First(n).Error
	if err != nil {
		return nil, err
	}
	return n, nil
}

// MarkRead flips one notification to read. Idempotent: a second call on
// an already-read notification changes nothing and broadcasts nothing.
func (s *NotificationService) MarkRead(id int) (*model.Notification, error) {
	n, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}

	db := database.GetDB()
	err = db.Model(model.Notification{}).Where("id = ?", id).Update("read", true).Error
	if err != nil {
		return nil, err
	}
	n.Read = true
	websocket.BroadcastNotificationUpdated(s.hub, n)
	return n, nil
}

// MarkReadForContact flips the unread notifications linked to a
// contact message to read, broadcasting each transition. Fired when an
// administrator opens the message.
func (s *NotificationService) MarkReadForContact(contactId int) error {
	db := database.GetDB()
	var notifications []*model.Notification
	err := db.Model(model.Notification{}).
		Where("contact_id = ? AND read = ?", contactId, false).
		Find(&notifications).Error
	if err != nil {
		return err
	}
	for _, n := range notifications {
		err = db.Model(model.Notification{}).Where("id = ?", n.Id).Update("read", true).Error
		if err != nil {
			return err
		}
		n.Read = true
		websocket.BroadcastNotificationUpdated(s.hub, n)
	}
	return nil
}

// MarkAllRead flips every notification to read.
func (s *NotificationService) MarkAllRead() error {
	db := database.GetDB()
	err := db.Model(model.Notification{}).Where("read = ?", false).Update("read", true).Error
	if err != nil {
		return err
	}
	websocket.BroadcastAllRead(s.hub)
	return nil
}

// Delete removes one notification.
func (s *NotificationService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	websocket.BroadcastNotificationDeleted(s.hub, id)
	return nil
}

// DeleteForContact removes every notification referencing a contact
// message. Used when the contact itself is deleted.
func (s *NotificationService) DeleteForContact(contactId int) error {
	db := database.GetDB()
	var notifications []*model.Notification
	err := db.Model(model.Notification{}).Where("contact_id = ?", contactId).Find(&notifications).Error
	if err != nil {
		return err
	}
	for _, n := range notifications {
		if err := db.Delete(&model.Notification{}, n.Id).Error; err != nil {
			return err
		}
		websocket.BroadcastNotificationDeleted(s.hub, n.Id)
	}
	return nil
}

// PruneRead deletes read notifications created before the cutoff and
// returns how many were removed.
func (s *NotificationService) PruneRead(cutoff int64) (int64, error) {
	db := database.GetDB()
	result := db.Where("read = ? AND created_at < ?", true, cutoff).Delete(&model.Notification{})
	return result.RowsAffected, result.Error
}
