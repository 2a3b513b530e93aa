package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/logger"
)

// ErrInvalidStatus is returned for a status outside the closed
// enumeration.
var ErrInvalidStatus = errors.New("invalid contact status")

// ContactService handles visitor inquiries. Submission creates the
// linked notification after the contact write commits.
type ContactService struct {
	notificationService *NotificationService
}

func NewContactService(notificationService *NotificationService) *ContactService {
	return &ContactService{notificationService: notificationService}
}

// Submit persists a public contact-form submission and creates its
// notification. A notification failure is logged, not surfaced: the
// visitor's message is already stored.
func (s *ContactService) Submit(contact *model.ContactMessage) error {
	db := database.GetDB()
	contact.Status = model.ContactStatusNew
	if err := db.Create(contact).Error; err != nil {
		return err
	}

	if _, err := s.notificationService.CreateFromContact(contact); err != nil {
		logger.Warning("failed to create notification for contact:", err)
	}
	return nil
}

func (s *ContactService) List(status string, limit, offset int) ([]*model.ContactMessage, error) {
	db := database.GetDB()
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := db.Model(model.ContactMessage{}).Order("created_at DESC, id DESC")
	if status != "" {
		if !model.ValidContactStatus(status) {
			return nil, ErrInvalidStatus
		}
		query = query.Where("status = ?", status)
	}

	var contacts []*model.ContactMessage
	err := query.Limit(limit).Offset(offset).Find(&contacts).Error
	return contacts, err
}

// Get returns one contact message. Opening a new message moves it to
// read automatically.
func (s *ContactService) Get(id int) (*model.ContactMessage, error) {
	db := database.GetDB()
	contact := &model.ContactMessage{}
	err := db.Model(model.ContactMessage{}).Where("id = ?", id).First(contact).Error
	if err != nil {
		return nil, err
	}

	if contact.Status == model.ContactStatusNew {
		err = db.Model(model.ContactMessage{}).Where("id = ?", id).
			Update("status", model.ContactStatusRead).Error
		if err != nil {
			return nil, err
		}
		contact.Status = model.ContactStatusRead
		if err := s.notificationService.MarkReadForContact(id); err != nil {
			logger.Warning("failed to mark linked notification read:", err)
		}
	}
	return contact, nil
}

// UpdateStatus moves a contact message to another status in the closed
// enumeration.
func (s *ContactService) UpdateStatus(id int, status string) (*model.ContactMessage, error) {
	if !model.ValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}

	db := database.GetDB()
	result := db.Model(model.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	contact := &model.ContactMessage{}
	err := db.Model(model.ContactMessage{}).Where("id = ?", id).First(contact).Error
	return contact, err
}

// Reply stores the reply text and moves the message to replied.
func (s *ContactService) Reply(id int, reply string) (*model.ContactMessage, error) {
	db := database.GetDB()
	result := db.Model(model.ContactMessage{}).Where("id = ?", id).Updates(map[string]any{
		"reply":      reply,
		"replied_at": time.Now().Unix(),
		"status":     model.ContactStatusReplied,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	contact := &model.ContactMessage{}
	err := db.Model(model.ContactMessage{}).Where("id = ?", id).First(contact).Error
	return contact, err
}

// Delete removes a contact message together with the notifications that
// reference it.
func (s *ContactService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return s.notificationService.DeleteForContact(id)
}

// CountStale returns how many messages are still new past the cutoff.
func (s *ContactService) CountStale(cutoff int64) (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.ContactMessage{}).
		Where("status = ? AND created_at < ?", model.ContactStatusNew, cutoff).
		Count(&count).Error
	return count, err
}
