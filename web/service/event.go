package service

import (
	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
)

// EventService manages cultural events shown on the public site.
type EventService struct{}

func (s *EventService) GetEvents(publishedOnly bool) ([]*model.Event, error) {
	db := database.GetDB()
	query := db.Model(model.Event{}).Order("starts_at ASC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var events []*model.Event
	err := query.Find(&events).Error
	return events, err
}

func (s *EventService) GetEvent(id int) (*model.Event, error) {
	db := database.GetDB()
	event := &model.Event{}
	err := db.Model(model.Event{}).Where("id = ?", id).First(event).Error
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) AddEvent(event *model.Event) error {
	db := database.GetDB()
	return db.Create(event).Error
}

func (s *EventService) UpdateEvent(event *model.Event) error {
	db := database.GetDB()
	return db.Save(event).Error
}

func (s *EventService) DeleteEvent(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
