package service

import (
	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
)

// GalleryService manages the public image gallery.
type GalleryService struct{}

func (s *GalleryService) GetItems(category string) ([]*model.GalleryItem, error) {
	db := database.GetDB()
	query := db.Model(model.GalleryItem{}).Order("sort_order ASC, id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []*model.GalleryItem
	err := query.Find(&items).Error
	return items, err
}

func (s *GalleryService) GetItem(id int) (*model.GalleryItem, error) {
	db := database.GetDB()
	item := &model.GalleryItem{}
	err := db.Model(model.GalleryItem{}).Where("id = ?", id).First(item).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) AddItem(item *model.GalleryItem) error {
	db := database.GetDB()
	return db.Create(item).Error
}

func (s *GalleryService) UpdateItem(item *model.GalleryItem) error {
	db := database.GetDB()
	return db.Save(item).Error
}

func (s *GalleryService) DeleteItem(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.GalleryItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
