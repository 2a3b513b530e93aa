package service

import (
	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
)

// CollaboratorService manages partner organizations shown on the site.
type CollaboratorService struct{}

func (s *CollaboratorService) GetCollaborators() ([]*model.Collaborator, error) {
	db := database.GetDB()
	var collaborators []*model.Collaborator
	err := db.Model(model.Collaborator{}).
		Order("sort_order ASC, id ASC").
		Find(&collaborators).
		Error
	return collaborators, err
}

func (s *CollaboratorService) GetCollaborator(id int) (*model.Collaborator, error) {
	db := database.GetDB()
	collaborator := &model.Collaborator{}
	err := db.Model(model.Collaborator{}).Where("id = ?", id).First(collaborator).Error
	if err != nil {
		return nil, err
	}
	return collaborator, nil
}

func (s *CollaboratorService) AddCollaborator(collaborator *model.Collaborator) error {
	db := database.GetDB()
	return db.Create(collaborator).Error
}

func (s *CollaboratorService) UpdateCollaborator(collaborator *model.Collaborator) error {
	db := database.GetDB()
	return db.Save(collaborator).Error
}

func (s *CollaboratorService) DeleteCollaborator(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Collaborator{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
