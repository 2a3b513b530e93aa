package service

import (
	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
)

// JobPostingService manages open positions listed on the site.
type JobPostingService struct{}

func (s *JobPostingService) GetPostings(activeOnly bool) ([]*model.JobPosting, error) {
	db := database.GetDB()
	query := db.Model(model.JobPosting{}).Order("created_at DESC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var postings []*model.JobPosting
	err := query.Find(&postings).Error
	return postings, err
}

func (s *JobPostingService) GetPosting(id int) (*model.JobPosting, error) {
	db := database.GetDB()
	posting := &model.JobPosting{}
	err := db.Model(model.JobPosting{}).Where("id = ?", id).First(posting).Error
	if err != nil {
		return nil, err
	}
	return posting, nil
}

func (s *JobPostingService) AddPosting(posting *model.JobPosting) error {
	db := database.GetDB()
	return db.Create(posting).Error
}

func (s *JobPostingService) UpdatePosting(posting *model.JobPosting) error {
	db := database.GetDB()
	return db.Save(posting).Error
}

func (s *JobPostingService) DeletePosting(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.JobPosting{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
