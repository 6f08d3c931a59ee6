package services

import (
	"errors"
	"fmt"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type CrisisService struct{ db *gorm.DB }

func NewCrisisService(db *gorm.DB) *CrisisService { return &CrisisService{db: db} }

const crisisOrder = "priority desc, is_verified desc, created_at desc"

// List filters the directory. A region filter also matches "global" resources.
func (s *CrisisService) List(category, region string) ([]models.CrisisResource, error) {
	q := s.db.Order(crisisOrder)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if region != "" {
		q = q.Where("region IN ?", []string{region, "global"})
	}
	var resources []models.CrisisResource
	err := q.Find(&resources).Error
	return resources, err
}

// Emergency is the fast path: highest-priority resources only, capped.
func (s *CrisisService) Emergency(region string, limit int) ([]models.CrisisResource, error) {
	if limit <= 0 {
		limit = 5
	}
	q := s.db.Where("priority >= ?", 9).Order(crisisOrder).Limit(limit)
	if region != "" {
		q = q.Where("region IN ?", []string{region, "global"})
	}
	var resources []models.CrisisResource
	err := q.Find(&resources).Error
	return resources, err
}

func (s *CrisisService) Search(query string) ([]models.CrisisResource, error) {
	like := "%" + query + "%"
	var resources []models.CrisisResource
	err := s.db.
		Where("title LIKE ? OR description LIKE ?", like, like).
		Order(crisisOrder).
		Find(&resources).Error
	return resources, err
}

// LogAccess records directory usage. Resource id is optional so "viewed the
// list" events can be logged too.
func (s *CrisisService) LogAccess(userID uint, resourceID *uint, actionType string) error {
	if actionType == "" {
		return fmt.Errorf("%w: actionType is required", ErrValidation)
	}
	if resourceID != nil {
		var n int64
		if err := s.db.Model(&models.CrisisResource{}).Where("id = ?", *resourceID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
	}
	return s.db.Create(&models.CrisisAccessLog{
		UserID:     userID,
		ResourceID: resourceID,
		ActionType: actionType,
	}).Error
}

// ---- admin write path ----

func (s *CrisisService) Create(res *models.CrisisResource) error {
	if res.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if res.Region == "" {
		res.Region = "global"
	}
	return s.db.Create(res).Error
}

func (s *CrisisService) Update(id uint, res *models.CrisisResource) (*models.CrisisResource, error) {
	var existing models.CrisisResource
	err := s.db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res.ID = existing.ID
	res.CreatedAt = existing.CreatedAt
	if err := s.db.Save(res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (s *CrisisService) Delete(id uint) error {
	res := s.db.Delete(&models.CrisisResource{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Seed loads the baseline directory when it is empty.
func (s *CrisisService) Seed() error {
	var n int64
	if err := s.db.Model(&models.CrisisResource{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	baseline := []models.CrisisResource{
		{Title: "988 Suicide & Crisis Lifeline", Category: "hotline", Phone: "988", Region: "us", Priority: 10, IsVerified: true, Available: "24/7", Description: "Free, confidential support for people in distress."},
		{Title: "Crisis Text Line", Category: "text", TextNumber: "741741", Region: "us", Priority: 9, IsVerified: true, Available: "24/7", Description: "Text HOME to reach a volunteer crisis counselor."},
		{Title: "International Association for Suicide Prevention", Category: "local", Website: "https://www.iasp.info/resources/Crisis_Centres/", Region: "global", Priority: 8, IsVerified: true, Available: "varies", Description: "Directory of crisis centres worldwide."},
		{Title: "Samaritans", Category: "hotline", Phone: "116 123", Region: "uk", Priority: 9, IsVerified: true, Available: "24/7", Description: "Whatever you're going through, call free any time."},
		{Title: "SAMHSA National Helpline", Category: "hotline", Phone: "1-800-662-4357", Region: "us", Priority: 7, IsVerified: true, Available: "24/7", Description: "Treatment referral and information service."},
	}
	return s.db.Create(&baseline).Error
}
