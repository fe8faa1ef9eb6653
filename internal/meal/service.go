package meal

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("meal does not exist")
var ErrForbidden = errors.New("meal belongs to another user")

type Service struct {
	DB *gorm.DB
}

// Input carries the four mutable fields shared by create and update.
type Input struct {
	Name        string
	Description string
	DateTime    time.Time
	IsOnDiet    bool
}

func (s *Service) Create(ctx context.Context, userID string, in Input) (*Meal, error) {
	m := Meal{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		DateTime:    in.DateTime,
		IsOnDiet:    in.IsOnDiet,
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Meal, error) {
	var rows []Meal
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// Get looks the meal up by id alone, then checks ownership, so an existing
// meal owned by someone else is distinguishable (forbidden, not absent).
func (s *Service) Get(ctx context.Context, userID, id string) (*Meal, error) {
	var m Meal
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if m.UserID != userID {
		return nil, ErrForbidden
	}
	return &m, nil
}

// Update overwrites all four mutable fields after the same existence and
// ownership checks as Get.
func (s *Service) Update(ctx context.Context, userID, id string, in Input) (*Meal, error) {
	m, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	m.Name = in.Name
	m.Description = in.Description
	m.DateTime = in.DateTime
	m.IsOnDiet = in.IsOnDiet

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	m, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(m).Error
}
