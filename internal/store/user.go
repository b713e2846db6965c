package store

import (
	"github.com/fashioncollab/fashioncollab/internal/models"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User

	err := s.db.Where("id = ?", id).First(&user).Error

	if err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// FindByEmail resolves an invitee. Callers normalize the email first.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User

	err := s.db.Where("email = ?", email).First(&user).Error

	if err != nil {
		return nil, translate(err)
	}

	return &user, nil
}
