package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/util/crypto"
)

var (
	// ErrInvalidCurrentPassword is returned when a password change is
	// requested with a wrong current password.
	ErrInvalidCurrentPassword = errors.New("current password does not match")
	// ErrPasswordMismatch is returned when the confirmation does not
	// equal the new password.
	ErrPasswordMismatch = errors.New("password confirmation does not match")
)

// AdminService handles administrator lookup, credential checks and
// profile updates.
type AdminService struct{}

func (s *AdminService) GetAdmin(id int) (*model.Admin, error) {
	db := database.GetDB()
	admin := &model.Admin{}
	err := db.Model(model.Admin{}).Where("id = ?", id).First(admin).Error
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// CheckAdmin verifies an email/password pair. It returns nil both for
// an unknown email and a wrong password; callers must not distinguish
// the two.
func (s *AdminService) CheckAdmin(email string, password string) *model.Admin {
	db := database.GetDB()

	admin := &model.Admin{}
	err := db.Model(model.Admin{}).Where("email = ?", email).First(admin).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check admin err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(admin.PasswordHash, password) {
		return nil
	}
	return admin
}

// UpdateProfile changes username/email and, when newPassword is set,
// the password hash. A password change requires the matching current
// password and an equal confirmation.
func (s *AdminService) UpdateProfile(id int, username, email, currentPassword, newPassword, confirmPassword string) (*model.Admin, error) {
	admin, err := s.GetAdmin(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if username != "" {
		updates["username"] = username
	}
	if email != "" {
		updates["email"] = email
	}

	if newPassword != "" {
		if newPassword != confirmPassword {
			return nil, ErrPasswordMismatch
		}
		if !crypto.CheckPasswordHash(admin.PasswordHash, currentPassword) {
			return nil, ErrInvalidCurrentPassword
		}
		hash, err := crypto.HashPasswordAsBcrypt(newPassword)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}

	db := database.GetDB()
	err = db.Model(model.Admin{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return s.GetAdmin(id)
}

// ResetPassword sets a new password for the admin with the given email.
// Used by the CLI, not exposed over HTTP.
func (s *AdminService) ResetPassword(email string, newPassword string) error {
	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	db := database.GetDB()
	result := db.Model(model.Admin{}).Where("email = ?", email).Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
