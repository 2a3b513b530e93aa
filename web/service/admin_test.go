package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velmara/heritage-panel/config"
)

func TestCheckAdmin(t *testing.T) {
	setup()
	defer teardown()

	service := AdminService{}

	// Seeded default admin
	admin := service.CheckAdmin(config.GetDefaultAdminEmail(), config.GetDefaultAdminPassword())
	assert.NotNil(t, admin)
	assert.Equal(t, config.GetDefaultAdminEmail(), admin.Email)

	// Wrong password and unknown email are indistinguishable
	assert.Nil(t, service.CheckAdmin(config.GetDefaultAdminEmail(), "wrong"))
	assert.Nil(t, service.CheckAdmin("nobody@example.org", "wrong"))
}

func TestUpdateProfile(t *testing.T) {
	setup()
	defer teardown()

	service := AdminService{}
	admin := service.CheckAdmin(config.GetDefaultAdminEmail(), config.GetDefaultAdminPassword())
	assert.NotNil(t, admin)

	// Username/email change without password
	updated, err := service.UpdateProfile(admin.Id, "curator", "curator@example.org", "", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "curator", updated.Username)
	assert.Equal(t, "curator@example.org", updated.Email)

	// Password change requires matching current password
	_, err = service.UpdateProfile(admin.Id, "", "", "wrong", "newpass", "newpass")
	assert.ErrorIs(t, err, ErrInvalidCurrentPassword)

	// Confirmation must equal the new password
	_, err = service.UpdateProfile(admin.Id, "", "", config.GetDefaultAdminPassword(), "newpass", "other")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	// Successful change
	_, err = service.UpdateProfile(admin.Id, "", "", config.GetDefaultAdminPassword(), "newpass", "newpass")
	assert.NoError(t, err)
	assert.Nil(t, service.CheckAdmin("curator@example.org", config.GetDefaultAdminPassword()))
	assert.NotNil(t, service.CheckAdmin("curator@example.org", "newpass"))
}

func TestResetPassword(t *testing.T) {
	setup()
	defer teardown()

	service := AdminService{}

	err := service.ResetPassword(config.GetDefaultAdminEmail(), "changed")
	assert.NoError(t, err)
	assert.NotNil(t, service.CheckAdmin(config.GetDefaultAdminEmail(), "changed"))

	err = service.ResetPassword("nobody@example.org", "changed")
	assert.Error(t, err)
}
