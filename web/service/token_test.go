package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velmara/heritage-panel/database/model"
)

func TestTokenRoundTrip(t *testing.T) {
	service := &TokenService{Secret: []byte("test-secret"), TTL: time.Minute}

	token, err := service.Mint(&model.Admin{Id: 7})
	assert.NoError(t, err)

	id, err := service.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestTokenExpired(t *testing.T) {
	service := &TokenService{Secret: []byte("test-secret"), TTL: -time.Minute}

	token, err := service.Mint(&model.Admin{Id: 7})
	assert.NoError(t, err)

	_, err = service.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenInvalid(t *testing.T) {
	service := &TokenService{Secret: []byte("test-secret"), TTL: time.Minute}

	_, err := service.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Signed with a different secret
	other := &TokenService{Secret: []byte("other-secret"), TTL: time.Minute}
	token, _ := other.Mint(&model.Admin{Id: 7})
	_, err = service.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
