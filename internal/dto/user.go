package dto

import (
	"github.com/morisawa/ideapool/internal/models"
	"github.com/morisawa/ideapool/internal/utils"
)

// UserDTO represents a user profile in API responses. The password hash
// never leaves the credential store.
type UserDTO struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// TokenPairDTO is the response body for signup and login.
type TokenPairDTO struct {
	JWT          string `json:"jwt"`
	RefreshToken string `json:"refresh_token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: utils.GravatarURL(user.Email),
	}
}
