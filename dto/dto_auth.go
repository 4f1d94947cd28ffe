package dto

import "errors"

type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (d RegisterDTO) Validate() error {
	if len(d.Username) < 3 || len(d.Username) > 32 {
		return errors.New("username must be 3-32 characters")
	}
	if d.Name == "" || d.Surname == "" {
		return errors.New("name and surname are required")
	}
	if d.Email == "" {
		return errors.New("email is required")
	}
	if len(d.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (d LoginDTO) Validate() error {
	if d.Username == "" || d.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

type LoginResponse struct {
	Status      string        `json:"status" example:"success"`
	AccessToken string        `json:"accessToken"`
	User        AuthorProfile `json:"user"`
}
