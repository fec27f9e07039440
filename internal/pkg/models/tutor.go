package models

import "time"

// Session is the identity of a logged-in tutor.
// It is loaded once per request and handed to the usecases.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}

// Tutor is the marketplace profile of a pet owner
type Tutor struct {
	ID           ID      `json:"tutorId,omitempty"`
	Name         string  `json:"nome"`
	Email        string  `json:"email"`
	Phone        string  `json:"telefone,omitempty"`
	Address      string  `json:"endereco,omitempty"`
	Photo        *string `json:"foto,omitempty"`
	RegisteredAt string  `json:"dataCadastro,omitempty"`
}

// RegisterRequest is the sign-up form
type RegisterRequest struct {
	Name            string `json:"nome" validate:"required,notblank,trimmedmin=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"senha" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmarSenha" validate:"required,eqfield=Password"`
}

// LoginRequest is the sign-in form
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6"`
}

// LoginResponse is what the marketplace returns on a successful login
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    ID     `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// AuthResponse is returned to the app after login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// Profile aggregates the tutor record with counters
type Profile struct {
	Tutor            *Tutor `json:"tutor"`
	PetCount         int    `json:"petCount"`
	AppointmentCount int    `json:"appointmentCount"`
}
