package dto

import (
	"time"

	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/pure_utils"
)

type APIPatron struct {
	Id           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	DateOfBirth  *time.Time      `json:"date_of_birth,omitempty"`
	Email        *string         `json:"email,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Address      *string         `json:"address,omitempty"`
	GovernmentId *string         `json:"government_id,omitempty"`
	Ssn          *string         `json:"ssn,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	Cases        []APICase       `json:"cases,omitempty"`
	Files        []APIPatronFile `json:"files,omitempty"`
}

func AdaptPatronDto(p models.Patron) APIPatron {
	return APIPatron{
		Id:           p.Id,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		DateOfBirth:  p.DateOfBirth,
		Email:        p.Email,
		Phone:        p.Phone,
		Address:      p.Address,
		GovernmentId: p.GovernmentId,
		Ssn:          p.Ssn,
		CreatedAt:    p.CreatedAt,
		Cases:        pure_utils.Map(p.Cases, AdaptCaseDto),
		Files:        pure_utils.Map(p.Files, AdaptPatronFileDto),
	}
}

type PatronBody struct {
	FirstName    string     `json:"first_name" binding:"required"`
	LastName     string     `json:"last_name" binding:"required"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Address      *string    `json:"address"`
	GovernmentId *string    `json:"government_id"`
	Ssn          *string    `json:"ssn"`
}
