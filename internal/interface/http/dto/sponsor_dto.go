package dto

import (
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
)

type FindSponsorsRequest struct {
	Location   string   `json:"location" binding:"required"`
	Industries []string `json:"industries"`
	Limit      *int     `json:"limit"`
}

type CreateSponsorRequest struct {
	Name         string  `json:"name" binding:"required"`
	Industry     string  `json:"industry" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website"`
	Status       string  `json:"status"`
	ProposalID   *string `json:"proposal_id"`
	Notes        *string `json:"notes"`
	NextFollowUp *string `json:"next_follow_up"`
}

type UpdateSponsorStatusRequest struct {
	SponsorID string `json:"sponsor_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type AddSponsorNoteRequest struct {
	SponsorID string `json:"sponsor_id" binding:"required"`
	Note      string `json:"note"`
}

type SponsorResponse struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name"`
	Industry     string     `json:"industry"`
	Location     string     `json:"location"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Website      *string    `json:"website"`
	Status       string     `json:"status"`
	ProposalID   *string    `json:"proposal_id"`
	Notes        *string    `json:"notes"`
	NextFollowUp *time.Time `json:"next_follow_up"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

func ToSponsorResponse(sponsor *entity.Sponsor) SponsorResponse {
	resp := SponsorResponse{
		ID:           sponsor.ID,
		Name:         sponsor.Name,
		Industry:     sponsor.Industry,
		Location:     sponsor.Location,
		Email:        sponsor.Email,
		Phone:        sponsor.Phone,
		Website:      sponsor.Website,
		Status:       string(sponsor.Status),
		ProposalID:   sponsor.ProposalID,
		Notes:        sponsor.Notes,
		NextFollowUp: sponsor.NextFollowUp,
	}
	// Кандидаты из каталога ещё не сохранены и не имеют временных меток.
	if !sponsor.CreatedAt.IsZero() {
		createdAt, updatedAt := sponsor.CreatedAt, sponsor.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

func ToSponsorResponses(sponsors []*entity.Sponsor) []SponsorResponse {
	responses := make([]SponsorResponse, 0, len(sponsors))
	for _, sponsor := range sponsors {
		responses = append(responses, ToSponsorResponse(sponsor))
	}
	return responses
}
