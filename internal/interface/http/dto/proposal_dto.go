package dto

import (
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
)

type ProposalInputRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Date               *string  `json:"date"`
	Location           *string  `json:"location"`
	AudienceSize       *int     `json:"audience_size" binding:"omitempty,gte=0"`
	Demographics       *string  `json:"demographics"`
	EngagementChannels []string `json:"engagement_channels"`
	Objectives         []string `json:"objectives"`
	IndustriesTarget   []string `json:"industries_target"`
}

func (r ProposalInputRequest) ToEntity() entity.ProposalInput {
	return entity.ProposalInput{
		Title:              r.Title,
		Description:        r.Description,
		Date:               r.Date,
		Location:           r.Location,
		AudienceSize:       r.AudienceSize,
		Demographics:       r.Demographics,
		EngagementChannels: r.EngagementChannels,
		Objectives:         r.Objectives,
		IndustriesTarget:   r.IndustriesTarget,
	}
}

type BenefitTierResponse struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Benefits []string `json:"benefits"`
}

type ProposalResponse struct {
	ID               string                `json:"id,omitempty"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Date             *string               `json:"date"`
	Location         *string               `json:"location"`
	AudienceSummary  string                `json:"audience_summary"`
	ValueProposition []string              `json:"value_proposition"`
	Tiers            []BenefitTierResponse `json:"tiers"`
	Objectives       []string              `json:"objectives"`
	CreatedAt        *time.Time            `json:"created_at,omitempty"`
}

func ToProposalResponse(proposal *entity.Proposal) ProposalResponse {
	resp := ProposalResponse{
		ID:               proposal.ID,
		Title:            proposal.Title,
		Description:      proposal.Description,
		Date:             proposal.Date,
		Location:         proposal.Location,
		AudienceSummary:  proposal.AudienceSummary,
		ValueProposition: proposal.ValueProposition,
		Objectives:       proposal.Objectives,
		Tiers:            make([]BenefitTierResponse, 0, len(proposal.Tiers)),
	}
	if resp.Objectives == nil {
		resp.Objectives = []string{}
	}
	if !proposal.CreatedAt.IsZero() {
		createdAt := proposal.CreatedAt
		resp.CreatedAt = &createdAt
	}
	for _, tier := range proposal.Tiers {
		resp.Tiers = append(resp.Tiers, BenefitTierResponse{
			Name:     tier.Name,
			Price:    tier.Price,
			Benefits: tier.Benefits,
		})
	}
	return resp
}
