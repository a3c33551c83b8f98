package dto

import (
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/dashboard"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/outreach"
)

type DashboardResponse struct {
	Counts            map[string]int     `json:"counts"`
	UpcomingFollowUps []FollowUpResponse `json:"upcoming_followups"`
	Degraded          bool               `json:"degraded"`
}

func ToDashboardResponse(overview *dashboard.Overview) DashboardResponse {
	counts := make(map[string]int, len(overview.Counts))
	for _, status := range valueobject.SponsorStatuses() {
		counts[status.String()] = overview.Counts[status]
	}
	return DashboardResponse{
		Counts:            counts,
		UpcomingFollowUps: ToFollowUpResponses(overview.UpcomingFollowUps),
		Degraded:          overview.Degraded,
	}
}

type ComposeEmailRequest struct {
	SponsorID  string  `json:"sponsor_id"`
	ProposalID *string `json:"proposal_id"`
	Tone       string  `json:"tone"`
}

type EmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func ToEmailResponse(email *outreach.Email) EmailResponse {
	return EmailResponse{Subject: email.Subject, Body: email.Body}
}
