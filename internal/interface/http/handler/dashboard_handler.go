package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/dto"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/response"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/dashboard"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/outreach"
)

type DashboardHandler struct {
	overviewUC *dashboard.OverviewUseCase
}

func NewDashboardHandler(overviewUC *dashboard.OverviewUseCase) *DashboardHandler {
	return &DashboardHandler{overviewUC: overviewUC}
}

// Overview всегда отвечает 200; при сбое хранилища degraded=true.
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview := h.overviewUC.Execute(c.Request.Context())
	response.Success(c, dto.ToDashboardResponse(overview))
}

type OutreachHandler struct {
	composeEmailUC *outreach.ComposeEmailUseCase
}

func NewOutreachHandler(composeEmailUC *outreach.ComposeEmailUseCase) *OutreachHandler {
	return &OutreachHandler{composeEmailUC: composeEmailUC}
}

func (h *OutreachHandler) ComposeEmail(c *gin.Context) {
	var req dto.ComposeEmailRequest
	if !bindJSON(c, &req) {
		return
	}

	email, err := h.composeEmailUC.Execute(c.Request.Context(), outreach.ComposeEmailInput{
		SponsorID:  req.SponsorID,
		Tone:       req.Tone,
		ProposalID: req.ProposalID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToEmailResponse(email))
}
