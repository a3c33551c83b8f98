package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/dto"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/response"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/tracking"
)

// TrackingHandler ведёт журнал контактов и follow-up.
type TrackingHandler struct {
	logInteractionUC   *tracking.LogInteractionUseCase
	listInteractionsUC *tracking.ListInteractionsUseCase
	scheduleFollowUpUC *tracking.ScheduleFollowUpUseCase
}

func NewTrackingHandler(
	logInteractionUC *tracking.LogInteractionUseCase,
	listInteractionsUC *tracking.ListInteractionsUseCase,
	scheduleFollowUpUC *tracking.ScheduleFollowUpUseCase,
) *TrackingHandler {
	return &TrackingHandler{
		logInteractionUC:   logInteractionUC,
		listInteractionsUC: listInteractionsUC,
		scheduleFollowUpUC: scheduleFollowUpUC,
	}
}

func (h *TrackingHandler) LogInteraction(c *gin.Context) {
	var req dto.LogInteractionRequest
	if !bindJSON(c, &req) {
		return
	}

	interaction, err := h.logInteractionUC.Execute(c.Request.Context(), req.SponsorID, req.Type, *req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.IDResponse{ID: interaction.ID})
}

func (h *TrackingHandler) ListInteractions(c *gin.Context) {
	interactions, err := h.listInteractionsUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToInteractionResponses(interactions))
}

func (h *TrackingHandler) ScheduleFollowUp(c *gin.Context) {
	var req dto.ScheduleFollowUpRequest
	if !bindJSON(c, &req) {
		return
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		response.BadRequest(c, "некорректный формат due_date")
		return
	}

	followUp, err := h.scheduleFollowUpUC.Execute(c.Request.Context(), req.SponsorID, dueDate, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.IDResponse{ID: followUp.ID})
}
