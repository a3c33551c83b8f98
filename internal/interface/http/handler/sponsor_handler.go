package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/dto"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/response"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/sponsor"
)

type SponsorHandler struct {
	findSponsorsUC  *sponsor.FindSponsorsUseCase
	createSponsorUC *sponsor.CreateSponsorUseCase
	listSponsorsUC  *sponsor.ListSponsorsUseCase
	getSponsorUC    *sponsor.GetSponsorUseCase
	updateStatusUC  *sponsor.UpdateSponsorStatusUseCase
	addNoteUC       *sponsor.AddSponsorNoteUseCase
}

func NewSponsorHandler(
	findSponsorsUC *sponsor.FindSponsorsUseCase,
	createSponsorUC *sponsor.CreateSponsorUseCase,
	listSponsorsUC *sponsor.ListSponsorsUseCase,
	getSponsorUC *sponsor.GetSponsorUseCase,
	updateStatusUC *sponsor.UpdateSponsorStatusUseCase,
	addNoteUC *sponsor.AddSponsorNoteUseCase,
) *SponsorHandler {
	return &SponsorHandler{
		findSponsorsUC:  findSponsorsUC,
		createSponsorUC: createSponsorUC,
		listSponsorsUC:  listSponsorsUC,
		getSponsorUC:    getSponsorUC,
		updateStatusUC:  updateStatusUC,
		addNoteUC:       addNoteUC,
	}
}

// FindSponsors возвращает кандидатов из каталога; в хранилище ничего не пишет.
func (h *SponsorHandler) FindSponsors(c *gin.Context) {
	var req dto.FindSponsorsRequest
	if !bindJSON(c, &req) {
		return
	}

	limit := sponsor.DefaultFindLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	found, err := h.findSponsorsUC.Execute(req.Location, req.Industries, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSponsorResponses(found))
}

func (h *SponsorHandler) CreateSponsor(c *gin.Context) {
	var req dto.CreateSponsorRequest
	if !bindJSON(c, &req) {
		return
	}

	nextFollowUp, err := dto.ParseOptionalDate(req.NextFollowUp)
	if err != nil {
		response.BadRequest(c, "некорректный формат next_follow_up")
		return
	}

	created, err := h.createSponsorUC.Execute(c.Request.Context(), sponsor.CreateSponsorInput{
		Name:         req.Name,
		Industry:     req.Industry,
		Location:     req.Location,
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		Status:       req.Status,
		ProposalID:   req.ProposalID,
		Notes:        req.Notes,
		NextFollowUp: nextFollowUp,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.IDResponse{ID: created.ID})
}

// ListSponsors обрабатывает GET /api/sponsors?status=.
func (h *SponsorHandler) ListSponsors(c *gin.Context) {
	sponsors, err := h.listSponsorsUC.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSponsorResponses(sponsors))
}

func (h *SponsorHandler) GetSponsor(c *gin.Context) {
	s, err := h.getSponsorUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSponsorResponse(s))
}

func (h *SponsorHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateSponsorStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.updateStatusUC.Execute(c.Request.Context(), req.SponsorID, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.OKResponse{OK: true})
}

func (h *SponsorHandler) AddNote(c *gin.Context) {
	var req dto.AddSponsorNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.addNoteUC.Execute(c.Request.Context(), req.SponsorID, req.Note); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.OKResponse{OK: true})
}
