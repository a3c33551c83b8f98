package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/dto"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/response"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/proposal"
)

type ProposalHandler struct {
	generateProposalUC *proposal.GenerateProposalUseCase
	exportProposalUC   *proposal.ExportProposalUseCase
	getProposalUC      *proposal.GetProposalUseCase
}

func NewProposalHandler(
	generateProposalUC *proposal.GenerateProposalUseCase,
	exportProposalUC *proposal.ExportProposalUseCase,
	getProposalUC *proposal.GetProposalUseCase,
) *ProposalHandler {
	return &ProposalHandler{
		generateProposalUC: generateProposalUC,
		exportProposalUC:   exportProposalUC,
		getProposalUC:      getProposalUC,
	}
}

// GenerateProposal обрабатывает POST /api/proposals/generate.
func (h *ProposalHandler) GenerateProposal(c *gin.Context) {
	var req dto.ProposalInputRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.generateProposalUC.Execute(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProposalResponse(p))
}

// ExportProposal обрабатывает POST /api/proposals/export/pdf и отдаёт файл как вложение.
func (h *ProposalHandler) ExportProposal(c *gin.Context) {
	var req dto.ProposalInputRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.exportProposalUC.Execute(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.getProposalUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProposalResponse(p))
}
