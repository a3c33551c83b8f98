package proposal

import (
	"context"
	"strings"

	"github.com/h2non/filetype"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

const fallbackContentType = "application/octet-stream"

var filenameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "\"", "", "\n", "", "\r", "")

// DocumentRenderer превращает готовое предложение в документ (например, PDF).
type DocumentRenderer interface {
	RenderProposal(proposal *entity.Proposal) ([]byte, error)
}

type ExportedDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportProposalUseCase синтезирует предложение и отдаёт его рендереру.
// Снимок при экспорте не сохраняется.
type ExportProposalUseCase struct {
	renderer DocumentRenderer
}

func NewExportProposalUseCase(renderer DocumentRenderer) *ExportProposalUseCase {
	return &ExportProposalUseCase{renderer: renderer}
}

func (uc *ExportProposalUseCase) Execute(ctx context.Context, input entity.ProposalInput) (*ExportedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proposal, err := Synthesize(input)
	if err != nil {
		return nil, err
	}

	content, err := uc.renderer.RenderProposal(proposal)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сформировать документ")
	}

	contentType, ext := fallbackContentType, "bin"
	if kind, err := filetype.Match(content); err == nil && kind != filetype.Unknown {
		contentType, ext = kind.MIME.Value, kind.Extension
	}

	return &ExportedDocument{
		FileName:    "proposal_" + sanitizeFilename(proposal.Title) + "." + ext,
		ContentType: contentType,
		Content:     content,
	}, nil
}

// sanitizeFilename заменяет пробелы и удаляет символы, опасные для Content-Disposition.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "..", "")
	name = filenameReplacer.Replace(name)
	if name == "" {
		name = "proposal"
	}
	return name
}
