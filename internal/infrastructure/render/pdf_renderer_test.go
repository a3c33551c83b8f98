package render_test

import (
	"bytes"
	"testing"

	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/render"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/proposal"
)

func TestPDFRenderer_ProducesPDF(t *testing.T) {
	size := 1200
	p, err := proposal.Synthesize(entity.ProposalInput{
		Title:        "Spring Fair",
		Description:  "Outdoor community fair",
		AudienceSize: &size,
		Objectives:   []string{"Raise funds"},
	})
	require.NoError(t, err)

	content, err := render.NewPDFRenderer().RenderProposal(p)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	kind, err := filetype.Match(content)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", kind.MIME.Value)
}

func TestPDFRenderer_LongDescriptionSpansPages(t *testing.T) {
	description := ""
	for i := 0; i < 120; i++ {
		description += "Line of the event description\n"
	}
	p, err := proposal.Synthesize(entity.ProposalInput{Title: "Expo", Description: description})
	require.NoError(t, err)

	content, err := render.NewPDFRenderer().RenderProposal(p)
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(content, []byte("/Type /Page\n")), 1)
}
