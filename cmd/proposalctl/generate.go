package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/render"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/dto"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/proposal"
)

func newGenerateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a proposal and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readProposalInput(cmd, input)
			if err != nil {
				return err
			}
			p, err := proposal.Synthesize(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToProposalResponse(p))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "JSON file with event metadata, - for stdin")
	return cmd
}

func newExportCmd() *cobra.Command {
	var input, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a proposal to a PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readProposalInput(cmd, input)
			if err != nil {
				return err
			}

			uc := proposal.NewExportProposalUseCase(render.NewPDFRenderer())
			doc, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, doc.FileName)
			if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "JSON file with event metadata, - for stdin")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	return cmd
}
