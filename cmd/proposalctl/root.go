package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/dto"
)

// newRootCmd собирает CLI. Команды работают без хранилища.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "proposalctl",
		Short:         "Offline sponsorship proposal tools",
		Long:          "Generate proposals, export them to PDF and browse the local sponsor catalog without a running server.",
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(newGenerateCmd(), newExportCmd(), newFindCmd())
	return root
}

// readProposalInput читает JSON тела /api/proposals/generate из файла или stdin ("-").
func readProposalInput(cmd *cobra.Command, path string) (entity.ProposalInput, error) {
	var reader io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return entity.ProposalInput{}, fmt.Errorf("не удалось открыть %s: %w", path, err)
		}
		defer file.Close()
		reader = file
	}

	var req dto.ProposalInputRequest
	if err := json.NewDecoder(reader).Decode(&req); err != nil {
		return entity.ProposalInput{}, fmt.Errorf("некорректный JSON: %w", err)
	}
	return req.ToEntity(), nil
}

func printJSON(cmd *cobra.Command, value interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
