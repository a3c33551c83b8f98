package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
)

// Допустимые форматы дат: полная метка RFC 3339 или календарная дата.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

type LogInteractionRequest struct {
	SponsorID string `json:"sponsor_id" binding:"required"`
	Type      string `json:"type"`
	Content   *string `json:"content" binding:"required"`
}

type ScheduleFollowUpRequest struct {
	SponsorID string  `json:"sponsor_id" binding:"required"`
	DueDate   string  `json:"due_date" binding:"required"`
	Note      *string `json:"note"`
}

type InteractionResponse struct {
	ID        string    `json:"id"`
	SponsorID string    `json:"sponsor_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type FollowUpResponse struct {
	ID        string    `json:"id"`
	SponsorID string    `json:"sponsor_id"`
	DueDate   time.Time `json:"due_date"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// ParseDate разбирает дату из запроса. Дата без зоны считается UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("некорректная дата %q", value)
}

// ParseOptionalDate возвращает nil для пустого значения.
func ParseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func ToInteractionResponses(interactions []*entity.Interaction) []InteractionResponse {
	responses := make([]InteractionResponse, 0, len(interactions))
	for _, interaction := range interactions {
		responses = append(responses, InteractionResponse{
			ID:        interaction.ID,
			SponsorID: interaction.SponsorID,
			Type:      string(interaction.Type),
			Content:   interaction.Content,
			CreatedAt: interaction.CreatedAt,
		})
	}
	return responses
}

func ToFollowUpResponses(followUps []*entity.FollowUp) []FollowUpResponse {
	responses := make([]FollowUpResponse, 0, len(followUps))
	for _, followUp := range followUps {
		responses = append(responses, FollowUpResponse{
			ID:        followUp.ID,
			SponsorID: followUp.SponsorID,
			DueDate:   followUp.DueDate,
			Note:      followUp.Note,
			CreatedAt: followUp.CreatedAt,
		})
	}
	return responses
}
