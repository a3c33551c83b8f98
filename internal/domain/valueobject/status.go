package valueobject

import "github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"

// SponsorStatus — этап отношений со спонсором. Граф переходов не задаётся:
// любой статус можно сменить на любой другой.
type SponsorStatus string

const (
	SponsorStatusNew          SponsorStatus = "new"
	SponsorStatusContacted    SponsorStatus = "contacted"
	SponsorStatusInDiscussion SponsorStatus = "in_discussion"
	SponsorStatusPending      SponsorStatus = "pending"
	SponsorStatusConfirmed    SponsorStatus = "confirmed"
	SponsorStatusDeclined     SponsorStatus = "declined"
)

var sponsorStatuses = [...]SponsorStatus{
	SponsorStatusNew,
	SponsorStatusContacted,
	SponsorStatusInDiscussion,
	SponsorStatusPending,
	SponsorStatusConfirmed,
	SponsorStatusDeclined,
}

// SponsorStatuses возвращает все статусы в порядке воронки.
func SponsorStatuses() []SponsorStatus {
	out := make([]SponsorStatus, len(sponsorStatuses))
	copy(out, sponsorStatuses[:])
	return out
}

func (s SponsorStatus) IsValid() bool {
	for _, known := range sponsorStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s SponsorStatus) String() string {
	return string(s)
}

// NewSponsorStatus разбирает статус; пустая строка означает статус по умолчанию.
func NewSponsorStatus(status string) (SponsorStatus, error) {
	if status == "" {
		return SponsorStatusNew, nil
	}
	s := SponsorStatus(status)
	if !s.IsValid() {
		return "", apperror.Validation("некорректный статус спонсора")
	}
	return s, nil
}

type InteractionType string

const (
	InteractionTypeEmail   InteractionType = "email"
	InteractionTypeCall    InteractionType = "call"
	InteractionTypeMeeting InteractionType = "meeting"
	InteractionTypeNote    InteractionType = "note"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionTypeEmail, InteractionTypeCall, InteractionTypeMeeting, InteractionTypeNote:
		return true
	}
	return false
}

func NewInteractionType(value string) (InteractionType, error) {
	if value == "" {
		return InteractionTypeNote, nil
	}
	t := InteractionType(value)
	if !t.IsValid() {
		return "", apperror.Validation("некорректный тип взаимодействия")
	}
	return t, nil
}

// OutreachTone — тон письма. Пока шаблон один для всех тонов.
type OutreachTone string

const (
	OutreachToneProfessional OutreachTone = "professional"
	OutreachToneFriendly     OutreachTone = "friendly"
	OutreachToneConcise      OutreachTone = "concise"
)

func (t OutreachTone) IsValid() bool {
	switch t {
	case OutreachToneProfessional, OutreachToneFriendly, OutreachToneConcise:
		return true
	}
	return false
}

func NewOutreachTone(value string) (OutreachTone, error) {
	if value == "" {
		return OutreachToneProfessional, nil
	}
	t := OutreachTone(value)
	if !t.IsValid() {
		return "", apperror.Validation("некорректный тон письма")
	}
	return t, nil
}
