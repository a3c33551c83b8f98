// Package memory хранит данные в памяти процесса. Используется в разработке
// (STORE_DRIVER=memory) и в тестах; данные теряются при перезапуске.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

// Store реализует все репозитории на одном мьютексе.
type Store struct {
	mu           sync.RWMutex
	proposals    map[uuid.UUID]entity.Proposal
	sponsors     map[uuid.UUID]*entity.Sponsor
	sponsorOrder []uuid.UUID
	interactions []entity.Interaction
	followUps    []entity.FollowUp
}

func NewStore() *Store {
	return &Store{
		proposals: make(map[uuid.UUID]entity.Proposal),
		sponsors:  make(map[uuid.UUID]*entity.Sponsor),
	}
}

func (s *Store) Proposals() repository.ProposalRepository {
	return proposalRepo{s}
}

func (s *Store) Sponsors() repository.SponsorRepository {
	return sponsorRepo{s}
}

func (s *Store) Interactions() repository.InteractionRepository {
	return interactionRepo{s}
}

func (s *Store) FollowUps() repository.FollowUpRepository {
	return followUpRepo{s}
}

type proposalRepo struct{ s *Store }

func (r proposalRepo) Create(_ context.Context, proposal *entity.Proposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := uuid.New()
	proposal.ID = id.String()
	r.s.proposals[id] = cloneProposal(proposal)
	return nil
}

func (r proposalRepo) FindByID(_ context.Context, id string) (*entity.Proposal, error) {
	proposalID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrInvalidProposalID
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.proposals[proposalID]
	if !ok {
		return nil, apperror.ErrProposalNotFound
	}
	out := cloneProposal(&stored)
	return &out, nil
}

type sponsorRepo struct{ s *Store }

func (r sponsorRepo) Create(_ context.Context, sponsor *entity.Sponsor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := uuid.New()
	sponsor.ID = id.String()
	stored := *sponsor
	r.s.sponsors[id] = &stored
	r.s.sponsorOrder = append(r.s.sponsorOrder, id)
	return nil
}

func (r sponsorRepo) FindByID(_ context.Context, id string) (*entity.Sponsor, error) {
	sponsorID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrInvalidSponsorID
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.sponsors[sponsorID]
	if !ok {
		return nil, apperror.ErrSponsorNotFound
	}
	out := *stored
	return &out, nil
}

func (r sponsorRepo) List(_ context.Context, filter repository.SponsorFilter) ([]*entity.Sponsor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*entity.Sponsor, 0)
	for _, id := range r.s.sponsorOrder {
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
		stored := r.s.sponsors[id]
		if filter.Status != "" && string(stored.Status) != filter.Status {
			continue
		}
		out := *stored
		result = append(result, &out)
	}
	return result, nil
}

func (r sponsorRepo) UpdateStatus(_ context.Context, id string, status valueobject.SponsorStatus, at time.Time) error {
	return r.update(id, func(sponsor *entity.Sponsor) {
		sponsor.Status = status
		sponsor.UpdatedAt = at
	})
}

func (r sponsorRepo) UpdateNotes(_ context.Context, id string, notes string, at time.Time) error {
	return r.update(id, func(sponsor *entity.Sponsor) {
		sponsor.Notes = &notes
		sponsor.UpdatedAt = at
	})
}

func (r sponsorRepo) update(id string, apply func(*entity.Sponsor)) error {
	sponsorID, err := uuid.Parse(id)
	if err != nil {
		return apperror.ErrInvalidSponsorID
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.sponsors[sponsorID]
	if !ok {
		return apperror.ErrSponsorNotFound
	}
	apply(stored)
	return nil
}

func (r sponsorRepo) CountByStatus(_ context.Context, status valueobject.SponsorStatus) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, sponsor := range r.s.sponsors {
		if sponsor.Status == status {
			count++
		}
	}
	return count, nil
}

type interactionRepo struct{ s *Store }

func (r interactionRepo) Create(_ context.Context, interaction *entity.Interaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	interaction.ID = uuid.NewString()
	r.s.interactions = append(r.s.interactions, *interaction)
	return nil
}

func (r interactionRepo) FindBySponsorID(_ context.Context, sponsorID string, limit int) ([]*entity.Interaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*entity.Interaction, 0)
	// Обходим с конца: записи добавляются в порядке создания.
	for i := len(r.s.interactions) - 1; i >= 0; i-- {
		if limit > 0 && len(result) == limit {
			break
		}
		if r.s.interactions[i].SponsorID != sponsorID {
			continue
		}
		out := r.s.interactions[i]
		result = append(result, &out)
	}
	return result, nil
}

type followUpRepo struct{ s *Store }

func (r followUpRepo) Create(_ context.Context, followUp *entity.FollowUp) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	followUp.ID = uuid.NewString()
	r.s.followUps = append(r.s.followUps, *followUp)
	return nil
}

func (r followUpRepo) FindUpcoming(_ context.Context, limit int) ([]*entity.FollowUp, error) {
	r.s.mu.RLock()
	sorted := make([]entity.FollowUp, len(r.s.followUps))
	copy(sorted, r.s.followUps)
	r.s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	result := make([]*entity.FollowUp, len(sorted))
	for i := range sorted {
		result[i] = &sorted[i]
	}
	return result, nil
}

func cloneProposal(p *entity.Proposal) entity.Proposal {
	out := *p
	out.ValueProposition = append([]string(nil), p.ValueProposition...)
	out.Objectives = append([]string{}, p.Objectives...)
	out.Tiers = make([]entity.BenefitTier, len(p.Tiers))
	for i, tier := range p.Tiers {
		out.Tiers[i] = entity.BenefitTier{
			Name:     tier.Name,
			Price:    tier.Price,
			Benefits: append([]string(nil), tier.Benefits...),
		}
	}
	return out
}

// Ping всегда успешен: хранилище живёт в процессе.
func (s *Store) Ping(context.Context) error {
	return nil
}
