package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

type ProposalRepository struct {
	coll *mongo.Collection
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *entity.Proposal) (err error) {
	defer observe("proposal.create", time.Now(), &err)

	result, err := r.coll.InsertOne(ctx, newProposalDocument(proposal))
	if err != nil {
		return apperror.Unavailable(err, "не удалось сохранить предложение")
	}
	proposal.ID = insertedID(result)
	return nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id string) (_ *entity.Proposal, err error) {
	defer observe("proposal.find_by_id", time.Now(), &err)

	oid, err := parseObjectID(id, apperror.ErrInvalidProposalID)
	if err != nil {
		return nil, err
	}

	var doc proposalDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.ErrProposalNotFound
		}
		return nil, apperror.Unavailable(err, "не удалось получить предложение")
	}
	return doc.toEntity(), nil
}

type tierDocument struct {
	Name     string   `bson:"name"`
	Price    float64  `bson:"price"`
	Benefits []string `bson:"benefits"`
}

type proposalDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Description      string             `bson:"description"`
	Date             *string            `bson:"date,omitempty"`
	Location         *string            `bson:"location,omitempty"`
	AudienceSummary  string             `bson:"audience_summary"`
	ValueProposition []string           `bson:"value_proposition"`
	Tiers            []tierDocument     `bson:"tiers"`
	Objectives       []string           `bson:"objectives"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func newProposalDocument(p *entity.Proposal) proposalDocument {
	doc := proposalDocument{
		Title:            p.Title,
		Description:      p.Description,
		Date:             p.Date,
		Location:         p.Location,
		AudienceSummary:  p.AudienceSummary,
		ValueProposition: p.ValueProposition,
		Objectives:       p.Objectives,
		CreatedAt:        p.CreatedAt,
		Tiers:            make([]tierDocument, len(p.Tiers)),
	}
	for i, tier := range p.Tiers {
		doc.Tiers[i] = tierDocument{Name: tier.Name, Price: tier.Price, Benefits: tier.Benefits}
	}
	if doc.Objectives == nil {
		doc.Objectives = []string{}
	}
	return doc
}

func (d *proposalDocument) toEntity() *entity.Proposal {
	p := &entity.Proposal{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		Description:      d.Description,
		Date:             d.Date,
		Location:         d.Location,
		AudienceSummary:  d.AudienceSummary,
		ValueProposition: d.ValueProposition,
		Objectives:       d.Objectives,
		CreatedAt:        d.CreatedAt,
		Tiers:            make([]entity.BenefitTier, len(d.Tiers)),
	}
	for i, tier := range d.Tiers {
		p.Tiers[i] = entity.BenefitTier{Name: tier.Name, Price: tier.Price, Benefits: tier.Benefits}
	}
	if p.Objectives == nil {
		p.Objectives = []string{}
	}
	return p
}
