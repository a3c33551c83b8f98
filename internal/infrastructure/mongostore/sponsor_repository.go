package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

type SponsorRepository struct {
	coll *mongo.Collection
}

func (r *SponsorRepository) Create(ctx context.Context, sponsor *entity.Sponsor) (err error) {
	defer observe("sponsor.create", time.Now(), &err)

	result, err := r.coll.InsertOne(ctx, newSponsorDocument(sponsor))
	if err != nil {
		return apperror.Unavailable(err, "не удалось создать спонсора")
	}
	sponsor.ID = insertedID(result)
	return nil
}

func (r *SponsorRepository) FindByID(ctx context.Context, id string) (_ *entity.Sponsor, err error) {
	defer observe("sponsor.find_by_id", time.Now(), &err)

	oid, err := parseObjectID(id, apperror.ErrInvalidSponsorID)
	if err != nil {
		return nil, err
	}

	var doc sponsorDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.ErrSponsorNotFound
		}
		return nil, apperror.Unavailable(err, "не удалось получить спонсора")
	}
	return doc.toEntity(), nil
}

func (r *SponsorRepository) List(ctx context.Context, filter repository.SponsorFilter) (_ []*entity.Sponsor, err error) {
	defer observe("sponsor.list", time.Now(), &err)

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, apperror.Unavailable(err, "не удалось получить список спонсоров")
	}

	var docs []sponsorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperror.Unavailable(err, "не удалось прочитать список спонсоров")
	}

	result := make([]*entity.Sponsor, len(docs))
	for i := range docs {
		result[i] = docs[i].toEntity()
	}
	return result, nil
}

func (r *SponsorRepository) UpdateStatus(ctx context.Context, id string, status valueobject.SponsorStatus, at time.Time) (err error) {
	defer observe("sponsor.update_status", time.Now(), &err)
	return r.setFields(ctx, id, bson.M{"status": string(status), "updated_at": at})
}

func (r *SponsorRepository) UpdateNotes(ctx context.Context, id string, notes string, at time.Time) (err error) {
	defer observe("sponsor.update_notes", time.Now(), &err)
	return r.setFields(ctx, id, bson.M{"notes": notes, "updated_at": at})
}

// setFields обновляет поля одним $set; MatchedCount == 0 означает NOT_FOUND.
func (r *SponsorRepository) setFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := parseObjectID(id, apperror.ErrInvalidSponsorID)
	if err != nil {
		return err
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return apperror.Unavailable(err, "не удалось обновить спонсора")
	}
	if result.MatchedCount == 0 {
		return apperror.ErrSponsorNotFound
	}
	return nil
}

func (r *SponsorRepository) CountByStatus(ctx context.Context, status valueobject.SponsorStatus) (_ int, err error) {
	defer observe("sponsor.count_by_status", time.Now(), &err)

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, apperror.Unavailable(err, "не удалось посчитать спонсоров")
	}
	return int(count), nil
}

type sponsorDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Industry     string             `bson:"industry"`
	Location     string             `bson:"location"`
	Email        *string            `bson:"email,omitempty"`
	Phone        *string            `bson:"phone,omitempty"`
	Website      *string            `bson:"website,omitempty"`
	Status       string             `bson:"status"`
	ProposalID   *string            `bson:"proposal_id,omitempty"`
	Notes        *string            `bson:"notes,omitempty"`
	NextFollowUp *time.Time         `bson:"next_follow_up,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func newSponsorDocument(s *entity.Sponsor) sponsorDocument {
	return sponsorDocument{
		Name:         s.Name,
		Industry:     s.Industry,
		Location:     s.Location,
		Email:        s.Email,
		Phone:        s.Phone,
		Website:      s.Website,
		Status:       string(s.Status),
		ProposalID:   s.ProposalID,
		Notes:        s.Notes,
		NextFollowUp: s.NextFollowUp,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (d *sponsorDocument) toEntity() *entity.Sponsor {
	return &entity.Sponsor{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Industry:     d.Industry,
		Location:     d.Location,
		Email:        d.Email,
		Phone:        d.Phone,
		Website:      d.Website,
		Status:       valueobject.SponsorStatus(d.Status),
		ProposalID:   d.ProposalID,
		Notes:        d.Notes,
		NextFollowUp: d.NextFollowUp,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
