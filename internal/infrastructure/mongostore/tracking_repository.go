package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

type InteractionRepository struct {
	coll *mongo.Collection
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *entity.Interaction) (err error) {
	defer observe("interaction.create", time.Now(), &err)

	result, err := r.coll.InsertOne(ctx, interactionDocument{
		SponsorID: interaction.SponsorID,
		Type:      string(interaction.Type),
		Content:   interaction.Content,
		CreatedAt: interaction.CreatedAt,
	})
	if err != nil {
		return apperror.Unavailable(err, "не удалось записать взаимодействие")
	}
	interaction.ID = insertedID(result)
	return nil
}

func (r *InteractionRepository) FindBySponsorID(ctx context.Context, sponsorID string, limit int) (_ []*entity.Interaction, err error) {
	defer observe("interaction.find_by_sponsor", time.Now(), &err)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"sponsor_id": sponsorID}, opts)
	if err != nil {
		return nil, apperror.Unavailable(err, "не удалось получить журнал взаимодействий")
	}

	var docs []interactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperror.Unavailable(err, "не удалось прочитать журнал взаимодействий")
	}

	result := make([]*entity.Interaction, len(docs))
	for i, doc := range docs {
		result[i] = &entity.Interaction{
			ID:        doc.ID.Hex(),
			SponsorID: doc.SponsorID,
			Type:      valueobject.InteractionType(doc.Type),
			Content:   doc.Content,
			CreatedAt: doc.CreatedAt,
		}
	}
	return result, nil
}

type interactionDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SponsorID string             `bson:"sponsor_id"`
	Type      string             `bson:"type"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

type FollowUpRepository struct {
	coll *mongo.Collection
}

func (r *FollowUpRepository) Create(ctx context.Context, followUp *entity.FollowUp) (err error) {
	defer observe("followup.create", time.Now(), &err)

	result, err := r.coll.InsertOne(ctx, followUpDocument{
		SponsorID: followUp.SponsorID,
		DueDate:   followUp.DueDate,
		Note:      followUp.Note,
		CreatedAt: followUp.CreatedAt,
	})
	if err != nil {
		return apperror.Unavailable(err, "не удалось запланировать follow-up")
	}
	followUp.ID = insertedID(result)
	return nil
}

func (r *FollowUpRepository) FindUpcoming(ctx context.Context, limit int) (_ []*entity.FollowUp, err error) {
	defer observe("followup.find_upcoming", time.Now(), &err)

	opts := options.Find().
		SetSort(bson.D{{Key: "due_date", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Unavailable(err, "не удалось получить follow-up")
	}

	var docs []followUpDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperror.Unavailable(err, "не удалось прочитать follow-up")
	}

	result := make([]*entity.FollowUp, len(docs))
	for i, doc := range docs {
		result[i] = &entity.FollowUp{
			ID:        doc.ID.Hex(),
			SponsorID: doc.SponsorID,
			DueDate:   doc.DueDate,
			Note:      doc.Note,
			CreatedAt: doc.CreatedAt,
		}
	}
	return result, nil
}

type followUpDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SponsorID string             `bson:"sponsor_id"`
	DueDate   time.Time          `bson:"due_date"`
	Note      *string            `bson:"note,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}
