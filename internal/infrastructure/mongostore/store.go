// Package mongostore реализует репозитории поверх MongoDB.
// Коллекции: sponsor, proposal, interaction, followup.
package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ignatzorin/sponsorship-backend/internal/metrics"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

const (
	driverName = "mongo"

	sponsorCollection     = "sponsor"
	proposalCollection    = "proposal"
	interactionCollection = "interaction"
	followUpCollection    = "followup"
)

// Store группирует репозитории одной базы.
type Store struct {
	Proposals    *ProposalRepository
	Sponsors     *SponsorRepository
	Interactions *InteractionRepository
	FollowUps    *FollowUpRepository
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		Proposals:    &ProposalRepository{coll: db.Collection(proposalCollection)},
		Sponsors:     &SponsorRepository{coll: db.Collection(sponsorCollection)},
		Interactions: &InteractionRepository{coll: db.Collection(interactionCollection)},
		FollowUps:    &FollowUpRepository{coll: db.Collection(followUpCollection)},
	}
}

func parseObjectID(id string, invalid *apperror.AppError) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, invalid
	}
	return oid, nil
}

func insertedID(result *mongo.InsertOneResult) string {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func observe(operation string, start time.Time, err *error) {
	metrics.CollectStoreRequest(driverName, operation, *err, start)
}
