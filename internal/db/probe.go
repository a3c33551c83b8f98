package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// PostgresProbe проверяет соединение для health endpoint.
type PostgresProbe struct {
	DB *sqlx.DB
}

func (p PostgresProbe) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

type MongoProbe struct {
	Client *mongo.Client
}

func (p MongoProbe) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
