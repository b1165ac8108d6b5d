package utils

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/environment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// NewDatabase connects to the database described by env.
// Quest selection relies on multi-document transactions, so the server must be a replica set member.
func NewDatabase(logger *zap.Logger, env *environment.Env) (*mongo.Database, error) {
	connectionURL, err := mongoConnectionURL(env)
	if err != nil {
		return nil, err
	}

	clientOpts := options.Client().ApplyURI(connectionURL).
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	if replicaSet := env.Get(environment.MongoReplicaSet); len(replicaSet) > 0 {
		clientOpts.SetReplicaSet(replicaSet)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to database")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not ping database")
	}
	logger.Info("connected to database", zap.String("database", env.Get(environment.MongoDatabase)))

	return client.Database(env.Get(environment.MongoDatabase)), nil
}

func mongoConnectionURL(env *environment.Env) (string, error) {
	for _, name := range []string{environment.MongoUser, environment.MongoPassword, environment.MongoHost, environment.MongoDatabase} {
		if len(env.Get(name)) == 0 {
			return "", errors.Errorf("environment variable %s is not set", name)
		}
	}

	return fmt.Sprintf(`mongodb://%s:%s@%s/%s`, url.QueryEscape(env.Get(environment.MongoUser)),
		url.QueryEscape(env.Get(environment.MongoPassword)), env.Get(environment.MongoHost),
		env.Get(environment.MongoDatabase)), nil
}
