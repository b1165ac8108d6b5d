package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"
)

const (
	transientTransactionErrorLabel      = "TransientTransactionError"
	unknownTransactionCommitResultLabel = "UnknownTransactionCommitResult"
)

// runTransaction runs txnFn in a snapshot transaction, retrying the whole transaction at most maxAttempts
// times when MongoDB labels the failure as transient. Errors returned by txnFn that are not transient
// abort the transaction and are returned unchanged.
func runTransaction(ctx context.Context, logger *zap.Logger, client *mongo.Client, maxAttempts int,
	txnFn func(sessCtx mongo.SessionContext) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	session, err := client.StartSession()
	if err != nil {
		return errors.Wrap(err, "could not start session")
	}
	defer session.EndSession(context.Background())

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))

	return retryTransient(ctx, logger, maxAttempts, func() error {
		return mongo.WithSession(ctx, session, func(sessCtx mongo.SessionContext) error {
			if err := session.StartTransaction(txnOpts); err != nil {
				return errors.Wrap(err, "could not start transaction")
			}

			if err := txnFn(sessCtx); err != nil {
				// the context may already be done, the abort must still reach the server
				_ = session.AbortTransaction(context.Background())
				return err
			}

			return commitWithRetry(sessCtx, session, maxAttempts)
		})
	})
}

// retryTransient calls attempt until it succeeds, fails with an error not labelled as a transient
// transaction error, or has been called maxAttempts times, in which case ErrTransientConflict is returned
func retryTransient(ctx context.Context, logger *zap.Logger, maxAttempts int, attempt func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for i := 1; i <= maxAttempts; i++ {
		err = attempt()
		if err == nil || !hasErrorLabel(err, transientTransactionErrorLabel) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.Debug("transaction conflicted with concurrent writes, retrying", zap.Int("attempt", i), zap.Error(err))
	}

	logger.Warn("transaction kept conflicting with concurrent writes", zap.Int("attempts", maxAttempts), zap.Error(err))
	return services.ErrTransientConflict
}

func commitWithRetry(sessCtx mongo.SessionContext, session mongo.Session, maxAttempts int) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = session.CommitTransaction(sessCtx)
		if err == nil || !hasErrorLabel(err, unknownTransactionCommitResultLabel) {
			return err
		}
	}
	return err
}

func hasErrorLabel(err error, label string) bool {
	var serverErr mongo.ServerError
	return errors.As(err, &serverErr) && serverErr.HasErrorLabel(label)
}

// storeError maps connectivity failures to ErrStoreUnavailable and wraps everything else
func storeError(err error, msg string) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return services.ErrStoreUnavailable
	}
	return errors.Wrap(err, msg)
}
