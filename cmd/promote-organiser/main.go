// Command promote-organiser gives a user the organiser role, creating the user if needed
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/environment"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/services/multiplexers"
	"github.com/technegotia/tn_quests/utils"
	"go.uber.org/zap"
)

func main() {
	email := flag.String("email", "", "Email of the user to promote")
	name := flag.String("name", "Organiser", "Name used when the user has to be created")
	password := flag.String("password", "", "Password used when the user has to be created")
	flag.Parse()

	if len(*email) == 0 {
		fmt.Fprintln(os.Stderr, "an email must be provided with -email")
		os.Exit(2)
	}

	logger, err := utils.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	env := environment.NewEnv(logger)
	cfg, err := config.NewAppConfig(env)
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	storage, err := multiplexers.NewStorage(logger, cfg, env, utils.NewTimeProvider())
	if err != nil {
		logger.Fatal("could not connect to storage", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer storage.Close(ctx)

	user, created, err := promote(ctx, storage.UserService, *name, *email, *password)
	if err != nil {
		logger.Fatal("could not promote user", zap.String("email", *email), zap.Error(err))
	}

	logger.Info("user is now an organiser",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", user.Email),
		zap.Bool("created", created))
}

// promote gives the user with the given email the organiser role.
// The user is created when it does not exist and a password is provided.
func promote(ctx context.Context, userService services.UserService, name, email, password string) (*entities.User, bool, error) {
	user, err := userService.GetUserWithEmail(ctx, email)
	switch errors.Cause(err) {
	case nil:
		err = userService.UpdateUserRoleWithID(ctx, user.ID.Hex(), entities.Organiser)
		if err != nil {
			return nil, false, errors.Wrap(err, "could not update role")
		}
		user.Role = entities.Organiser
		return user, false, nil
	case services.ErrNotFound:
		if len(password) == 0 {
			return nil, false, errors.New("user does not exist, a password is needed to create it")
		}
		user, err = userService.CreateUser(ctx, name, email, password, entities.Organiser)
		if err != nil {
			return nil, false, errors.Wrap(err, "could not create user")
		}
		return user, true, nil
	default:
		return nil, false, errors.Wrap(err, "could not fetch user")
	}
}
