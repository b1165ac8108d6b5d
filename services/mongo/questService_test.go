// +build integration

package mongo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/repositories"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/testutils"
	"github.com/technegotia/tn_quests/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var testCfg = &config.AppConfig{
	Quests: config.QuestsConfig{
		MaxCapacity:            100,
		RequireApproval:        true,
		MaxTransactionAttempts: 20,
	},
	Registrations: config.RegistrationsConfig{
		MaxTeamMembers: 4,
	},
}

type questTestSetup struct {
	qService *mongoQuestService
	rService *mongoRegistrationService
	cleanup  func()
}

func setupQuestTest(t *testing.T) *questTestSetup {
	db := testutils.ConnectToIntegrationTestDB(t)

	questRepository, err := repositories.NewQuestRepository(db)
	if err != nil {
		panic(err)
	}
	selectionRepository, err := repositories.NewQuestSelectionRepository(db)
	if err != nil {
		panic(err)
	}
	registrationRepository, err := repositories.NewRegistrationRepository(db)
	if err != nil {
		panic(err)
	}

	return &questTestSetup{
		qService: &mongoQuestService{
			logger:                 zap.NewNop(),
			cfg:                    testCfg,
			timeProvider:           utils.NewTimeProvider(),
			questRepository:        questRepository,
			selectionRepository:    selectionRepository,
			registrationRepository: registrationRepository,
		},
		rService: &mongoRegistrationService{
			logger:                 zap.NewNop(),
			cfg:                    testCfg,
			timeProvider:           utils.NewTimeProvider(),
			registrationRepository: registrationRepository,
		},
		cleanup: func() {
			questRepository.Drop(context.Background())
			selectionRepository.Drop(context.Background())
			registrationRepository.Drop(context.Background())
		},
	}
}

func (s *questTestSetup) createQuest(t *testing.T, title string, capacity int) *entities.Quest {
	quest, err := s.qService.CreateQuest(context.Background(), title, "description of "+title, capacity)
	assert.NoError(t, err)
	return quest
}

func (s *questTestSetup) approvedTeam(t *testing.T, name string) entities.Selection {
	userID := primitive.NewObjectID()
	email := fmt.Sprintf("%s@test.com", userID.Hex())
	registration, err := s.rService.CreateRegistration(context.Background(), userID.Hex(), name, email,
		[]entities.TeamMember{{Name: name, Email: email}}, "https://files.test.com/proof.png")
	assert.NoError(t, err)

	_, err = s.rService.UpdateRegistrationStatus(context.Background(), registration.ID.Hex(), entities.Approved, "")
	assert.NoError(t, err)

	return entities.Selection{
		TeamID:     userID,
		TeamName:   name,
		UserEmail:  email,
		SelectedAt: utils.NewTimeProvider().Now(),
	}
}

func Test_NewMongoQuestService__should_return_non_nil_object(t *testing.T) {
	assert.NotNil(t, NewMongoQuestService(nil, nil, nil, nil, nil, nil))
}

func Test_TrySelect__scenario_capacity_2(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	q1 := setup.createQuest(t, "Q1", 2)
	q2 := setup.createQuest(t, "Q2", 2)
	teamA, teamB, teamC := setup.approvedTeam(t, "A"), setup.approvedTeam(t, "B"), setup.approvedTeam(t, "C")

	assert.NoError(t, setup.qService.TrySelect(context.Background(), q1.ID.Hex(), teamA))
	assert.NoError(t, setup.qService.TrySelect(context.Background(), q1.ID.Hex(), teamB))
	assert.Equal(t, services.ErrQuestFull, setup.qService.TrySelect(context.Background(), q1.ID.Hex(), teamC))
	assert.Equal(t, services.ErrAlreadySelected, setup.qService.TrySelect(context.Background(), q2.ID.Hex(), teamA))

	quest, err := setup.qService.GetQuest(context.Background(), q1.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, []entities.Selection{teamA, teamB}, quest.Selections)

	selectedQuest, selection, err := setup.qService.GetSelectionForTeam(context.Background(), teamB.TeamID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, q1.ID, selectedQuest.ID)
	assert.Equal(t, teamB, *selection)

	registration, err := setup.rService.GetRegistrationForUser(context.Background(), teamA.TeamID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, q1.ID, registration.QuestID)
}

func Test_TrySelect__should_return_errors_for_unselectable_quests(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	inactive := setup.createQuest(t, "Q1", 2)
	_, err := setup.qService.UpdateQuest(context.Background(), inactive.ID.Hex(), services.QuestUpdateParams{entities.QuestIsActive: false})
	assert.NoError(t, err)
	open := setup.createQuest(t, "Q2", 2)
	team := setup.approvedTeam(t, "A")

	assert.Equal(t, services.ErrQuestInactive, setup.qService.TrySelect(context.Background(), inactive.ID.Hex(), team))
	assert.Equal(t, services.ErrQuestNotFound, setup.qService.TrySelect(context.Background(), primitive.NewObjectID().Hex(), team))
	assert.Equal(t, services.ErrRegistrationNotApproved, setup.qService.TrySelect(context.Background(), open.ID.Hex(),
		entities.Selection{TeamID: primitive.NewObjectID()}))
	assert.Equal(t, services.ErrInvalidID, setup.qService.TrySelect(context.Background(), "invalid ID", team))
}

func Test_TrySelect__only_one_of_concurrent_selections_for_last_slot_should_succeed(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	const noOfTeams = 10
	quest := setup.createQuest(t, "Q1", 1)
	teams := make([]entities.Selection, noOfTeams)
	for i := range teams {
		teams[i] = setup.approvedTeam(t, fmt.Sprintf("team %d", i))
	}

	results := make([]error, noOfTeams)
	var eg errgroup.Group
	for i := range teams {
		i := i
		eg.Go(func() error {
			results[i] = setup.qService.TrySelect(context.Background(), quest.ID.Hex(), teams[i])
			return nil
		})
	}
	assert.NoError(t, eg.Wait())

	var successes int
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.Contains(t, []error{services.ErrQuestFull, services.ErrTransientConflict}, err)
		}
	}
	assert.Equal(t, 1, successes)

	stored, err := setup.qService.GetQuest(context.Background(), quest.ID.Hex())
	assert.NoError(t, err)
	assert.Len(t, stored.Selections, 1)
}

func Test_TrySelect__team_racing_for_two_quests_should_get_at_most_one(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	q1 := setup.createQuest(t, "Q1", 5)
	q2 := setup.createQuest(t, "Q2", 5)
	team := setup.approvedTeam(t, "A")

	var eg errgroup.Group
	results := make([]error, 2)
	for i, questID := range []string{q1.ID.Hex(), q2.ID.Hex()} {
		i, questID := i, questID
		eg.Go(func() error {
			results[i] = setup.qService.TrySelect(context.Background(), questID, team)
			return nil
		})
	}
	assert.NoError(t, eg.Wait())

	quests, err := setup.qService.GetQuests(context.Background())
	assert.NoError(t, err)
	var selections int
	for _, quest := range quests {
		selections += len(quest.Selections)
	}
	assert.Equal(t, 1, selections)
}

func Test_DeleteQuest__should_release_selections(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	quest := setup.createQuest(t, "Q1", 2)
	other := setup.createQuest(t, "Q2", 2)
	team := setup.approvedTeam(t, "A")
	assert.NoError(t, setup.qService.TrySelect(context.Background(), quest.ID.Hex(), team))

	assert.NoError(t, setup.qService.DeleteQuest(context.Background(), quest.ID.Hex()))

	assert.Equal(t, services.ErrQuestNotFound, setup.qService.TrySelect(context.Background(), quest.ID.Hex(), team))
	_, _, err := setup.qService.GetSelectionForTeam(context.Background(), team.TeamID.Hex())
	assert.Equal(t, services.ErrNotFound, err)

	registration, err := setup.rService.GetRegistrationForUser(context.Background(), team.TeamID.Hex())
	assert.NoError(t, err)
	assert.False(t, registration.HasQuest())

	assert.NoError(t, setup.qService.TrySelect(context.Background(), other.ID.Hex(), team))
	assert.Equal(t, services.ErrNotFound, setup.qService.DeleteQuest(context.Background(), quest.ID.Hex()))
}

func Test_UpdateQuest__should_keep_selections_when_capacity_is_lowered(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	quest := setup.createQuest(t, "Q1", 3)
	assert.NoError(t, setup.qService.TrySelect(context.Background(), quest.ID.Hex(), setup.approvedTeam(t, "A")))
	assert.NoError(t, setup.qService.TrySelect(context.Background(), quest.ID.Hex(), setup.approvedTeam(t, "B")))

	updated, err := setup.qService.UpdateQuest(context.Background(), quest.ID.Hex(), services.QuestUpdateParams{entities.QuestCapacity: 1})
	assert.NoError(t, err)

	assert.Len(t, updated.Selections, 2)
	assert.Equal(t, 0, updated.SlotsLeft())
	assert.Equal(t, services.ErrQuestFull, setup.qService.TrySelect(context.Background(), quest.ID.Hex(), setup.approvedTeam(t, "C")))
}

func Test_GetQuests__should_return_quests_in_creation_order(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	q1 := setup.createQuest(t, "Q1", 1)
	q2 := setup.createQuest(t, "Q2", 1)

	quests, err := setup.qService.GetQuests(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, []entities.Quest{*q1, *q2}, quests)
}

func Test_WatchQuestChanges__should_signal_after_change(t *testing.T) {
	setup := setupQuestTest(t)
	defer setup.cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	notify := make(chan struct{}, 1)
	done := make(chan error)
	go func() {
		done <- setup.qService.WatchQuestChanges(ctx, notify)
	}()

	// the change stream may open after the first insert, so keep writing until a signal arrives
	assert.Eventually(t, func() bool {
		setup.createQuest(t, "Q", 1)
		select {
		case <-notify:
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 10*time.Millisecond)

	cancel()
	assert.Equal(t, context.Canceled, <-done)
}
