// Package memory implements the services on a single-process store.
// Every operation holds the store lock for its whole read-check-write sequence,
// so operations are serialised and trivially atomic.
package memory

import (
	"sync"

	"github.com/technegotia/tn_quests/entities"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds the data shared by the memory services
type Store struct {
	mu sync.Mutex

	users         map[primitive.ObjectID]*entities.User
	userOrder     []primitive.ObjectID
	registrations map[primitive.ObjectID]*entities.Registration
	regOrder      []primitive.ObjectID
	quests        map[primitive.ObjectID]*entities.Quest
	questOrder    []primitive.ObjectID
	// selections maps team IDs to the ID of the quest they selected
	selections map[primitive.ObjectID]primitive.ObjectID

	questWatchers map[uint64]chan<- struct{}
	nextWatcherID uint64
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		users:         map[primitive.ObjectID]*entities.User{},
		registrations: map[primitive.ObjectID]*entities.Registration{},
		quests:        map[primitive.ObjectID]*entities.Quest{},
		selections:    map[primitive.ObjectID]primitive.ObjectID{},
		questWatchers: map[uint64]chan<- struct{}{},
	}
}

func (s *Store) addQuestWatcher(notify chan<- struct{}) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextWatcherID++
	s.questWatchers[s.nextWatcherID] = notify
	select {
	case notify <- struct{}{}:
	default:
	}
	return s.nextWatcherID
}

func (s *Store) removeQuestWatcher(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.questWatchers, id)
}

// notifyQuestWatchers must be called with s.mu held, after the change has been applied
func (s *Store) notifyQuestWatchers() {
	for _, notify := range s.questWatchers {
		select {
		case notify <- struct{}{}:
		default:
		}
	}
}

func (s *Store) registrationForUser(userID primitive.ObjectID) *entities.Registration {
	for _, registration := range s.registrations {
		if registration.UserID == userID {
			return registration
		}
	}
	return nil
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
