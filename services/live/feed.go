// Package live pushes the quest catalog to subscribers as it changes
package live

import (
	"context"
	"sync"
	"time"

	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// QuestFeed loads a full snapshot of the catalog after every change and fans it out to subscribers.
// Snapshots are loaded by the Run goroutine only, so every subscriber sees them in commit order.
type QuestFeed struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	questService services.QuestService

	// refresh is both the change signal from the store and the request for an initial snapshot
	refresh chan struct{}

	mu               sync.Mutex
	subscribers      map[uint64]*subscriber
	nextSubscriberID uint64
	stopped          bool
}

// NewQuestFeed creates a QuestFeed. Nothing is delivered until Run is called.
func NewQuestFeed(logger *zap.Logger, cfg *config.AppConfig, questService services.QuestService) *QuestFeed {
	return &QuestFeed{
		logger:       logger,
		cfg:          cfg,
		questService: questService,
		refresh:      make(chan struct{}, 1),
		subscribers:  map[uint64]*subscriber{},
	}
}

// Run watches the store for changes and broadcasts snapshots until ctx is done.
// When the change source fails, the error is delivered to subscribers and the
// watch is restarted after the configured retry interval.
func (f *QuestFeed) Run(ctx context.Context) error {
	go f.watch(ctx)

	for {
		select {
		case <-ctx.Done():
			f.stopAll()
			return nil
		case <-f.refresh:
			f.broadcastSnapshot(ctx)
		}
	}
}

// Subscribe registers the callbacks and requests a snapshot, so onChange is called with the
// current catalog without waiting for a change. Callbacks are called from a goroutine owned by
// the subscription, one at a time. A slow subscriber only receives the latest pending snapshot.
// Subscribing after Run has returned delivers ErrFeedStopped to onError instead.
func (f *QuestFeed) Subscribe(onChange func([]entities.Quest), onError func(error)) services.Unsubscribe {
	sub := &subscriber{
		onChange: onChange,
		onError:  onError,
		mailbox:  make(chan update, 1),
		stopped:  atomic.NewBool(false),
		done:     make(chan struct{}),
	}

	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()

		sub.post(update{err: services.ErrFeedStopped})
		go sub.deliver()
		return sub.stop
	}
	f.nextSubscriberID++
	id := f.nextSubscriberID
	f.subscribers[id] = sub
	f.mu.Unlock()

	go sub.deliver()
	f.requestRefresh()

	return func() {
		f.mu.Lock()
		delete(f.subscribers, id)
		f.mu.Unlock()

		sub.stop()
	}
}

func (f *QuestFeed) watch(ctx context.Context) {
	retryInterval := time.Duration(f.cfg.Quests.FeedRetryInterval) * time.Second
	for {
		err := f.questService.WatchQuestChanges(ctx, f.refresh)
		if ctx.Err() != nil {
			return
		}

		f.logger.Error("quest change source failed, reconnecting", zap.Duration("retry_in", retryInterval), zap.Error(err))
		f.broadcast(update{err: err})

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryInterval):
		}
		// changes made while disconnected were not signalled
		f.requestRefresh()
	}
}

func (f *QuestFeed) broadcastSnapshot(ctx context.Context) {
	quests, err := f.questService.GetQuests(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		f.logger.Error("could not load quest snapshot", zap.Error(err))
		f.broadcast(update{err: err})
		return
	}

	f.broadcast(update{quests: quests})
}

func (f *QuestFeed) broadcast(u update) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subscribers {
		sub.post(u.copy())
	}
}

func (f *QuestFeed) requestRefresh() {
	select {
	case f.refresh <- struct{}{}:
	default:
	}
}

func (f *QuestFeed) stopAll() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopped = true
	for id, sub := range f.subscribers {
		sub.stop()
		delete(f.subscribers, id)
	}
}

type update struct {
	quests []entities.Quest
	err    error
}

func (u update) copy() update {
	if u.quests == nil {
		return u
	}

	quests := make([]entities.Quest, len(u.quests))
	for i, quest := range u.quests {
		quests[i] = quest.Copy()
	}
	return update{quests: quests}
}

type subscriber struct {
	onChange func([]entities.Quest)
	onError  func(error)

	mailbox  chan update
	stopped  *atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// post replaces any undelivered update with u
func (s *subscriber) post(u update) {
	for {
		select {
		case s.mailbox <- u:
			return
		default:
		}

		select {
		case <-s.mailbox:
		default:
		}
	}
}

func (s *subscriber) deliver() {
	for {
		select {
		case <-s.done:
			return
		case u := <-s.mailbox:
			if s.stopped.Load() {
				return
			}

			if u.err != nil {
				if s.onError != nil {
					s.onError(u.err)
				}
			} else if s.onChange != nil {
				s.onChange(u.quests)
			}
		}
	}
}

func (s *subscriber) stop() {
	s.stopOnce.Do(func() {
		s.stopped.Store(true)
		close(s.done)
	})
}
