package v1

import (
	"io"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services/live"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	questsEvent    = "quests"
	selectionEvent = "selection"
	errorEvent     = "error"
	pingEvent      = "ping"
)

var streamKeepAliveInterval = 30 * time.Second

// GET: /api/v1/quests/stream
// text/event-stream
// Events:  quests    {quests []entities.Quest}, on connect and after every change
//          selection {quest entities.Quest, selection entities.Selection}, teams only, when their selection changes
//          error     {error string}, when the quest board could not be refreshed
// Headers: Authorization -> token (or ?token=)
func (r *apiV1Router) StreamQuests(ctx *gin.Context) {
	user := currentUser(ctx)

	teamID := primitive.NilObjectID
	if user.Role == entities.Team {
		teamID = user.ID
	}
	board := live.NewSelectionBoard(teamID)

	snapshots := make(chan []entities.Quest, 1)
	failures := make(chan error, 1)
	unsubscribe := r.selectionService.WatchQuests(func(quests []entities.Quest) {
		// only the latest snapshot matters
		select {
		case <-snapshots:
		default:
		}
		snapshots <- quests
	}, func(err error) {
		select {
		case failures <- err:
		default:
		}
	})
	defer unsubscribe()

	r.logger.Debug("quest stream opened", zap.String("user_id", user.ID.Hex()))
	defer r.logger.Debug("quest stream closed", zap.String("user_id", user.ID.Hex()))

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	keepAlive := time.NewTicker(streamKeepAliveInterval)
	defer keepAlive.Stop()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Request.Context().Done():
			return false
		case quests := <-snapshots:
			state, changed := board.Apply(quests)
			ctx.Render(-1, sse.Event{
				Event: questsEvent,
				Data:  getQuestsRes{Quests: visibleQuests(user, state.Quests)},
			})
			if changed && user.Role == entities.Team {
				ctx.Render(-1, sse.Event{
					Event: selectionEvent,
					Data:  getSelectionRes{Quest: questForUser(user, state.MyQuest), Selection: state.MySelection},
				})
			}
		case err := <-failures:
			r.logger.Warn("quest stream could not be refreshed", zap.Error(err))
			ctx.Render(-1, sse.Event{
				Event: errorEvent,
				Data:  streamErrorRes{Error: "the quest board could not be refreshed, retrying"},
			})
		case <-keepAlive.C:
			ctx.Render(-1, sse.Event{
				Event: pingEvent,
				Data:  "",
			})
		}
		return true
	})
}
