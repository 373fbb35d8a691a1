package slack

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tpeo/attendbot/services"
	"github.com/tpeo/attendbot/services/logger"
)

const checkinKeyword = "checkin"

// Router dispatches cleaned command text to the attendance service and
// renders the outcome as a chat message.
type Router struct {
	svc    *services.AttendanceService
	logger logger.Logger
}

// RouterOptions configures NewRouter
type RouterOptions struct {
	Service *services.AttendanceService
	Logger  logger.Logger
}

func NewRouter(opts RouterOptions) *Router {
	return &Router{
		svc:    opts.Service,
		logger: opts.Logger,
	}
}

// Route handles one slash command. Routing matches keywords against the
// lowercased text, but registration receives the original-case text so
// the display name keeps its capitalization.
func (r *Router) Route(ctx context.Context, payload *CommandPayload) Message {
	reqID := uuid.NewString()
	text := CleanText(payload.Text)
	lowered := strings.ToLower(text)
	actor := payload.UserName

	switch {
	case strings.Contains(lowered, checkinKeyword):
		abbrev := strings.TrimSpace(strings.ReplaceAll(lowered, checkinKeyword, ""))
		outcome := r.svc.CheckIn(ctx, actor, abbrev)
		r.logger.Info("req %s: checkin %q by %s -> %s", reqID, abbrev, actor, outcome.Kind)
		// successful check-ins are announced to the channel;
		// everything else stays between the bot and the requester
		msgType := TypeEphemeral
		if outcome.Kind == services.KindSuccess {
			msgType = TypeInChannel
		}
		return UserMessage(actor, outcome.Header, outcome.Body, msgType)

	case strings.Contains(lowered, services.RegisterKeyword):
		outcome := r.svc.Register(ctx, actor, text)
		r.logger.Info("req %s: register by %s -> %s", reqID, actor, outcome.Kind)
		return UserMessage(actor, outcome.Header, outcome.Body, TypeEphemeral)

	default:
		r.logger.Debug("req %s: help for %s", reqID, actor)
		return HelpMessage()
	}
}
