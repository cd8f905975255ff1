package hub

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/dashrun/rivals-backend/internal/highscore"
	"github.com/dashrun/rivals-backend/internal/session"
	"github.com/dashrun/rivals-backend/internal/themes"
)

type HubMsg interface{ isHubMsg() }

type CreateSession struct {
	Code     string
	PlayerID string
	Reply    chan *session.Session
}

type GetSession struct {
	Code  string
	Reply chan *session.Session
}

type EnsureSession struct {
	Code     string
	PlayerID string // only used if creation happens
	Reply    chan *session.Session
}

type RemoveSession struct {
	Code string
}

type ShutdownHub struct{}

func (CreateSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (EnsureSession) isHubMsg() {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}

// Deps is everything a freshly created session needs.
type Deps struct {
	Log    *zap.Logger
	Tiers  []themes.Tier
	Scores highscore.Store
	Tick   time.Duration
}

type Hub struct {
	inbox    chan HubMsg
	deps     Deps
	sessions map[string]*session.Session
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, deps Deps) *Hub {
	ctx, cancel := context.WithCancel(parent)
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		deps:     deps,
		sessions: make(map[string]*session.Session),
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				msg.Reply <- h.create(msg.Code, msg.PlayerID)

			case GetSession:
				msg.Reply <- h.sessions[msg.Code] // May be nil

			case EnsureSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				msg.Reply <- h.create(msg.Code, msg.PlayerID)

			case RemoveSession:
				delete(h.sessions, msg.Code)

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) create(code, playerID string) *session.Session {
	s := session.NewSession(h.ctx, session.Options{
		Log:      h.deps.Log.Named("session").With(zap.String("code", code)),
		RNG:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Tiers:    h.deps.Tiers,
		Scores:   h.deps.Scores,
		PlayerID: playerID,
		Tick:     h.deps.Tick,
	})
	h.sessions[code] = s
	h.deps.Log.Info("session created", zap.String("code", code), zap.String("player", playerID))
	return s
}

func (h *Hub) shutdown() {
	for _, s := range h.sessions {
		s.Inbox() <- session.Shutdown{}
	}
	clear(h.sessions)
	h.cancel()
}
