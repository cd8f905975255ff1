package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dashrun/rivals-backend/internal/highscore"
	"github.com/dashrun/rivals-backend/internal/rivals"
	"github.com/dashrun/rivals-backend/internal/themes"
)

type Msg interface{ isSessionMsg() }

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

// StartRun enters the Playing phase: fresh board, window reset, ticker
// armed. Also how a GameOver session goes again.
type StartRun struct{}

func (StartRun) isSessionMsg() {}

// Progress carries the player's running distance mid-run.
type Progress struct{ Score int }

func (Progress) isSessionMsg() {}

// EndRun enters the GameOver phase with the run's final score.
type EndRun struct{ Score int }

func (EndRun) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan DebugView
}

func (GetState) isSessionMsg() {}

// Snapshot is what clients receive on every published change.
type Snapshot struct {
	Version int
	View    View
}

// View is the presentation-facing projection of the session: the
// windowed board plus the summary values shown on game over.
type View struct {
	Phase     rivals.Phase `json:"phase"`
	Score     int          `json:"score"`
	HighScore int          `json:"high_score"`
	Entries   rivals.Board `json:"entries"`

	// GameOver only. Rank is 0 when the player is absent from the board.
	Rank          int          `json:"rank,omitempty"`
	NextTier      *themes.Tier `json:"next_tier,omitempty"`
	NextRemaining int          `json:"next_remaining,omitempty"`
	UnlockedTier  *themes.Tier `json:"unlocked_tier,omitempty"`
}

// DebugView reflects internal state for tests without data races.
type DebugView struct {
	Version     int
	NumClients  int
	Phase       rivals.Phase
	Score       int
	HighScore   int
	WindowStart int
	BoardLen    int
}

// Options wires a session's collaborators.
type Options struct {
	Log      *zap.Logger
	RNG      rivals.Source
	Tiers    []themes.Tier
	Scores   highscore.Store
	PlayerID string
	Tick     time.Duration // live-update period; 3s in production
}

// Session owns one player's run state and board. All access goes
// through the inbox; the loop goroutine is the only writer, and the
// ticker case sits in the same select, so live-update ticks are
// strictly serialized with everything else.
type Session struct {
	inbox      chan Msg
	log        *zap.Logger
	rng        rivals.Source
	tiers      []themes.Tier
	thresholds []int
	scores     highscore.Store
	playerID   string
	tick       time.Duration

	phase       rivals.Phase
	score       int
	highScore   int
	windowStart int
	board       *rivals.Store
	version     int

	// game-over summary, recomputed on each EndRun
	rank        int
	unlockedIdx int

	ticker *time.Ticker
	tickC  <-chan time.Time // nil while not Playing

	clients map[string]chan Snapshot
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewSession(parent context.Context, opts Options) *Session {
	ctx, cancel := context.WithCancel(parent)

	best, err := opts.Scores.Best(ctx, opts.PlayerID)
	if err != nil {
		opts.Log.Warn("loading best score", zap.String("player", opts.PlayerID), zap.Error(err))
		best = 0
	}

	s := &Session{
		inbox:       make(chan Msg, 64), // Small buffer
		log:         opts.Log,
		rng:         opts.RNG,
		tiers:       opts.Tiers,
		thresholds:  themes.Thresholds(opts.Tiers),
		scores:      opts.Scores,
		playerID:    opts.PlayerID,
		tick:        opts.Tick,
		phase:       rivals.PhaseMenu,
		highScore:   best,
		board:       rivals.NewStore(),
		unlockedIdx: -1,
		clients:     make(map[string]chan Snapshot),
		ctx:         ctx,
		cancel:      cancel,
	}

	go s.loop()
	return s
}

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case <-s.tickC:
			s.handleTick()

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				s.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: s.version, View: s.view()}

			case Leave:
				delete(s.clients, msg.ClientID)

			case StartRun:
				s.startRun()

			case Progress:
				if s.phase != rivals.PhasePlaying {
					break
				}
				s.score = msg.Score
				s.publish()

			case EndRun:
				s.endRun(msg.Score)

			case GetState:
				msg.Reply <- DebugView{
					Version:     s.version,
					NumClients:  len(s.clients),
					Phase:       s.phase,
					Score:       s.score,
					HighScore:   s.highScore,
					WindowStart: s.windowStart,
					BoardLen:    s.board.Len(),
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

// startRun handles both Menu -> Playing and GameOver -> Playing: the
// old board is discarded wholesale and a fresh one seeded from the
// (reset) player score.
func (s *Session) startRun() {
	if s.phase == rivals.PhasePlaying {
		return
	}
	s.score = 0
	s.board.Replace(rivals.Generate(s.rng, s.score, rivals.DefaultBatch))
	s.windowStart = 0
	s.rank = 0
	s.unlockedIdx = -1
	s.phase = rivals.PhasePlaying
	s.startTicker()
	s.log.Debug("run started", zap.String("player", s.playerID))
	s.publish()
}

// endRun handles Playing -> GameOver: stop the ticker before anything
// else so no tick fires against the discarded board, reseed from the
// best of (score, high score), then merge the player's own entry in.
func (s *Session) endRun(finalScore int) {
	if s.phase != rivals.PhasePlaying {
		return
	}
	s.stopTicker()
	if finalScore < 0 {
		finalScore = 0
	}
	s.score = finalScore

	ref := s.score
	if s.highScore > ref {
		ref = s.highScore
	}
	s.board.Replace(rivals.Generate(s.rng, ref, rivals.DefaultBatch))
	s.board.InsertPlayer(rivals.Entry{Name: rivals.PlayerName, Score: s.score})

	prevBest := s.highScore
	if s.score > s.highScore {
		s.highScore = s.score
		if err := s.scores.Record(s.ctx, s.playerID, s.highScore); err != nil {
			s.log.Warn("recording best score", zap.String("player", s.playerID), zap.Error(err))
		}
	}

	s.rank, _ = rivals.Rank(s.board.Board(), rivals.PlayerName)
	if idx, ok := rivals.NewlyUnlocked(prevBest, s.highScore, s.thresholds); ok {
		s.unlockedIdx = idx
		s.log.Info("tier unlocked",
			zap.String("player", s.playerID),
			zap.String("tier", s.tiers[idx].ID))
	} else {
		s.unlockedIdx = -1
	}

	s.phase = rivals.PhaseGameOver
	s.publish()
}

// handleTick is one live-update step: maybe inject a rival, always
// advance the window.
func (s *Session) handleTick() {
	if s.phase != rivals.PhasePlaying {
		// Stale fire from a ticker stopped this iteration; drop it.
		return
	}
	if s.rng.Float64() < 0.5 {
		s.board.InsertLive(rivals.LiveEntry(s.rng, s.score))
	}
	s.windowStart = rivals.AdvanceWindow(s.windowStart, s.board.Len())
	s.publish()
}

func (s *Session) startTicker() {
	s.stopTicker()
	s.ticker = time.NewTicker(s.tick)
	s.tickC = s.ticker.C
}

func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.tickC = nil
}

func (s *Session) view() View {
	v := View{
		Phase:     s.phase,
		Score:     s.score,
		HighScore: s.highScore,
		Entries:   rivals.Window(s.board.Board(), s.phase, s.windowStart),
	}
	if s.phase == rivals.PhaseGameOver {
		v.Rank = s.rank
		if idx, remaining, ok := rivals.NextMilestone(s.highScore, s.thresholds); ok {
			tier := s.tiers[idx]
			v.NextTier = &tier
			v.NextRemaining = remaining
		}
		if s.unlockedIdx >= 0 {
			tier := s.tiers[s.unlockedIdx]
			v.UnlockedTier = &tier
		}
	}
	return v
}

func (s *Session) publish() {
	s.version++
	s.broadcast(Snapshot{Version: s.version, View: s.view()})
}

func (s *Session) broadcast(snap Snapshot) {
	for id, ch := range s.clients {
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			s.log.Debug("dropping slow client", zap.String("client", id))
			close(ch)
			delete(s.clients, id)
		}
	}
}

func (s *Session) shutdown() {
	s.stopTicker()
	for id, ch := range s.clients {
		close(ch) // Tell client no more snapshots
		delete(s.clients, id)
	}
	s.cancel()
}

// Expose the inbox so tests or the WS layer can send messages.
func (s *Session) Inbox() chan<- Msg { return s.inbox }
