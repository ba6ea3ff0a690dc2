package core

import "context"

// Status is the lifecycle stage of a session.
type Status uint8

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusWon
	StatusLost
	StatusAbandoned
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session is over.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusAbandoned
}

// State is one level attempt. Engine methods never modify a State in
// place; they return the successor.
type State struct {
	Level     LevelConfig
	Board     *Board
	Score     int
	MovesLeft int
	Combo     int // Passes resolved in the current cascade
	LastGain  int // Points from the most recent pass or booster
	Selected  *Pos
	Status    Status
	InFlight  bool // A cascade is running; swaps and boosters are refused
	Boosters  Inventory
	Delta     ProgressDelta // Pending change for the progress store
	IDs       IDGen
	GenStats  GenStats // Stats from the most recent board generation

	// Highest unlocked level when the attempt began. Wins below it are
	// replays and earn neither currency nor an unlock.
	UnlockedAtStart int
}

// Active reports whether the session accepts input.
func (s State) Active() bool {
	return s.Status == StatusPlaying
}

// Stars returns the rating for a won session, 0 otherwise.
func (s State) Stars() int {
	if s.Status != StatusWon {
		return 0
	}
	return Stars(s.Score, s.Level.TargetScore)
}

// Engine applies game rules to session states.
// It holds no per-session data, so one Engine may drive many sessions
// as long as they are stepped from a single goroutine.
type Engine struct {
	Rules Rules
	RNG   RNG
}

// NewEngine creates an engine with the given rules and randomness.
func NewEngine(rules Rules, rng RNG) *Engine {
	return &Engine{Rules: rules, RNG: rng}
}

func (e *Engine) spawner(s *State) Spawner {
	return Spawner{
		Kinds:         s.Level.GemKinds,
		SpecialChance: s.Level.SpecialChance,
		RNG:           e.RNG,
		IDs:           &s.IDs,
	}
}

func (e *Engine) genParams(s *State) GenParams {
	return GenParams{
		Size:       s.Level.GridSize,
		Kinds:      s.Level.GemKinds,
		MaxRedraws: e.Rules.MaxRedraws,
	}
}

// StartLevel begins a new attempt at a level with the player's progress.
// Lives are not checked here; gating play is the caller's decision.
func (e *Engine) StartLevel(level LevelConfig, p Progress) State {
	s := State{
		Level:     level.Normalized(),
		MovesLeft: level.Moves,
		Status:    StatusPlaying,
		Boosters:  p.Boosters,

		UnlockedAtStart: p.UnlockedLevels,
	}
	s.Board, s.GenStats = GenerateBoard(e.genParams(&s), e.RNG, &s.IDs)
	return s
}

// Step runs one pass of the current cascade.
// With matches on the board it scores them at multiplier Combo+1 and
// refills. Without matches it ends the cascade and evaluates win/loss.
// Calls on a settled or finished session return s unchanged.
func (e *Engine) Step(s State) State {
	if !s.InFlight || s.Status != StatusPlaying {
		return s
	}

	res := ResolveOnce(s.Board, s.Combo, e.Rules.BasePoints, e.spawner(&s))
	s.Board = res.Board
	if !res.Found {
		s.InFlight = false
		s.Combo = 0
		return e.evaluate(s)
	}

	s.Score += res.Gain
	s.LastGain = res.Gain
	s.Combo++
	s.Board.MarkMatched(FindMatches(s.Board))
	return s
}

// Settle steps until the cascade ends or ctx is done.
// On cancellation it returns the last completed state with ctx.Err().
func (e *Engine) Settle(ctx context.Context, s State) (State, error) {
	for s.InFlight && s.Status == StatusPlaying {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		s = e.Step(s)
	}
	return s, nil
}

// Abandon ends the session without a result. Later Steps are no-ops.
func (e *Engine) Abandon(s State) State {
	if s.Status.Terminal() {
		return s
	}
	s.Status = StatusAbandoned
	s.InFlight = false
	s.Selected = nil
	return s
}

// evaluate applies terminal conditions to a settled session.
// Reaching the target wins even when the last move was just spent.
func (e *Engine) evaluate(s State) State {
	switch {
	case s.Score >= s.Level.TargetScore:
		s.Status = StatusWon
		s.Delta.ScoreEarned = s.Score
		if s.Level.Level >= s.UnlockedAtStart {
			s.Delta.CurrencyEarned += s.Score / 100
			s.Delta.UnlockedLevels = s.Level.Level + 1
		}
	case s.MovesLeft <= 0:
		s.Status = StatusLost
		s.Delta.LivesLost = 1
	}
	return s
}
