package core

import "context"

// Autoplay plays a session with BestMove until it ends, ctx is done or
// maxMoves swaps were made (0 means no limit). A board without moves is
// shuffled when the inventory allows, otherwise the session is abandoned.
// onMove, if set, sees every state after a swap has settled.
func (e *Engine) Autoplay(ctx context.Context, s State, maxMoves int, onMove func(Move, State)) (State, error) {
	s, err := e.Settle(ctx, s)
	if err != nil {
		return s, err
	}

	for played := 0; s.Active(); played++ {
		if maxMoves > 0 && played >= maxMoves {
			break
		}

		m, ok := BestMove(s.Board)
		if !ok {
			if !boosterReady(s, BoosterShuffle) {
				return e.Abandon(s), nil
			}
			s = e.UseShuffle(s)
			continue
		}

		s = e.AttemptSwap(s, m.A, m.B)
		if s, err = e.Settle(ctx, s); err != nil {
			return s, err
		}
		if onMove != nil {
			onMove(m, s)
		}
	}
	return s, nil
}
