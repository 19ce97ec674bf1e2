// FILE: internal/rules/rules.go
package rules

import (
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
)

// Kind classifies an available move.
type Kind int

const (
	KindMove Kind = iota + 1
	KindCapture
	KindMultiCapture
	KindKingMove
	KindKingCapture
	KindKingMultiCapture
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindCapture:
		return "capture"
	case KindMultiCapture:
		return "multi-capture"
	case KindKingMove:
		return "king move"
	case KindKingCapture:
		return "king capture"
	case KindKingMultiCapture:
		return "king multi-capture"
	default:
		return "unknown"
	}
}

// Capturing reports whether the move removes enemy pieces.
func (k Kind) Capturing() bool {
	return k != KindMove && k != KindKingMove
}

// Available is one legal move from a source square. All indices are
// expressed in the owning player's orientation. Target is the ultimate
// landing square; Captured lists every removed piece in jump order and is
// empty for non-capturing moves.
type Available struct {
	Source   board.Index
	Kind     Kind
	Target   board.Index
	Captured []board.Index
}

// diagonals in frame coordinates: NW, NE, SE, SW. The first two are the
// forward directions for the frame's owner.
var diagonals = [4][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// LegalMoves enumerates every move the piece at source may make. The
// source may be tagged with either orientation; results are normalized to
// the owning player's frame. When any capture is available from the
// square, non-capturing moves are not offered, and every capture chain is
// extended to its maximal length (a chain's prefixes are not offered as
// separate moves). Capture availability is evaluated per source square
// only: it never forbids moving a different piece.
func LegalMoves(b *board.Board, source board.Index) ([]Available, error) {
	tile, err := b.GetTile(source)
	if err != nil {
		return nil, err
	}
	owner, ok := tile.Owner()
	if !ok {
		return nil, fmt.Errorf("%w at %s", core.ErrEmptySource, source)
	}
	if source.Orientation != owner {
		source = b.Reverse(source)
	}

	if chains := captureChains(b, source, tile.King()); len(chains) > 0 {
		moves := make([]Available, 0, len(chains))
		for _, chain := range chains {
			moves = append(moves, chainMove(source, chain, tile.King()))
		}
		return moves, nil
	}

	if tile.King() {
		return kingMoves(b, source), nil
	}
	return manMoves(b, source), nil
}

// CheckMove validates a requested move against the legal set for its
// source square. The unique available move whose ultimate target matches
// mv.Target is returned. When several capture chains share the final
// target, the shortest chain wins; chains of equal length make the
// request ambiguous.
func CheckMove(b *board.Board, mv board.Move) (Available, error) {
	moves, err := LegalMoves(b, mv.Source)
	if err != nil {
		return Available{}, err
	}

	target := mv.Target
	if len(moves) > 0 && moves[0].Source.Orientation != target.Orientation {
		target = b.Reverse(target)
	}

	var matches []Available
	for _, m := range moves {
		if m.Target == target {
			matches = append(matches, m)
		}
	}

	if len(matches) == 0 {
		return Available{}, fmt.Errorf("%w: no move from %s to %s", core.ErrIllegalMove, mv.Source, mv.Target)
	}
	return pickMatch(matches, mv)
}

// pickMatch resolves several chains sharing a final target: the shortest
// chain is the deterministic choice, and equal-length chains are reported
// as ambiguous.
func pickMatch(matches []Available, mv board.Move) (Available, error) {
	best := matches[0]
	tied := false
	for _, m := range matches[1:] {
		switch {
		case len(m.Captured) < len(best.Captured):
			best = m
			tied = false
		case len(m.Captured) == len(best.Captured):
			tied = true
		}
	}
	if tied {
		return Available{}, fmt.Errorf("%w: %d capture chains end at %s", core.ErrAmbiguousMove, len(matches), mv.Target)
	}
	return best, nil
}

// PlayerMoves enumerates the legal moves of every piece p owns.
func PlayerMoves(b *board.Board, p core.Player) []Available {
	var out []Available
	for _, sq := range b.Squares(p) {
		moves, err := LegalMoves(b, sq)
		if err != nil {
			continue
		}
		out = append(out, moves...)
	}
	return out
}

// HasMoves reports whether p has any legal move on the board.
func HasMoves(b *board.Board, p core.Player) bool {
	for _, sq := range b.Squares(p) {
		moves, err := LegalMoves(b, sq)
		if err == nil && len(moves) > 0 {
			return true
		}
	}
	return false
}

// manMoves returns the two forward diagonal single steps, when open.
func manMoves(b *board.Board, source board.Index) []Available {
	var moves []Available
	for _, dx := range [2]int{-1, 1} {
		target, ok := source.Translate(dx, -1)
		if !ok || !emptyAt(b, target) {
			continue
		}
		moves = append(moves, Available{Source: source, Kind: KindMove, Target: target})
	}
	return moves
}

// kingMoves returns every open square along each diagonal up to the first
// occupied one.
func kingMoves(b *board.Board, source board.Index) []Available {
	var moves []Available
	for _, d := range diagonals {
		for step := 1; ; step++ {
			target, ok := source.Translate(step*d[0], step*d[1])
			if !ok || !emptyAt(b, target) {
				break
			}
			moves = append(moves, Available{Source: source, Kind: KindKingMove, Target: target})
		}
	}
	return moves
}

func emptyAt(b *board.Board, idx board.Index) bool {
	tile, err := b.GetTile(idx)
	return err == nil && tile == core.TileEmpty
}
