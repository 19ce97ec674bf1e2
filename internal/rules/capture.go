// FILE: internal/rules/capture.go
package rules

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// jump is one hop of a capture chain.
type jump struct {
	captured board.Index
	landing  board.Index
}

// captureChains returns every maximal capture chain the piece at src can
// perform, as ordered jump sequences. Continuations are searched on a board
// copy with the jump already applied, so a piece can never be captured
// twice within one chain.
func captureChains(b *board.Board, src board.Index, king bool) [][]jump {
	var chains [][]jump
	for _, j := range jumps(b, src, king) {
		sim := b.Clone()
		applyJump(sim, src, j)

		tails := captureChains(sim, j.landing, king)
		if len(tails) == 0 {
			chains = append(chains, []jump{j})
			continue
		}
		for _, tail := range tails {
			chain := make([]jump, 0, len(tail)+1)
			chain = append(chain, j)
			chain = append(chain, tail...)
			chains = append(chains, chain)
		}
	}
	return chains
}

// jumps returns the single-hop capture options for the piece at src.
func jumps(b *board.Board, src board.Index, king bool) []jump {
	tile, err := b.GetTile(src)
	if err != nil {
		return nil
	}
	owner, ok := tile.Owner()
	if !ok {
		return nil
	}
	enemy := owner.Enemy()

	if king {
		return kingJumps(b, src, enemy)
	}
	return manJumps(b, src, enemy)
}

// manJumps checks the four two-step diagonal hops; captures are not
// restricted to the forward directions. The midpoint lies strictly between
// source and target, so once the target is on the board the midpoint is
// too.
func manJumps(b *board.Board, src board.Index, enemy core.Player) []jump {
	var out []jump
	for _, d := range diagonals {
		target, ok := src.Translate(2*d[0], 2*d[1])
		if !ok || !emptyAt(b, target) {
			continue
		}
		mid, ok := src.Translate(d[0], d[1])
		if !ok {
			continue
		}
		tile, err := b.GetTile(mid)
		if err != nil {
			continue
		}
		if owner, occupied := tile.Owner(); occupied && owner == enemy {
			out = append(out, jump{captured: mid, landing: target})
		}
	}
	return out
}

// kingJumps scans outward along each diagonal: the first occupied square
// must hold an enemy piece, and every open square beyond it is a separate
// landing option.
func kingJumps(b *board.Board, src board.Index, enemy core.Player) []jump {
	var out []jump
	for _, d := range diagonals {
		var captured board.Index
		found := false
		for step := 1; ; step++ {
			sq, ok := src.Translate(step*d[0], step*d[1])
			if !ok {
				break
			}
			tile, err := b.GetTile(sq)
			if err != nil {
				break
			}

			if !found {
				if tile == core.TileEmpty {
					continue
				}
				owner, _ := tile.Owner()
				if owner != enemy {
					break
				}
				captured = sq
				found = true
				continue
			}

			if tile != core.TileEmpty {
				break
			}
			out = append(out, jump{captured: captured, landing: sq})
		}
	}
	return out
}

// applyJump executes one hop on a simulation board.
func applyJump(b *board.Board, src board.Index, j jump) {
	tile, err := b.GetTile(src)
	if err != nil {
		panic("internal error, shouldn't get here: " + err.Error())
	}
	mustSet(b, src, core.TileEmpty)
	mustSet(b, j.captured, core.TileEmpty)
	mustSet(b, j.landing, tile)
}

// chainMove converts a jump chain into an Available move.
func chainMove(source board.Index, chain []jump, king bool) Available {
	captured := make([]board.Index, len(chain))
	for i, j := range chain {
		captured[i] = j.captured
	}

	kind := KindCapture
	switch {
	case king && len(chain) > 1:
		kind = KindKingMultiCapture
	case king:
		kind = KindKingCapture
	case len(chain) > 1:
		kind = KindMultiCapture
	}

	return Available{
		Source:   source,
		Kind:     kind,
		Target:   chain[len(chain)-1].landing,
		Captured: captured,
	}
}

// mustSet writes a tile at an index the rule engine itself produced;
// failure here is a defect, not a runtime condition.
func mustSet(b *board.Board, idx board.Index, tile core.Tile) {
	if err := b.SetTile(idx, tile); err != nil {
		panic("internal error, shouldn't get here: " + err.Error())
	}
}
