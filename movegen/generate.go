package movegen

import (
	"github.com/kestrelchess/core/attack"
	"github.com/kestrelchess/core/bitboard"
	"github.com/kestrelchess/core/castling"
	"github.com/kestrelchess/core/move"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// Generate returns every legal move available to pos.SideToMove. The
// moves are returned in no particular order (spec §4.6); callers must
// not depend on it.
func Generate(pos *position.Position) []move.Move {
	s := newState(pos)

	// 31 is the average branching factor of a chess position.
	// https://chess.stackexchange.com/a/24325/33336
	moves := make([]move.Move, 0, 31)

	s.appendKingMoves(pos, &moves)

	if s.checkN >= 2 {
		// double check: only the king can move.
		return moves
	}

	s.appendKnightMoves(pos, &moves)
	s.appendBishopMoves(pos, &moves)
	s.appendRookMoves(pos, &moves)
	s.appendQueenMoves(pos, &moves)
	s.appendPawnMoves(pos, &moves)

	return moves
}

func (s *state) appendKingMoves(pos *position.Position, moves *[]move.Move) {
	kingSq := pos.Kings[s.us]

	candidates := attack.King[kingSq] & s.kingTarget
	for candidates != bitboard.Empty {
		*moves = append(*moves, move.New(kingSq, candidates.Pop()))
	}

	if s.checkN == 0 {
		s.appendCastlingMoves(pos, moves)
	}
}

func (s *state) appendCastlingMoves(pos *position.Position, moves *[]move.Move) {
	occ := s.occupied
	seen := s.seenByEnemy

	switch s.us {
	case piece.White:
		if pos.CastlingRights&castling.WhiteKingside != 0 &&
			(occ|seen)&bitboard.F1G1 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(square.E1, square.G1))
		}
		if pos.CastlingRights&castling.WhiteQueenside != 0 &&
			occ&bitboard.B1C1D1 == bitboard.Empty &&
			seen&bitboard.C1D1 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(square.E1, square.C1))
		}
	case piece.Black:
		if pos.CastlingRights&castling.BlackKingside != 0 &&
			(occ|seen)&bitboard.F8G8 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(square.E8, square.G8))
		}
		if pos.CastlingRights&castling.BlackQueenside != 0 &&
			occ&bitboard.B8C8D8 == bitboard.Empty &&
			seen&bitboard.C8D8 == bitboard.Empty {
			*moves = append(*moves, move.NewCastle(square.E8, square.C8))
		}
	}
}

func (s *state) appendKnightMoves(pos *position.Position, moves *[]move.Move) {
	// a pinned knight has no legal move: every knight move leaves
	// whichever ray pins it.
	knights := pos.Pieces(piece.Knight, s.us) &^ (s.pinnedD | s.pinnedHV)
	for knights != bitboard.Empty {
		from := knights.Pop()
		targets := attack.Knight[from] & s.target
		serialize(moves, from, targets)
	}
}

func (s *state) appendBishopMoves(pos *position.Position, moves *[]move.Move) {
	s.appendDiagonalMoves(pos, pos.Pieces(piece.Bishop, s.us), moves)
}

func (s *state) appendRookMoves(pos *position.Position, moves *[]move.Move) {
	s.appendOrthogonalMoves(pos, pos.Pieces(piece.Rook, s.us), moves)
}

func (s *state) appendQueenMoves(pos *position.Position, moves *[]move.Move) {
	queens := pos.Pieces(piece.Queen, s.us)
	s.appendDiagonalMoves(pos, queens, moves)
	s.appendOrthogonalMoves(pos, queens, moves)
}

// appendDiagonalMoves generates moves for every piece in bb that slides
// like a bishop (bishops and queens).
func (s *state) appendDiagonalMoves(pos *position.Position, bb bitboard.Board, moves *[]move.Move) {
	bb &^= s.pinnedHV // a piece pinned orthogonally cannot move diagonally at all

	pinned := bb & s.pinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		targets := attack.Bishop(from, s.occupied) & s.target & s.pinnedD
		serialize(moves, from, targets)
	}

	unpinned := bb &^ s.pinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		targets := attack.Bishop(from, s.occupied) & s.target
		serialize(moves, from, targets)
	}
}

// appendOrthogonalMoves generates moves for every piece in bb that
// slides like a rook (rooks and queens).
func (s *state) appendOrthogonalMoves(pos *position.Position, bb bitboard.Board, moves *[]move.Move) {
	bb &^= s.pinnedD

	pinned := bb & s.pinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		targets := attack.Rook(from, s.occupied) & s.target & s.pinnedHV
		serialize(moves, from, targets)
	}

	unpinned := bb &^ s.pinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		targets := attack.Rook(from, s.occupied) & s.target
		serialize(moves, from, targets)
	}
}

// serialize expands a target bitboard into individual moves from a
// fixed origin square.
func serialize(moves *[]move.Move, from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		*moves = append(*moves, move.New(from, targets.Pop()))
	}
}

func appendPromotions(moves *[]move.Move, from, to square.Square) {
	*moves = append(*moves,
		move.NewPromotion(from, to, move.Queen),
		move.NewPromotion(from, to, move.Rook),
		move.NewPromotion(from, to, move.Bishop),
		move.NewPromotion(from, to, move.Knight),
	)
}

func (s *state) appendPawnMoves(pos *position.Position, moves *[]move.Move) {
	var down square.Square // added to a target square to get the push origin
	var left, right square.Square
	var promoRank, doublePushRank bitboard.Board

	left, right = -1, 1

	switch s.us {
	case piece.White:
		down = 8
		promoRank = bitboard.Rank8
		doublePushRank = bitboard.Rank3
	case piece.Black:
		down = -8
		promoRank = bitboard.Rank1
		doublePushRank = bitboard.Rank6
	}

	pawns := pos.Pieces(piece.Pawn, s.us)
	captureTarget := s.enemies & s.checkMask
	pushTarget := s.checkMask &^ s.occupied

	attackers := pawns &^ s.pinnedHV // horizontally/vertically pinned pawns can never capture
	unpinnedAttackers := attackers &^ s.pinnedD
	pinnedAttackers := attackers & s.pinnedD

	attacksLeft := unpinnedAttackers.Up(s.us).West() & captureTarget
	attacksLeft |= pinnedAttackers.Up(s.us).West() & captureTarget & s.pinnedD

	attacksRight := unpinnedAttackers.Up(s.us).East() & captureTarget
	attacksRight |= pinnedAttackers.Up(s.us).East() & captureTarget & s.pinnedD

	for bb := attacksLeft &^ promoRank; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, move.New(to+down+right, to))
	}
	for bb := attacksRight &^ promoRank; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, move.New(to+down+left, to))
	}
	for bb := attacksLeft & promoRank; bb != bitboard.Empty; {
		to := bb.Pop()
		appendPromotions(moves, to+down+right, to)
	}
	for bb := attacksRight & promoRank; bb != bitboard.Empty; {
		to := bb.Pop()
		appendPromotions(moves, to+down+left, to)
	}

	pushers := pawns &^ s.pinnedD
	unpinnedPushers := pushers &^ s.pinnedHV
	pinnedPushers := pushers & s.pinnedHV

	// pinned pushers may still push along their own pin ray.
	unfiltered := unpinnedPushers.Up(s.us) &^ s.occupied
	unfiltered |= pinnedPushers.Up(s.us) & s.pinnedHV &^ s.occupied

	doublePush := (unfiltered & doublePushRank).Up(s.us) & pushTarget
	singlePush := unfiltered & pushTarget

	for bb := singlePush &^ promoRank; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, move.New(to+down, to))
	}
	for bb := doublePush; bb != bitboard.Empty; {
		to := bb.Pop()
		*moves = append(*moves, move.New(to+down+down, to))
	}
	for bb := singlePush & promoRank; bb != bitboard.Empty; {
		to := bb.Pop()
		appendPromotions(moves, to+down, to)
	}

	s.appendEnPassant(pos, attackers, moves)
}

func (s *state) appendEnPassant(pos *position.Position, attackers bitboard.Board, moves *[]move.Move) {
	target := pos.EnPassantTarget
	if target == square.None {
		return
	}

	var down square.Square
	var epRank bitboard.Board
	if s.us == piece.White {
		down = 8
		epRank = bitboard.Rank5
	} else {
		down = -8
		epRank = bitboard.Rank4
	}

	capturedPawnSq := target + down

	epMask := bitboard.Squares[target] | bitboard.Squares[capturedPawnSq]
	if s.checkMask&epMask == bitboard.Empty {
		// in check, and neither the capture square nor the captured pawn
		// resolves it.
		return
	}

	kingSq := pos.Kings[s.us]
	queens := pos.Pieces(piece.Queen, s.them)
	enemyRooks := (pos.Pieces(piece.Rook, s.them) | queens) & epRank
	kingOnRank := bitboard.Squares[kingSq] & epRank != bitboard.Empty
	possibleRookPin := kingOnRank && enemyRooks != bitboard.Empty

	candidates := attack.Pawn[s.them][target] & attackers
	for candidates != bitboard.Empty {
		from := candidates.Pop()

		if s.pinnedD.IsSet(from) && !s.pinnedD.IsSet(target) {
			continue // pinned diagonally along a ray that doesn't include the ep square
		}

		if possibleRookPin {
			// simulate removing both pawns and check whether a rook ray
			// from the king now hits an enemy rook or queen: the
			// horizontal discovered-check edge case (spec §4.6).
			scratch := s.occupied &^ (bitboard.Squares[from] | bitboard.Squares[capturedPawnSq])
			if attack.Rook(kingSq, scratch)&enemyRooks != bitboard.Empty {
				continue
			}
		}

		*moves = append(*moves, move.NewEnPassant(from, target))
	}
}
