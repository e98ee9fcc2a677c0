package game

import (
	"math/rand"
	"time"
)

type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game over"
	}
	return "unknown"
}

// Command is one player input for a loop iteration.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdRotate
	CmdAccelerate
	CmdQuit
)

type GameState struct {
	Board        *Board
	CurrentPiece *Piece
	Queue        *Lookahead
	Score        int
	Lines        int

	status Status
	timer  *DropTimer
}

// NewGameState starts a game on an empty board. rng is the process-wide
// source; now starts the drop timer.
func NewGameState(rng *rand.Rand, now time.Time) *GameState {
	gs := &GameState{
		Board: NewBoard(),
		Queue: NewLookahead(rng),
		timer: NewDropTimer(now),
	}
	gs.spawn()
	return gs
}

func (gs *GameState) Status() Status { return gs.status }

func (gs *GameState) IsGameOver() bool { return gs.status == StatusGameOver }

// Timer exposes the drop scheduler.
func (gs *GameState) Timer() *DropTimer { return gs.timer }

func (gs *GameState) MoveLeft() bool {
	return gs.shift(-1)
}

func (gs *GameState) MoveRight() bool {
	return gs.shift(1)
}

func (gs *GameState) shift(dx int) bool {
	if gs.IsGameOver() {
		return false
	}
	p := gs.CurrentPiece
	if gs.Board.Collides(p.Shape, p.Pos, dx, 0) {
		return false
	}
	p.Pos.X += dx
	return true
}

// Rotate turns the active piece clockwise in place. A rotation that would
// collide is dropped and the piece keeps its orientation.
func (gs *GameState) Rotate() bool {
	if gs.IsGameOver() {
		return false
	}
	p := gs.CurrentPiece
	rotated := p.Shape.Rotate()
	if gs.Board.Collides(rotated, p.Pos, 0, 0) {
		return false
	}
	p.Shape = rotated
	return true
}

func (gs *GameState) SetAccelerated(on bool) {
	gs.timer.SetAccelerated(on)
}

// Apply runs one iteration's command. Acceleration stays on only while
// CmdAccelerate keeps arriving; any other command, or none, turns it off.
// CmdQuit is left to the caller, which owns the session.
func (gs *GameState) Apply(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		gs.MoveLeft()
	case CmdMoveRight:
		gs.MoveRight()
	case CmdRotate:
		gs.Rotate()
	}
	gs.SetAccelerated(cmd == CmdAccelerate)
}

// Update is the timed gravity check. When the interval has elapsed the
// piece falls one row, or locks if it cannot.
func (gs *GameState) Update(now time.Time) Status {
	if gs.IsGameOver() {
		return gs.status
	}
	if !gs.timer.Due(now) {
		return gs.status
	}
	gs.timer.Reset(now)

	p := gs.CurrentPiece
	if !gs.Board.Collides(p.Shape, p.Pos, 0, 1) {
		p.Pos.Y++
		return gs.status
	}
	gs.lock()
	return gs.status
}

// lock commits the active piece, clears rows, scores and spawns the next.
func (gs *GameState) lock() {
	p := gs.CurrentPiece
	gs.Board.Place(p.Shape, p.Pos, CellFor(p.Type))

	cleared := gs.Board.ClearFullRows()
	gs.Lines += cleared
	gs.Score += ScoreFor(cleared)

	gs.spawn()
}

// spawn takes the next piece from the queue. A piece that collides where
// it appears ends the game; the board is left as it was.
func (gs *GameState) spawn() {
	gs.CurrentPiece = NewPiece(gs.Queue.Pop())
	p := gs.CurrentPiece
	if gs.Board.Collides(p.Shape, p.Pos, 0, 0) {
		gs.status = StatusGameOver
	}
}

// Snapshot is a read-only copy of everything a renderer draws.
type Snapshot struct {
	Board  [BoardHeight][BoardWidth]Cell
	Piece  Piece
	GhostY int
	Next   [LookaheadSize]PieceType
	Score  int
	Lines  int
	Status Status
}

func (gs *GameState) Snapshot() Snapshot {
	p := gs.CurrentPiece.clone()
	ghost := p.Pos.Y
	if gs.status == StatusRunning {
		ghost += gs.Board.DropDistance(p.Shape, p.Pos)
	}
	return Snapshot{
		Board:  gs.Board.Rows(),
		Piece:  *p,
		GhostY: ghost,
		Next:   gs.Queue.Peek(),
		Score:  gs.Score,
		Lines:  gs.Lines,
		Status: gs.status,
	}
}
