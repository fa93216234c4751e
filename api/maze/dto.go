// Package mazeapi exposes generated mazes over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// LayoutQuery selects a maze by dimensions and, optionally, seed.
type LayoutQuery struct {
	Rows    int    `form:"rows" binding:"required"`
	Columns int    `form:"cols" binding:"required"`
	Seed    *int64 `form:"seed"`
}

// SaveRequest asks for a maze to be generated and stored.
type SaveRequest struct {
	Rows    int    `json:"rows" binding:"required"`
	Columns int    `json:"cols" binding:"required"`
	Seed    *int64 `json:"seed"`
}

// SaveResponse carries the ID of a stored maze.
type SaveResponse struct {
	ID string `json:"id"`
}

// Position is a column/row pair.
type Position struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// CellResponse describes one cell of a maze.
type CellResponse struct {
	Column    int    `json:"column"`
	Row       int    `json:"row"`
	Direction string `json:"direction"`
	NorthWall bool   `json:"north_wall"`
	SouthWall bool   `json:"south_wall"`
	EastWall  bool   `json:"east_wall"`
	WestWall  bool   `json:"west_wall"`
}

// LayoutResponse describes a whole maze.
type LayoutResponse struct {
	Rows    int            `json:"rows"`
	Columns int            `json:"cols"`
	Seed    int64          `json:"seed"`
	Root    Position       `json:"root"`
	Cells   []CellResponse `json:"cells"`
}

// RecordResponse describes a stored maze.
type RecordResponse struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Maze      LayoutResponse `json:"maze"`
}

func layoutResponse(l maze.Layout, seed int64) LayoutResponse {
	cells := make([]CellResponse, 0, len(l.Cells))
	for _, c := range l.Cells {
		cells = append(cells, CellResponse{
			Column:    c.Column,
			Row:       c.Row,
			Direction: c.Direction.String(),
			NorthWall: c.NorthWall,
			SouthWall: c.SouthWall,
			EastWall:  c.EastWall,
			WestWall:  c.WestWall,
		})
	}
	return LayoutResponse{
		Rows:    l.Rows,
		Columns: l.Columns,
		Seed:    seed,
		Root:    Position{Column: l.RootColumn, Row: l.RootRow},
		Cells:   cells,
	}
}

func recordResponse(r *dmn.MazeRecord) RecordResponse {
	return RecordResponse{
		ID:        r.ID.String(),
		CreatedAt: r.CreatedAt,
		Maze:      layoutResponse(r.Layout, r.Seed),
	}
}
