package runner

import (
	"slices"

	"github.com/samber/lo"

	"github.com/vovakirdan/auto2048/internal/stats"
)

// Confidence is the confidence level, in percent, of Summary.CILow/CIHigh.
const Confidence = 95

// TileCount is the number of games that ended with a given max tile.
type TileCount struct {
	Tile  int
	Games int
}

// Summary aggregates benchmark results.
type Summary struct {
	Games      int
	MeanScore  float64
	Stdev      float64
	CILow      float64
	CIHigh     float64
	Best       Result
	MeanMoves  float64
	TotalMoves int
	MaxTiles   map[int]int // final max tile -> games
}

// Summarize computes score statistics over results.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{MaxTiles: map[int]int{}}
	}

	var score stats.Statistic
	for _, r := range results {
		score.Push(float64(r.Score))
	}
	lo95, hi95 := score.ConfidenceInterval(Confidence)

	total := lo.SumBy(results, func(r Result) int { return r.Moves })

	return Summary{
		Games:     len(results),
		MeanScore: score.Mean(),
		Stdev:     score.Stdev(),
		CILow:     lo95,
		CIHigh:    hi95,
		Best: lo.MaxBy(results, func(a, b Result) bool {
			return a.Score > b.Score
		}),
		MeanMoves:  float64(total) / float64(len(results)),
		TotalMoves: total,
		MaxTiles:   lo.CountValuesBy(results, func(r Result) int { return r.MaxTile }),
	}
}

// Tiles returns MaxTiles sorted by tile, highest first.
func (s Summary) Tiles() []TileCount {
	tiles := lo.Keys(s.MaxTiles)
	slices.Sort(tiles)
	slices.Reverse(tiles)
	return lo.Map(tiles, func(t int, _ int) TileCount {
		return TileCount{Tile: t, Games: s.MaxTiles[t]}
	})
}

// Reached returns the fraction of games whose max tile is at least tile.
func (s Summary) Reached(tile int) float64 {
	if s.Games == 0 {
		return 0
	}
	n := 0
	for t, games := range s.MaxTiles {
		if t >= tile {
			n += games
		}
	}
	return float64(n) / float64(s.Games)
}
