// Package registry provides a global registry for player factories.
// Players register themselves in init() functions, allowing the CLI and
// the TUI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/auto2048/internal/board"
)

// ErrUnknownPlayer is returned by Create for an unregistered ID.
var ErrUnknownPlayer = errors.New("registry: unknown player")

// Player chooses moves for a board. Players contain pure decision logic;
// the caller owns the live board and applies the move.
type Player interface {
	// ID returns a unique identifier (e.g., "expectimax", "random").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// NextMove returns the direction to play, or false when the player
	// sees no legal move.
	NextMove(b board.Board) (board.Direction, bool)
}

// Options configure a player instance.
type Options struct {
	Depth   int   // search plies for searching players
	Workers int   // concurrent top-level searches
	Cache   bool  // memoise search values
	Seed    int64 // randomness for stochastic players
	Logger  *log.Logger
}

// DefaultOptions returns options for a depth-3 parallel search.
func DefaultOptions() Options {
	return Options{Depth: 3, Workers: 4, Cache: true, Seed: 1}
}

// PlayerInfo contains metadata about a registered player.
type PlayerInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new player.
type Factory func(opts Options) Player

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a player factory to the registry.
// Typically called from a player's init() function.
// Panics if a player with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: player %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(DefaultOptions()).Title()
}

// List returns information about all registered players, sorted by ID.
func List() []PlayerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PlayerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PlayerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the factory registered under id.
func Lookup(id string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPlayer, id)
	}
	return f, nil
}

// Create instantiates a new player by its ID.
func Create(id string, opts Options) (Player, error) {
	f, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return f(opts), nil
}

// Exists checks if a player with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
