package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences stores persistent front-end settings.
type Preferences struct {
	StartFEN   string    `json:"start_fen"`
	Stats      bool      `json:"stats"`
	LastPlayed time.Time `json:"last_played"`
}

// DefaultPreferences returns default preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Stats:      true,
		LastPlayed: time.Now(),
	}
}

// Stats accumulates results of finished games.
type Stats struct {
	GamesPlayed   int            `json:"games_played"`
	WhiteWins     int            `json:"white_wins"`
	BlackWins     int            `json:"black_wins"`
	Draws         int            `json:"draws"`
	ByTermination map[string]int `json:"by_termination"`
	TotalMoves    int            `json:"total_moves"`
	TotalTime     time.Duration  `json:"total_time"`
	LongestGame   int            `json:"longest_game"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		ByTermination: make(map[string]int),
	}
}

// Result describes one finished game.
type Result struct {
	Winner      string // "white", "black" or "" for a draw
	Termination string // status string, e.g. "checkmate"
	Moves       int
	Duration    time.Duration
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens the database under dir; an empty dir selects the platform
// data directory.
func Open(dir string) (*Storage, error) {
	dbDir, err := databaseDir(dir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if none
// are stored yet.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returning empty stats if none are
// stored yet.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := NewStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame folds one finished game into the statistics.
func (s *Storage) RecordGame(result Result) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalMoves += result.Moves
	stats.TotalTime += result.Duration
	if result.Moves > stats.LongestGame {
		stats.LongestGame = result.Moves
	}

	switch result.Winner {
	case "white":
		stats.WhiteWins++
	case "black":
		stats.BlackWins++
	default:
		stats.Draws++
	}

	if result.Termination != "" {
		stats.ByTermination[result.Termination]++
	}

	return s.SaveStats(stats)
}

// DrawRate returns the fraction of recorded games that were draws, as
// a percentage (0-100).
func (s *Stats) DrawRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.GamesPlayed) * 100
}
