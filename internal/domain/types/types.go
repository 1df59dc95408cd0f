// Package types contains the read shapes shared between the derived
// view folds and the HTTP API.
package types

import "time"

// LeaderboardEntry is one leaderboard row.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
}

// PlayerStats aggregates a player's full game history.
type PlayerStats struct {
	PlayerID          string    `json:"player_id"`
	TotalGames        int       `json:"total_games"`
	Wins              int       `json:"wins"`
	Losses            int       `json:"losses"`
	WinRate           float64   `json:"win_rate"`
	CurrentStreak     int       `json:"current_streak"`
	LongestWinStreak  int       `json:"longest_win_streak"`
	LongestLossStreak int       `json:"longest_losing_streak"`
	PeakRating        float64   `json:"peak_rating"`
	PeakRatingSeq     uint64    `json:"peak_rating_seq"`
	PeakRatingAt      time.Time `json:"peak_rating_date"`
	AvgRatingChange   float64   `json:"avg_rating_change"`
}

// HeadToHead summarizes a player's record against one opponent.
type HeadToHead struct {
	OpponentID   string  `json:"opponent_id"`
	OpponentName string  `json:"opponent_name"`
	TotalGames   int     `json:"total_games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
	LastResult   string  `json:"last_result"` // "W", "L", or "D"
}

// RatingPoint is one sample of a player's rating trajectory.
type RatingPoint struct {
	Seq    uint64    `json:"seq"`
	At     time.Time `json:"at"`
	Rating float64   `json:"rating"`
}

// RecentGame is one row of a player's recent-games strip.
type RecentGame struct {
	GameID string    `json:"game_id"`
	At     time.Time `json:"at"`
	Won    bool      `json:"won"`
}

// GameView is the API representation of a ledger game, participant
// snapshots included.
type GameView struct {
	ID        string            `json:"id"`
	Seq       uint64            `json:"seq"`
	GameType  string            `json:"game_type"`
	CreatedAt time.Time         `json:"created_at"`
	Players   []ParticipantView `json:"players"`
}

// ParticipantView is the API representation of one game participant.
type ParticipantView struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Team         int     `json:"team"`
	Score        int     `json:"score"`
	RatingBefore float64 `json:"rating_before"`
	RatingAfter  float64 `json:"rating_after"`
}

// PlayerView is the API representation of a registered player.
type PlayerView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
