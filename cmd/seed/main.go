// Command seed populates a running volley instance with demo players
// and a randomized game history, exercising record, edit, and delete
// through the public API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"
)

// Default configuration constants.
const (
	defaultPlayers = 8
	defaultGames   = 50
	defaultTimeout = 10 * time.Second
	runTimeout     = 2 * time.Minute
)

var demoNames = []string{
	"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi",
	"Ivan", "Judy", "Mallory", "Niaj", "Olivia", "Peggy", "Rupert", "Sybil",
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "Base URL of the service")
		players = flag.Int("players", defaultPlayers, "Number of demo players to register")
		games   = flag.Int("games", defaultGames, "Number of random games to record")
		doubles = flag.Bool("doubles", true, "Mix doubles games in with singles")
		churn   = flag.Bool("churn", true, "Edit and delete a few games after seeding")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	c := &client{
		base: *baseURL,
		http: &http.Client{Timeout: *timeout},
	}
	rng := rand.New(rand.NewSource(*seed))

	if *players > len(demoNames) {
		*players = len(demoNames)
	}
	ids := make([]string, 0, *players)
	for i := 0; i < *players; i++ {
		id, err := c.registerPlayer(ctx, demoNames[i])
		if err != nil {
			fail("register player", err)
		}
		ids = append(ids, id)
	}
	fmt.Printf("registered %d players\n", len(ids))

	gameIDs := make([]string, 0, *games)
	for i := 0; i < *games; i++ {
		id, err := c.recordGame(ctx, randomGame(rng, ids, *doubles))
		if err != nil {
			fail("record game", err)
		}
		gameIDs = append(gameIDs, id)
	}
	fmt.Printf("recorded %d games\n", len(gameIDs))

	if *churn && len(gameIDs) > 4 {
		// Flip the outcome of an early game and drop another, forcing
		// suffix replays over most of the ledger.
		edit := gameIDs[rng.Intn(len(gameIDs)/2)]
		if err := c.editGame(ctx, edit, rng.Intn(5), 10); err != nil {
			fail("edit game", err)
		}
		del := gameIDs[rng.Intn(len(gameIDs)/2)]
		if err := c.deleteGame(ctx, del); err != nil {
			fail("delete game", err)
		}
		fmt.Printf("edited %s and deleted %s\n", edit, del)
	}

	board, err := c.leaderboard(ctx)
	if err != nil {
		fail("fetch leaderboard", err)
	}
	fmt.Println("leaderboard:")
	for _, row := range board {
		fmt.Printf("  %2d. %-10s %7.1f (%dW/%dL)\n", row.Rank, row.Name, row.Rating, row.Wins, row.Losses)
	}
}

func fail(op string, err error) {
	os.Stderr.WriteString(op + ": " + err.Error() + "\n")
	os.Exit(1)
}

type team struct {
	PlayerIDs []string `json:"player_ids"`
	Score     int      `json:"score"`
}

type gameRequest struct {
	GameType string `json:"game_type"`
	Teams    []team `json:"teams"`
}

// randomGame draws distinct players and a 10-to-something scoreline.
func randomGame(rng *rand.Rand, ids []string, allowDoubles bool) gameRequest {
	size := 1
	if allowDoubles && len(ids) >= 4 && rng.Intn(2) == 0 {
		size = 2
	}
	picked := rng.Perm(len(ids))[:size*2]
	loserScore := rng.Intn(10)
	g := gameRequest{GameType: "singles"}
	if size == 2 {
		g.GameType = "doubles"
	}
	side1 := make([]string, 0, size)
	side2 := make([]string, 0, size)
	for i, idx := range picked {
		if i < size {
			side1 = append(side1, ids[idx])
		} else {
			side2 = append(side2, ids[idx])
		}
	}
	if rng.Intn(2) == 0 {
		g.Teams = []team{{side1, 10}, {side2, loserScore}}
	} else {
		g.Teams = []team{{side1, loserScore}, {side2, 10}}
	}
	return g
}

type client struct {
	base string
	http *http.Client
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *client) registerPlayer(ctx context.Context, name string) (string, error) {
	var p struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/players", map[string]string{"name": name}, &p)
	return p.ID, err
}

func (c *client) recordGame(ctx context.Context, g gameRequest) (string, error) {
	var v struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/games", g, &v)
	return v.ID, err
}

func (c *client) editGame(ctx context.Context, id string, s1, s2 int) error {
	body := map[string]int{"team1_score": s1, "team2_score": s2}
	return c.do(ctx, http.MethodPut, "/api/games/"+id, body, nil)
}

func (c *client) deleteGame(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/games/"+id, nil, nil)
}

type leaderboardRow struct {
	Rank   int     `json:"rank"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
}

func (c *client) leaderboard(ctx context.Context) ([]leaderboardRow, error) {
	var rows []leaderboardRow
	err := c.do(ctx, http.MethodGet, "/api/leaderboard", nil, &rows)
	return rows, err
}
