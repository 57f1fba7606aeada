package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/halldorb/skraflmotor/game"
	"github.com/halldorb/skraflmotor/move"
)

func TestWordCheck(t *testing.T) {
	is := is.New(t)
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/wordcheck")
		is.Equal(r.Header.Get("X-Api-Key"), "secret")
		is.NoErr(json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(WordCheckResult{Word: "hús", OK: true})
	}))
	defer srv.Close()

	c := New(srv.URL, "secret")
	res, err := c.WordCheck(context.Background(), "hús", []string{"hús", "ás", "hús"})
	is.NoErr(err)
	is.True(res.OK)
	is.Equal(res.Word, "hús")

	is.Equal(got["word"], "hús")
	// Duplicate words are collapsed before sending.
	is.Equal(got["words"], []any{"hús", "ás"})
}

func TestWordCheckFresh(t *testing.T) {
	is := is.New(t)
	res := &WordCheckResult{Word: "hús", OK: true}
	is.True(res.Fresh("hús"))
	// The player moved a tile while the check was in flight; the
	// verdict no longer applies.
	is.True(!res.Fresh("húsa"))
}

func TestWordCheckRetries(t *testing.T) {
	is := is.New(t)
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "try again", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(WordCheckResult{Word: "ás", OK: true})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	res, err := c.WordCheck(context.Background(), "ás", []string{"ás"})
	is.NoErr(err)
	is.True(res.OK)
	is.Equal(attempts, 2)
}

func TestSubmitMove(t *testing.T) {
	is := is.New(t)
	var got struct {
		UUID   string   `json:"uuid"`
		MCount int      `json:"mcount"`
		Moves  []string `json:"moves"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/submitmove")
		is.NoErr(json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(MoveResponse{
			Result:   ResultLegal,
			Rack:     "atrékna",
			BagCount: 88,
			NewMoves: []game.ServerMove{
				{Player: game.Local, Coords: "H7", Tiles: "hús", Score: 18},
			},
			Scores: [2]int{18, 0},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	resp, err := c.SubmitMove(context.Background(), "game-uuid", 4, move.NewPassMove())
	is.NoErr(err)
	is.Equal(resp.Result, ResultLegal)
	is.Equal(resp.Rack, "atrékna")
	is.Equal(resp.BagCount, 88)
	is.Equal(len(resp.NewMoves), 1)
	is.True(!resp.GameOver())

	is.Equal(got.UUID, "game-uuid")
	is.Equal(got.MCount, 4)
	is.Equal(got.Moves, []string{"pass"})
}

func TestSubmitMoveRejected(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(MoveResponse{Result: ResultWordNotInDictionary})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	resp, err := c.SubmitMove(context.Background(), "game-uuid", 0, move.NewPassMove())
	is.NoErr(err)
	is.Equal(resp.Result, ResultWordNotInDictionary)
	is.Equal(ResultMessage(resp.Result), "the word is not in the dictionary")
}

func TestSubmitMoveGameOver(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(MoveResponse{Result: ResultGameOver, Scores: [2]int{120, 98}})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	resp, err := c.SubmitMove(context.Background(), "game-uuid", 30, move.NewPassMove())
	is.NoErr(err)
	is.True(resp.GameOver())
}

func TestSubmitMoveInFlight(t *testing.T) {
	is := is.New(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		json.NewEncoder(w).Encode(MoveResponse{Result: ResultLegal})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	done := make(chan error, 1)
	go func() {
		_, err := c.SubmitMove(context.Background(), "game-uuid", 0, move.NewPassMove())
		done <- err
	}()
	<-entered

	_, err := c.SubmitMove(context.Background(), "game-uuid", 0, move.NewPassMove())
	is.True(errors.Is(err, ErrSubmitInFlight))

	close(release)
	is.NoErr(<-done)
}

func TestSubmitMoveServerError(t *testing.T) {
	is := is.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.SubmitMove(context.Background(), "game-uuid", 0, move.NewPassMove())
	is.True(err != nil)
}

func TestResultMessages(t *testing.T) {
	is := is.New(t)
	is.Equal(ResultMessage(ResultLegal), "move accepted")
	is.Equal(ResultMessage(ResultGameOver), "game over")
	is.Equal(ResultMessage(ResultOutOfSync), "the game is out of sync; reload")
	is.Equal(ResultMessage(1234), "unexpected server response")
}
