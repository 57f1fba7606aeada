// Package shell is an interactive front end for the rules engine:
// place and recall tiles, score the tentative move, check words and
// submit to the server.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/halldorb/skraflmotor/board"
	"github.com/halldorb/skraflmotor/client"
	"github.com/halldorb/skraflmotor/config"
	"github.com/halldorb/skraflmotor/game"
	"github.com/halldorb/skraflmotor/move"
	"github.com/halldorb/skraflmotor/tiles"
)

// ShellController drives the readline loop and dispatches commands.
type ShellController struct {
	l       *readline.Instance
	cfg     *config.Config
	sess    *game.Session
	client  *client.Client
	timeout time.Duration
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewShellController creates the shell for one game session.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mskrafl>\033[0m ",
		HistoryFile:     "/tmp/skrafl_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	ts := tiles.NamedTileSet(cfg.GetString("tileset"))
	return &ShellController{
		l:       l,
		cfg:     cfg,
		sess:    game.NewSession(cfg.GetString("game-id"), ts),
		client:  client.New(cfg.GetString("server-url"), cfg.GetString("api-key")),
		timeout: 15 * time.Second,
	}
}

// Session exposes the shell's game session.
func (sc *ShellController) Session() *game.Session {
	return sc.sess
}

// Loop reads and executes commands until exit or interrupt.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.execute(line); err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop")
}

func (sc *ShellController) execute(line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		sc.showMessage(helpText)
	case "board":
		sc.showMessage(sc.sess.Board.String())
	case "rack":
		sc.showMessage(sc.sess.Rack.Display())
	case "set":
		return sc.handleSet(args)
	case "unset":
		return sc.handleUnset(args)
	case "recall":
		return sc.sess.RecallAll()
	case "score":
		return sc.handleScore()
	case "check":
		return sc.handleCheck()
	case "submit":
		return sc.handleSubmit()
	case "pass":
		return sc.submit(move.NewPassMove())
	case "exch":
		return sc.handleExchange(args)
	case "rsgn":
		return sc.submit(move.NewResignMove())
	case "chall":
		return sc.submit(move.NewChallengeMove())
	case "scores":
		mine, theirs := sc.sess.Scores()
		sc.showMessage(fmt.Sprintf("you %d - %d opponent (bag: %d)",
			mine, theirs, sc.sess.BagCount()))
	case "moves":
		for _, h := range sc.sess.History() {
			sc.showMessage(fmt.Sprintf("%d: %s %s %d", h.Player, h.Coords, h.Word, h.Score))
		}
	default:
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
	return nil
}

// handleSet places one tile: `set H8=a` or, for a blank standing for
// e, `set H8=?e`.
func (sc *ShellController) handleSet(args []string) error {
	if len(args) != 1 || !strings.Contains(args[0], "=") {
		return fmt.Errorf("usage: set <coord>=<tile>")
	}
	parts := strings.SplitN(args[0], "=", 2)
	row, col, _, err := board.ParseCoords(strings.ToUpper(parts[0]))
	if err != nil {
		return err
	}
	runes := []rune(parts[1])
	if len(runes) == 0 {
		return fmt.Errorf("usage: set <coord>=<tile>")
	}
	letter := runes[0]
	meaning := letter
	if letter == tiles.Blank {
		if len(runes) != 2 {
			return fmt.Errorf("a blank needs a letter, e.g. ?e")
		}
		meaning = runes[1]
	}
	return sc.sess.PlaceTile(board.Position{Row: row, Col: col}, letter, meaning)
}

func (sc *ShellController) handleUnset(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: unset <coord>")
	}
	row, col, _, err := board.ParseCoords(strings.ToUpper(args[0]))
	if err != nil {
		return err
	}
	return sc.sess.RecallTile(board.Position{Row: row, Col: col})
}

func (sc *ShellController) handleScore() error {
	m, err := sc.sess.TentativeMove()
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("%s %s: %d points (words: %s)",
		m.Coords(), m.Word(), m.Score(), strings.Join(m.Words(), ", ")))
	return nil
}

func (sc *ShellController) handleCheck() error {
	m, err := sc.sess.TentativeMove()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sc.timeout)
	defer cancel()
	res, err := sc.client.WordCheck(ctx, m.Word(), m.Words())
	if err != nil {
		return err
	}
	if !res.Fresh(m.Word()) {
		// The tentative word changed while the request was in flight.
		return nil
	}
	if res.OK {
		sc.showMessage(fmt.Sprintf("%s is valid", m.Word()))
	} else {
		sc.showMessage(fmt.Sprintf("%s is not in the dictionary", m.Word()))
	}
	return nil
}

func (sc *ShellController) handleSubmit() error {
	m, err := sc.sess.TentativeMove()
	if err != nil {
		return err
	}
	return sc.submit(m)
}

func (sc *ShellController) handleExchange(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: exch <letters>")
	}
	m, err := sc.sess.ExchangeMove(args[0])
	if err != nil {
		return err
	}
	return sc.submit(m)
}

func (sc *ShellController) submit(m *move.Move) error {
	ctx, cancel := context.WithTimeout(context.Background(), sc.timeout)
	defer cancel()
	resp, err := sc.client.SubmitMove(ctx, sc.sess.GameID, sc.sess.MoveCount(), m)
	if err != nil {
		return err
	}
	if resp.Result != client.ResultLegal && !resp.GameOver() {
		msg := resp.Message
		if msg == "" {
			msg = client.ResultMessage(resp.Result)
		}
		return fmt.Errorf("server rejected move: %s", msg)
	}
	if err := sc.sess.ApplyUpdate(resp.NewMoves, resp.Rack, resp.BagCount,
		resp.Scores, resp.GameOver()); err != nil {
		return err
	}
	if resp.GameOver() {
		mine, theirs := sc.sess.Scores()
		sc.showMessage(fmt.Sprintf("game over: you %d - %d opponent", mine, theirs))
	} else {
		sc.showMessage(sc.sess.Board.String())
		sc.showMessage("rack: " + sc.sess.Rack.Display())
	}
	return nil
}

func (sc *ShellController) showMessage(msg string) {
	fmt.Fprintln(os.Stdout, msg)
}

func (sc *ShellController) showError(err error) {
	fmt.Fprintln(os.Stdout, "error:", err)
}

const helpText = `commands:
  board              show the board (tentative tiles in upper case)
  rack               show your rack
  set <coord>=<t>    place a tile tentatively (blank: ?e)
  unset <coord>      recall one tentative tile
  recall             recall all tentative tiles
  score              score the tentative move
  check              ask the server whether the words are valid
  submit             submit the tentative move
  pass               pass
  exch <letters>     exchange tiles
  rsgn               resign
  chall              challenge the last move
  scores             show the score line
  moves              show the move history
  exit               leave the shell`
