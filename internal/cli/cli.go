package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"quorum/internal/board"
	"quorum/internal/core"
	"quorum/internal/game"
	"quorum/internal/transport"
)

var _ transport.View = (*CLI)(nil)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdPlay
	CmdLegal
	CmdUndo
	CmdStyle
	CmdVerbose
	CmdHistory
	CmdPGN
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// DisplayStyle selects the glyph set used when drawing the board.
type DisplayStyle string

const (
	StyleCircles DisplayStyle = "circles"
	StyleASCII   DisplayStyle = "ascii"
	StyleBrown   DisplayStyle = "brown"
	StyleGreen   DisplayStyle = "green"
)

type styleGlyphs struct {
	white   string
	black   string
	empty   string
	lightBg string
	darkBg  string
	whiteFg string
	blackFg string
	reset   string
}

var styles = map[DisplayStyle]styleGlyphs{
	StyleCircles: {
		white: "○",
		black: "●",
		empty: "·",
	},
	StyleASCII: {
		white: "o",
		black: "x",
		empty: ".",
	},
	StyleBrown: {
		white:   "●",
		black:   "●",
		empty:   " ",
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		whiteFg: "\033[97m",
		blackFg: "\033[30m",
		reset:   "\033[0m",
	},
	StyleGreen: {
		white:   "●",
		black:   "●",
		empty:   " ",
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		whiteFg: "\033[97m",
		blackFg: "\033[30m",
		reset:   "\033[0m",
	},
}

type CLI struct {
	input   *bufio.Scanner
	output  io.Writer
	style   DisplayStyle
	verbose bool
}

func New(input io.Reader, output io.Writer) *CLI {
	return &CLI{
		input:   bufio.NewScanner(input),
		output:  output,
		style:   StyleCircles,
		verbose: false,
	}
}

// Reads a command synchronously
func (c *CLI) GetCommand() (*Command, error) {
	if !c.input.Scan() {
		if err := c.input.Err(); err != nil {
			return nil, err
		}
		return &Command{Type: CmdQuit}, nil
	}

	input := strings.TrimSpace(c.input.Text())
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "legal":
		return &Command{Type: CmdLegal}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "style":
		return &Command{Type: CmdStyle, Args: args}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "history":
		return &Command{Type: CmdHistory}
	case "pgn":
		return &Command{Type: CmdPGN}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a play: "+" or origin-target notation
		return &Command{Type: CmdPlay, Args: []string{cmd}}
	}
}

func (c *CLI) SetStyle(style DisplayStyle) error {
	if _, ok := styles[style]; !ok {
		return fmt.Errorf("invalid style: %s (use: circles, ascii, brown, green)", style)
	}
	c.style = style
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) ShowPrompt(prompt string) {
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) ReadLine() string {
	if c.input.Scan() {
		return strings.TrimSpace(c.input.Text())
	}
	return ""
}

func (c *CLI) DisplayPosition(p *board.Position) {
	style := styles[c.style]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g h\n")

	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := 0; f < 8; f++ {
			stone := p.Board.StoneAt(board.Sq(f, r))

			if style.lightBg == "" {
				switch stone {
				case core.ColorWhite:
					sb.WriteString(style.white + " ")
				case core.ColorBlack:
					sb.WriteString(style.black + " ")
				default:
					sb.WriteString(style.empty + " ")
				}
			} else {
				bg := style.darkBg
				if (r+f)%2 == 0 {
					bg = style.lightBg
				}

				switch stone {
				case core.ColorWhite:
					sb.WriteString(fmt.Sprintf("%s%s%s %s", bg, style.whiteFg, style.white, style.reset))
				case core.ColorBlack:
					sb.WriteString(fmt.Sprintf("%s%s%s %s", bg, style.blackFg, style.black, style.reset))
				default:
					sb.WriteString(fmt.Sprintf("%s  %s", bg, style.reset))
				}
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new              - Start a new game
  resume <QFEN>    - Resume from a specific board position
  <play>           - Make a play: a movement like b1d3, or + to place stones
  legal            - List every legal play in the current position
  undo [count]     - Undo last play(s), default 1
  style <name>     - Set display style (circles|ascii|brown|green)
  verbose          - Toggle detailed play information
  history          - Show game play history and positions
  pgn              - Show the game transcript in PGN form
  quit/exit        - Exit the program
  help/?           - Show this help message

A movement names the moving stone and its destination; the pivot is the
midpoint between them. Example: b1d3 pivots b1 around c2 to land on d3.`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Quorum!")
	c.ShowMessage("Commands: new, resume <QFEN>, <play>, legal, undo, quit/exit, verbose, history, pgn, help/?")
	c.ShowMessage("Example: 'resume 8/8/8/8/8/8/8/wb6 b' to start from a custom position.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting QFEN: %s\n", g.InitialQFEN()))

	plays := g.Plays()
	for i := 0; i < len(plays); i += 2 {
		moveNum := i/2 + 1
		white := plays[i]
		if i+1 < len(plays) {
			black := plays[i+1]
			c.ShowMessage(fmt.Sprintf("%d. %s | %s", moveNum, white, black))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...", moveNum, white))
		}
	}
	c.ShowMessage(fmt.Sprintf("\nCurrent QFEN: %s", g.CurrentQFEN()))
	c.ShowMessage(fmt.Sprintf("Game state: %s", g.State()))
}

func (c *CLI) ShowPGN(g *game.Game) {
	c.ShowMessage(g.PGN())
}

func (c *CLI) ShowPlayResult(result *game.PlayResult) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("%s played %s (win progress: %+d)",
			result.Player.Name(), result.Play, result.WinProgress))
	}
	if len(result.Suffocated) > 0 {
		c.ShowMessage(fmt.Sprintf("Suffocated: %s", strings.Join(result.Suffocated, " ")))
	}
	if len(result.Converted) > 0 {
		c.ShowMessage(fmt.Sprintf("Converted: %s", strings.Join(result.Converted, " ")))
	}
}

func (c *CLI) ShowLegalPlays(plays []string) {
	if len(plays) == 0 {
		c.ShowMessage("No legal plays.")
		return
	}
	c.ShowMessage(fmt.Sprintf("%d legal plays:", len(plays)))
	c.ShowMessage("  " + strings.Join(plays, " "))
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s", state))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}
