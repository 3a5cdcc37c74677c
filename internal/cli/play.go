package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmolinar/cubesim"
)

var playMaxDepth int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI for playing with the cube.

Keyboard shortcuts:
  u d l r f b   - turn a face clockwise (hold shift for counter-clockwise)
  e m s         - slice moves (shift for counter-clockwise)
  1             - scramble
  2             - solve (runs in the background, shows depth progress)
  3             - cancel a running solve
  0             - reset to solved
  q/Esc         - quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playMaxDepth, "max-depth", 7, "Maximum solver search depth")
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	movesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type solveDepthMsg int
type solveDoneMsg cubesim.SolveResult

// Model
type playModel struct {
	cube *cubesim.Cube

	// Applied move history, newest last.
	moves []cubesim.Move

	// Solver
	solving     bool
	solveDepth  int
	solveCancel context.CancelFunc
	task        *cubesim.SolveTask

	status   string
	err      error
	quitting bool
}

func newPlayModel() *playModel {
	return &playModel{
		cube:   cubesim.NewCube(),
		status: "Ready",
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

// keyMoves maps face keys to moves: lowercase clockwise, uppercase prime.
var keyMoves = map[string]cubesim.Move{
	"u": cubesim.U, "U": cubesim.UPrime,
	"d": cubesim.D, "D": cubesim.DPrime,
	"l": cubesim.L, "L": cubesim.LPrime,
	"r": cubesim.R, "R": cubesim.RPrime,
	"f": cubesim.F, "F": cubesim.FPrime,
	"b": cubesim.B, "B": cubesim.BPrime,
	"e": cubesim.E, "E": cubesim.EPrime,
	"m": cubesim.M, "M": cubesim.MPrime,
	"s": cubesim.S, "S": cubesim.SPrime,
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case solveDepthMsg:
		m.solveDepth = int(msg)
		m.status = fmt.Sprintf("Solving... depth %d", m.solveDepth)
		return m, m.waitForDepth()

	case solveDoneMsg:
		return m.handleSolveDone(cubesim.SolveResult(msg))
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "esc", "ctrl+c":
		m.stopSolve()
		m.quitting = true
		return m, tea.Quit

	case "0":
		m.cube.Reset()
		m.moves = nil
		m.status = "Reset to solved"
		return m, nil

	case "1":
		scramble, err := cubesim.GenerateScramble(20)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.cube.Apply(scramble...)
		m.moves = append(m.moves, scramble...)
		m.status = "Scrambled: " + cubesim.FormatMoves(scramble)
		return m, nil

	case "2":
		if m.solving {
			return m, nil
		}
		return m, m.startSolve()

	case "3":
		if m.solving {
			m.stopSolve()
			m.status = "Cancelling solve..."
		}
		return m, nil
	}

	if move, ok := keyMoves[key]; ok {
		// Moves stay live during a solve; the solver searches its own copy.
		m.cube.ApplyMove(move)
		m.moves = append(m.moves, move)
		m.status = "Applied " + move.Notation()
	}
	return m, nil
}

func (m *playModel) startSolve() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.task = cubesim.NewSolveTask(m.cube, playMaxDepth)
	m.solveCancel = cancel
	m.solving = true
	m.solveDepth = 0
	m.err = nil
	m.status = "Solving..."

	m.task.Run(ctx)
	return tea.Batch(m.waitForDepth(), m.waitForResult())
}

func (m *playModel) stopSolve() {
	if m.solveCancel != nil {
		m.solveCancel()
		m.solveCancel = nil
	}
}

func (m *playModel) waitForDepth() tea.Cmd {
	task := m.task
	return func() tea.Msg {
		depth, ok := <-task.Depths()
		if !ok {
			return nil
		}
		return solveDepthMsg(depth)
	}
}

func (m *playModel) waitForResult() tea.Cmd {
	task := m.task
	return func() tea.Msg {
		return solveDoneMsg(<-task.Result())
	}
}

func (m *playModel) handleSolveDone(res cubesim.SolveResult) (tea.Model, tea.Cmd) {
	m.solving = false
	m.stopSolve()

	switch {
	case errors.Is(res.Err, cubesim.ErrNoSolution):
		m.status = fmt.Sprintf("No solution within depth %d", playMaxDepth)
	case errors.Is(res.Err, cubesim.ErrSolveCancelled):
		m.status = "Solve cancelled"
	case res.Err != nil:
		m.err = res.Err
		m.status = "Solve failed"
	case len(res.Solution) == 0:
		m.status = "Cube was already solved"
	default:
		// The solution solves the snapshot taken when the solve started.
		// Moves made since then are on the user.
		m.cube.Apply(res.Solution...)
		m.moves = append(m.moves, res.Solution...)
		m.status = "Solution applied: " + cubesim.FormatMoves(res.Solution)
	}
	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.cube))
	b.WriteString("\n")

	if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves applied", len(m.moves))))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	if n := len(m.moves); n > 0 {
		recent := m.moves
		if n > 12 {
			recent = m.moves[n-12:]
		}
		b.WriteString(movesStyle.Render("Recent: " + cubesim.FormatMoves(recent)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u/d/l/r/f/b/e/m/s moves (shift = ')  1 scramble  2 solve  3 cancel  0 reset  q quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel())
	_, err := p.Run()
	return err
}
