package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"qgrover"
)

// keyMap defines the demo keybindings.
type keyMap struct {
	PrevTarget key.Binding
	NextTarget key.Binding
	Step       key.Binding
	RunAll     key.Binding
	Reset      key.Binding
	Descriptor key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTarget, k.NextTarget, k.Step, k.RunAll, k.Reset, k.Descriptor, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTarget, k.NextTarget, k.Step},
		{k.RunAll, k.Reset, k.Descriptor, k.Quit},
	}
}

var keys = keyMap{
	PrevTarget: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "target −")),
	NextTarget: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "target +")),
	Step:       key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "step iteration")),
	RunAll:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "run all iterations")),
	Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Descriptor: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle descriptor")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model represents the TUI application state.
type Model struct {
	n, d      int
	diag      []qgrover.Complex
	targetIdx int // T; the target phase is T/2^d

	oracle   *qgrover.Node
	diffuser *qgrover.Node
	state    *qgrover.StateVector
	iter     int
	maxIter  int

	showDesc bool
	width    int
	height   int
	keys     keyMap
	help     help.Model
	status   string
}

func initialModel(n, d, targetIdx int) (Model, error) {
	m := Model{
		n:         n,
		d:         d,
		diag:      rampDiagonal(n),
		targetIdx: targetIdx,
		maxIter:   qgrover.NumIterations(n),
		keys:      keys,
		help:      help.New(),
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// rampDiagonal gives eigenphase θ(x) = x/2^n, so every eigenstate has a
// distinct representable phase when d ≥ n.
func rampDiagonal(n int) []qgrover.Complex {
	diag := make([]qgrover.Complex, 1<<n)
	for x := range diag {
		diag[x] = cmplx.Rect(1, 2*math.Pi*float64(x)/float64(len(diag)))
	}
	return diag
}

// rebuild reconstructs oracle and diffuser for the current target and
// resets the state to the uniform superposition over the main register.
func (m *Model) rebuild() error {
	t := float64(m.targetIdx) / float64(int(1)<<m.d)
	oracle, err := qgrover.BuildOracle(m.n, m.d, m.diag, t)
	if err != nil {
		return err
	}
	m.oracle = oracle
	m.diffuser = qgrover.BuildDiffuser(m.n)
	m.reset()
	return nil
}

func (m *Model) reset() {
	m.state = qgrover.NewStateVector(m.n + m.d)
	for q := 0; q < m.n; q++ {
		qgrover.Hadamard(q).Apply(m.state)
	}
	m.iter = 0
	m.status = ""
}

func (m *Model) step() {
	m.oracle.Apply(m.state)
	m.diffuser.Apply(m.state)
	m.iter++
	if m.iter > m.maxIter {
		m.status = "past the optimal iteration count: amplitude rotates away again"
	} else {
		m.status = ""
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevTarget):
			if m.targetIdx > 0 {
				m.targetIdx--
				if err := m.rebuild(); err != nil {
					m.status = err.Error()
				}
			}
		case key.Matches(msg, m.keys.NextTarget):
			if m.targetIdx < 1<<m.d-1 {
				m.targetIdx++
				if err := m.rebuild(); err != nil {
					m.status = err.Error()
				}
			}
		case key.Matches(msg, m.keys.Step):
			m.step()
		case key.Matches(msg, m.keys.RunAll):
			for m.iter < m.maxIter {
				m.step()
			}
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		case key.Matches(msg, m.keys.Descriptor):
			m.showDesc = !m.showDesc
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderProbPanel())
	if m.showDesc {
		sb.WriteString("\n")
		sb.WriteString(m.renderDescPanel())
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderProbPanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Grover eigenphase search"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "n=%d main, d=%d ancilla   target phase t=%s   iteration %d/%d\n\n",
		m.n, m.d, formatPhase(float64(m.targetIdx)/float64(int(1)<<m.d), m.d), m.iter, m.maxIter)

	probs := m.state.MainProbabilities(m.n)
	for x, p := range probs {
		label := fmt.Sprintf("|%0*b⟩ %5.1f%%", m.n, x, p*100)
		bar := strings.Repeat("█", int(p*barWidth+0.5))

		if m.isTargetOutcome(x) {
			sb.WriteString(targetLabelStyle.Render(fmt.Sprintf("%-*s", labelWidth+7, label)))
			sb.WriteString(targetBarStyle.Render(bar))
		} else {
			sb.WriteString(outcomeLabelStyle.Render(fmt.Sprintf("%-*s", labelWidth+7, label)))
			sb.WriteString(barStyle.Render(bar))
		}
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(m.status))
	}

	return probPanelStyle.Render(sb.String())
}

// isTargetOutcome reports whether main-register outcome x carries the
// target eigenphase.
func (m Model) isTargetOutcome(x int) bool {
	phase := cmplx.Phase(m.diag[x]) / (2 * math.Pi)
	if phase < 0 {
		phase++
	}
	t := float64(m.targetIdx) / float64(int(1)<<m.d)
	return math.Abs(phase-t) < qgrover.Epsilon
}

func (m Model) renderDescPanel() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Circuit descriptor"))
	sb.WriteString("\n\n")

	desc := m.oracle.Describe()
	lines := strings.Split(strings.TrimRight(desc, "\n"), "\n")
	maxLines := 24
	if len(lines) > maxLines {
		shown := lines[:maxLines]
		shown = append(shown, dimStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-maxLines)))
		lines = shown
	}
	sb.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&sb, "\n\n%s", dimStyle.Render(fmt.Sprintf("oracle: %d elementary gates", m.oracle.CountGates())))

	return descPanelStyle.Render(sb.String())
}

func main() {
	n := flag.Int("n", 3, "main register size")
	d := flag.Int("d", 3, "ancilla register size")
	phase := flag.String("phase", "5/8", "target phase, decimal or fraction in [0,1)")
	flag.Parse()

	t, ok := parsePhaseExpr(*phase)
	if !ok {
		log.Fatal("unparseable target phase", "phase", *phase)
	}
	targetIdx := int(math.Round(t * float64(int(1)<<*d)))

	m, err := initialModel(*n, *d, targetIdx)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal("tui error", "err", err)
	}
}
