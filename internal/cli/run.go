package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/flick/pkg/log"
	"github.com/macropower/flick/pkg/motion"
	"github.com/macropower/flick/pkg/paging"
	"github.com/macropower/flick/pkg/ui/pagedview"
)

const cmdExamples = `  # Page through 5 demo pages:
  flick

  # More pages:
  flick --pages 12

  # Tune the snap spring:
  flick --frequency 8 --damping 0.8

  # Persist the position across runs:
  flick --state ~/.cache/flick/state.yaml`

type RunArgs struct {
	*RootArgs

	StatePath string
	Pages     int
	Frequency float64
	Damping   float64
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ra.Pages, "pages", 5, "Number of demo pages")
	cmd.Flags().StringVar(&ra.StatePath, "state", "", "Path to a YAML file used to persist the scroll position")
	cmd.Flags().Float64Var(&ra.Frequency, "frequency", motion.DefaultFrequency, "Angular frequency of the snap spring, in Hz")
	cmd.Flags().Float64Var(&ra.Damping, "damping", motion.DefaultDamping, "Damping ratio of the snap spring")

	err := cmd.MarkFlagFilename("state", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark state flag: %w", err))
	}
}

func run(cmd *cobra.Command, ra *RunArgs) error {
	if ra.Pages < 1 {
		return fmt.Errorf("%w: pages must be at least 1", paging.ErrInvalidArgument)
	}

	ctrl, err := paging.New(ra.Pages, 0, 0,
		paging.WithSnapCurve(motion.NewSpring(ra.Frequency, ra.Damping)),
	)
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	if ra.StatePath != "" {
		err := restoreState(ctrl, ra.StatePath)
		if err != nil {
			slog.Warn("could not restore state, starting fresh", slog.Any("err", err))
		}
	}

	// The TUI owns the terminal, so logs accumulate in a ring buffer and are
	// flushed to stderr after the program exits.
	logBuf := log.NewRingBuffer(100)

	logHandler, err := log.CreateHandlerWithStrings(logBuf, ra.LogLevel, ra.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	m := pagedview.New(ctrl, demoPages(ra.Pages))

	p := tea.NewProgram(pagedViewAdapter{model: m},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	flushLogs(cmd.ErrOrStderr(), logBuf)

	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	if ra.StatePath != "" {
		err := saveState(ctrl, ra.StatePath)
		if err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}

	return nil
}

// pagedViewAdapter wraps [pagedview.Model], whose Update returns its concrete
// type, to satisfy [tea.Model].
type pagedViewAdapter struct {
	model pagedview.Model
}

func (a pagedViewAdapter) Init() tea.Cmd {
	return a.model.Init()
}

//nolint:ireturn // Must satisfy [tea.Model].
func (a pagedViewAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.model.Update(msg)

	return pagedViewAdapter{model: m}, cmd
}

func (a pagedViewAdapter) View() string {
	return a.model.View()
}

// demoPages generates n pages of plain-text content.
func demoPages(n int) []string {
	pages := make([]string, n)
	for i := range pages {
		var sb strings.Builder

		fmt.Fprintf(&sb, "Page %d of %d\n", i+1, n)
		sb.WriteString("\n")
		sb.WriteString("  left/right  animate one page\n")
		sb.WriteString("  g/G         first/last page\n")
		sb.WriteString("  f/b         fling forward/back\n")
		sb.WriteString("  wheel       drag\n")
		sb.WriteString("  q           quit\n")

		pages[i] = sb.String()
	}

	return pages
}

func flushLogs(w io.Writer, buf *log.RingBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
