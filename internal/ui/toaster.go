package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/log"
	"github.com/vidtogallery/vidtogallery/session"
	"github.com/vidtogallery/vidtogallery/style"
	"github.com/vidtogallery/vidtogallery/util"
)

const fallbackWidth = 80

// Toaster prints notifications to a writer. It implements session.Notifier.
type Toaster struct {
	out     io.Writer
	animate bool
	width   int
	mu      sync.Mutex
}

var _ session.Notifier = (*Toaster)(nil)

// NewToaster creates a toaster writing to out. The spinner is only animated
// on terminals and when toast.animate is enabled.
func NewToaster(out io.Writer) *Toaster {
	return &Toaster{
		out:     out,
		animate: viper.GetBool(key.ToastAnimate) && util.IsTerminal(out),
		width:   util.TerminalWidth(out, fallbackWidth),
	}
}

// ShowLoading displays message until the returned toast is dismissed.
func (t *Toaster) ShowLoading(message string) session.Toast {
	if t.animate {
		return t.spin(message)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	erase := util.PrintErasable(t.out, fmt.Sprintf("%s %s", icon.Get(icon.Progress), message))
	return &toast{dismiss: func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		erase()
	}}
}

// ShowSuccess prints a success line.
func (t *Toaster) ShowSuccess(message string) {
	t.print(icon.Success, style.Fg(style.SuccessColor), message)
}

// ShowFailure prints a failure line.
func (t *Toaster) ShowFailure(message string) {
	t.print(icon.Fail, style.Fg(style.ErrorColor), message)
}

func (t *Toaster) print(i icon.Icon, paint func(string) string, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prefix := icon.Get(i)
	if prefix != "" {
		prefix += " "
	}
	text := wordwrap.String(message, util.Max(t.width-len(prefix), 20))
	fmt.Fprintln(t.out, paint(prefix+text))
}

func (t *Toaster) spin(message string) session.Toast {
	program := tea.NewProgram(
		newLoadingModel(message),
		tea.WithOutput(t.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	ctx, finished := context.WithCancel(context.Background())
	go func() {
		defer finished()
		if _, err := program.Run(); err != nil {
			log.WithError(err).Warn("loading toast")
		}
	}()

	return &toast{dismiss: func() {
		program.Send(dismissMsg{})
		<-ctx.Done()
	}}
}

// toast runs its dismiss function on the first Dismiss call only.
type toast struct {
	once    sync.Once
	dismiss func()
}

func (t *toast) Dismiss() {
	t.once.Do(t.dismiss)
}
