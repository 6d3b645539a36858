package pretty

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/auditkit/ossaudit/common"
)

// ProgressIndicator is what long running fan-out phases report to.
// Step is safe to call from worker goroutines.
type ProgressIndicator interface {
	Start()
	Step(detail string)
	Stop()
}

// ResolutionProgress picks a live terminal view when the terminal is
// interactive, and plain log lines otherwise. Debug output and the
// live view do not mix, so debug mode also falls back to log lines.
func ResolutionProgress(title string, total int) ProgressIndicator {
	if Interactive && !common.DebugFlag() && total > 0 {
		return newTeaProgress(title, total)
	}
	return &plainProgress{title: title, total: total}
}

type plainProgress struct {
	mutex sync.Mutex
	title string
	total int
	done  int
}

func (it *plainProgress) Start() {
	common.Log("%s: %d items.", it.title, it.total)
}

func (it *plainProgress) Step(detail string) {
	it.mutex.Lock()
	defer it.mutex.Unlock()
	it.done += 1
	common.Debug("%s: %d/%d %s", it.title, it.done, it.total, detail)
}

func (it *plainProgress) Stop() {
	common.Log("%s: done.", it.title)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

type progressStep struct {
	detail string
}

type progressDone struct{}

type teaProgress struct {
	title    string
	total    int
	program  *tea.Program
	finished sync.WaitGroup
	mutex    sync.Mutex
	captured []string
}

type teaModel struct {
	title  string
	total  int
	done   int
	detail string
	bar    progress.Model
}

func newTeaProgress(title string, total int) *teaProgress {
	return &teaProgress{title: title, total: total}
}

func (it *teaProgress) Start() {
	width := terminalWidth() - 10
	if width > 60 {
		width = 60
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width))
	model := teaModel{title: it.title, total: it.total, bar: bar}
	it.program = tea.NewProgram(model, tea.WithOutput(os.Stderr))
	common.SetLogInterceptor(func(message string) bool {
		it.mutex.Lock()
		defer it.mutex.Unlock()
		it.captured = append(it.captured, message)
		return true
	})
	it.finished.Add(1)
	go func() {
		defer it.finished.Done()
		it.program.Run()
	}()
}

func (it *teaProgress) Step(detail string) {
	it.program.Send(progressStep{detail: detail})
}

func (it *teaProgress) Stop() {
	it.program.Send(progressDone{})
	it.finished.Wait()
	common.ClearLogInterceptor()
	it.mutex.Lock()
	captured := it.captured
	it.captured = nil
	it.mutex.Unlock()
	// Messages held back during the live view come out in order now.
	for _, message := range captured {
		common.Log("%s", message)
	}
}

func (it teaModel) Init() tea.Cmd {
	return nil
}

func (it teaModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case progressStep:
		it.done += 1
		it.detail = message.detail
		return it, it.bar.SetPercent(float64(it.done) / float64(it.total))
	case progressDone:
		return it, tea.Quit
	case progress.FrameMsg:
		updated, command := it.bar.Update(message)
		it.bar = updated.(progress.Model)
		return it, command
	case tea.KeyMsg:
		if message.String() == "ctrl+c" {
			return it, tea.Quit
		}
	}
	return it, nil
}

var (
	progressTitleStyle  = lipgloss.NewStyle().Bold(true)
	progressDetailStyle = lipgloss.NewStyle().Faint(true)
)

func (it teaModel) View() string {
	header := progressTitleStyle.Render(fmt.Sprintf("%s %d/%d", it.title, it.done, it.total))
	detail := progressDetailStyle.Render(it.detail)
	return fmt.Sprintf("%s\n%s %s\n", header, it.bar.View(), detail)
}
