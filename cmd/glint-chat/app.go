package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/glintui/glint/focus"
	"github.com/glintui/glint/input"
	"github.com/glintui/glint/layout"
	"github.com/glintui/glint/node"
	"github.com/glintui/glint/style"
	"github.com/glintui/glint/textinput"
)

type agentMode uint8

const (
	modeSafe agentMode = iota
	modeAutonomous
	modeJailbreaking
)

func (m agentMode) cycle() agentMode {
	switch m {
	case modeSafe:
		return modeAutonomous
	case modeAutonomous:
		return modeJailbreaking
	default:
		return modeSafe
	}
}

func (m agentMode) label() string {
	switch m {
	case modeSafe:
		return "safe"
	case modeAutonomous:
		return "autonomous"
	case modeJailbreaking:
		return "jailbreaking"
	}
	return "unknown"
}

func modeByName(name string) (agentMode, bool) {
	switch name {
	case "safe":
		return modeSafe, true
	case "autonomous":
		return modeAutonomous, true
	case "jailbreaking":
		return modeJailbreaking, true
	}
	return modeSafe, false
}

// Focus ids. History items bind the range starting at firstItemID.
const (
	inputID          focus.ID = 1
	scrollID         focus.ID = 2
	inputContainerID focus.ID = 10
	firstItemID      focus.ID = 1000
)

const itemGapLines = 1

type chatApp struct {
	logger *log.Logger
	theme  Theme

	focusState *focus.State
	binding    focus.ListBinding
	list       *focus.ListState
	input      *textinput.State

	history        []string
	scrollToBottom bool

	model  string
	models []string
	picker *modelPicker

	mode       agentMode
	currentDir string
	vscodeTerm bool

	width, height int
}

func newChatApp(logger *log.Logger, theme Theme, model string, models []string) *chatApp {
	history := []string{
		"assistant: 안녕하세요! 무엇을 도와드릴까요?",
		"user: 포커스 트리 네비게이션을 개선하고 싶어요.",
		"assistant: 좋아요. Enter로 하위 진입, Esc로 상위 복귀 모델로 가죠.",
	}

	heights := make([]int, len(history))
	for i, msg := range history {
		heights[i] = wrappedLineCount(formatHistoryRow(msg, false), 78)
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	app := &chatApp{
		logger:     logger,
		theme:      theme,
		focusState: focus.NewState(),
		binding:    focus.NewListBinding(firstItemID),
		list:       focus.NewListState(heights, 8, itemGapLines),
		input:      textinput.New(""),
		history:    history,
		model:      model,
		models:     models,
		mode:       modeSafe,
		currentDir: dir,
		vscodeTerm: strings.EqualFold(os.Getenv("TERM_PROGRAM"), "vscode"),
	}
	app.focusState.SetFocused(inputID)
	app.list.SetFocusedIndex(len(history) - 1)
	return app
}

func (a *chatApp) Focus() *focus.State { return a.focusState }

func (a *chatApp) isInputFocused() bool          { return a.focusState.IsFocused(inputID) }
func (a *chatApp) isInputContainerFocused() bool { return a.focusState.IsFocused(inputContainerID) }
func (a *chatApp) isScrollFocused() bool         { return a.focusState.IsFocused(scrollID) }

func (a *chatApp) submitInput() bool {
	text := strings.TrimSpace(a.input.Value())
	if text == "" {
		return false
	}
	a.history = append(a.history, "you: "+text)
	a.input.SetValue("")
	a.scrollToBottom = true
	a.logger.Info("message sent", "chars", len(text))
	return true
}

// formatHistoryRow marks the focused row and indents continuation lines
func formatHistoryRow(message string, focused bool) string {
	marker := " "
	if focused {
		marker = "▶"
	}
	lines := strings.Split(message, "\n")
	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteByte(' ')
	sb.WriteString(lines[0])
	for _, line := range lines[1:] {
		sb.WriteString("\n  ")
		sb.WriteString(line)
	}
	return sb.String()
}

func wrappedLineCount(text string, wrapWidth int) int {
	if wrapWidth < 1 {
		return 1
	}
	lines := 1
	col := 0
	for _, ch := range text {
		if ch == '\n' {
			lines++
			col = 0
			continue
		}
		w := runewidth.RuneWidth(ch)
		if col > 0 && col+w > wrapWidth {
			lines++
			col = 0
		}
		col += w
	}
	return lines
}

func leftRightLine(left, right string, width int) string {
	leftW := runewidth.StringWidth(left)
	rightW := runewidth.StringWidth(right)
	if leftW+rightW+1 > width {
		return left + " " + right
	}
	return left + strings.Repeat(" ", width-leftW-rightW) + right
}

func (a *chatApp) bottomBarText() string {
	var top string
	switch {
	case a.isInputFocused():
		if a.vscodeTerm {
			top = "Alt+Enter send • Enter newline • Esc exit input"
		} else {
			top = "Ctrl+Enter send • Enter newline • Esc exit input"
		}
	case a.isInputContainerFocused():
		top = "Enter edit input • Down move to history • Esc step out"
	case a.isScrollFocused():
		top = "Enter focus item • Up/Down scroll • Esc step out"
	default:
		top = "Up/Down move item • Enter select item • Esc step out"
	}

	mid := "Use arrows / Enter / Esc • / picks model • m cycles mode"
	if a.focusState.QuitArmed() {
		mid = "Press Ctrl+C again to quit"
	}

	line1 := leftRightLine(top, "Model: "+a.model, a.width)
	return line1 + "\n" + mid
}

func (a *chatApp) statusBarNode() node.Node {
	left := "Dir: " + a.currentDir
	right := fmt.Sprintf(" Mode: %s ", a.mode.label())
	leftW := runewidth.StringWidth(left)
	rightW := runewidth.StringWidth(right)
	spaces := 1
	if leftW+rightW+1 <= a.width {
		spaces = a.width - leftW - rightW
	}

	modeStyle := style.TextStyle{}.
		Background(a.theme.ModeBg[a.mode]).
		Color(a.theme.ModeFg[a.mode]).
		Bold()

	return node.NewText(left).
		Run(strings.Repeat(" ", spaces), style.TextStyle{}).
		Run(right, modeStyle).
		Node()
}

func (a *chatApp) Render(width, height int) node.Node {
	a.width, a.height = width, height

	if a.picker != nil {
		return a.picker.render(width, height, a.theme)
	}

	wrapWidth := width - 2
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	heights := make([]int, len(a.history))
	for i, msg := range a.history {
		heights[i] = wrappedLineCount(formatHistoryRow(msg, false), wrapWidth)
	}
	a.list.SetItemHeights(heights)
	a.binding.SyncListFromFocus(a.focusState, a.list)

	if a.scrollToBottom {
		a.scrollToBottom = false
		if n := len(a.history); n > 0 {
			a.list.SetFocusedIndex(n - 1)
			a.focusState.SetFocused(a.binding.FocusID(n - 1))
		}
	}

	inputFocused := a.isInputFocused()

	// Input viewport grows with content up to a fifth of the screen,
	// scrolled so the cursor row stays visible
	dynamicInputMax := height / 5
	if dynamicInputMax < 5 {
		dynamicInputMax = 5
	}
	inputWidth := width
	if inputWidth < 8 {
		inputWidth = 8
	}
	contentWidth := layout.TextInputContentWidth(inputWidth, true, a.input.Value())
	cursorRow, _, totalRows := textinput.VisualRowCol(a.input.Value(), a.input.Cursor(), contentWidth)
	inputViewport := totalRows
	if inputViewport < 1 {
		inputViewport = 1
	}
	if inputViewport > dynamicInputMax {
		inputViewport = dynamicInputMax
	}
	inputOffset := cursorRow + 1 - inputViewport
	if inputOffset < 0 {
		inputOffset = 0
	}

	// input block + help(2) + status(1) + vertical gaps(3)
	reserved := 6 + inputViewport
	historyViewport := height - reserved
	if historyViewport < 3 {
		historyViewport = 3
	}
	a.list.SetViewportLines(historyViewport)
	a.list.EnsureFocusedVisible()

	focusedIndex, hasFocusedItem := a.binding.FocusedIndex(a.focusState, len(a.history))

	historyList := node.NewColumn().Gap(itemGapLines)
	for i, msg := range a.history {
		rowFocused := hasFocusedItem && focusedIndex == i
		historyList = historyList.Child(
			node.NewContainer(node.Plain(formatHistoryRow(msg, rowFocused))).
				Focus(a.binding.FocusID(i)).
				Node(),
		)
	}

	historyView := node.NewContainer(
		node.NewScrollView(historyList.Node()).
			Focus(scrollID).
			ViewportLines(historyViewport).
			OffsetLines(a.list.ScrollOffset()).
			Node(),
	).Node()

	inputView := node.NewContainer(
		node.NewScrollView(node.TextInput{
			Value:       a.input.Value(),
			Cursor:      a.input.Cursor(),
			Placeholder: "Find and fix issues.",
			Focused:     inputFocused,
			ShowGutter:  true,
			FocusID:     inputID,
			HasFocus:    true,
		}).
			ViewportLines(inputViewport).
			OffsetLines(inputOffset).
			Node(),
	).Focus(inputContainerID).Node()

	helpView := node.NewContainer(
		node.NewScrollView(node.Plain(a.bottomBarText())).
			ViewportLines(2).
			Node(),
	).Style(style.BoxStyle{}.Text(a.theme.Help)).Node()

	statusView := node.NewContainer(a.statusBarNode()).
		Style(style.BoxStyle{}.Text(a.theme.Status)).
		Node()

	return node.NewContainer(
		node.NewColumn().Gap(1).
			Child(historyView, inputView, helpView, statusView).
			Node(),
	).Style(style.BoxStyle{}.Text(a.theme.Text)).Node()
}

// OnInput handles events focus navigation ignored. Returns false to quit.
func (a *chatApp) OnInput(ev input.Event, entries []focus.Entry) bool {
	if a.picker != nil {
		if done, chosen := a.picker.handle(ev); done {
			if chosen != "" {
				a.model = chosen
				a.logger.Info("model selected", "model", chosen)
			}
			a.picker = nil
		}
		return true
	}

	inputWidth := a.width
	if inputWidth < 8 {
		inputWidth = 8
	}
	a.input.SetSoftWrapWidth(layout.TextInputContentWidth(inputWidth, true, a.input.Value()))

	if a.isInputFocused() {
		if ev.Kind == input.EventKey && ev.Key == input.KeySubmit {
			a.submitInput()
			return true
		}
		if a.input.HandleInput(ev) {
			return true
		}
	} else if ev.Kind == input.EventKey && ev.Key == input.KeyRune {
		switch ev.Rune {
		case '/':
			a.picker = newModelPicker(a.models, a.model)
			return true
		case 'm':
			a.mode = a.mode.cycle()
			return true
		}
	}

	a.binding.HandleInput(a.focusState, a.list, ev)
	return true
}
