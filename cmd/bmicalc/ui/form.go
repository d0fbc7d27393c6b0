package ui

import (
	"errors"
	"strings"

	"bmicalc/internal/bmi"
	"bmicalc/internal/config"
	"bmicalc/internal/logging"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Focus targets, in tab order.
const (
	FocusFeet = iota
	FocusInches
	FocusWeight
	FocusCalculate

	focusCount
)

// numericRunes are the characters an HTML number input lets through.
const numericRunes = "0123456789.-+eE"

// Options configures a FormModel.
type Options struct {
	Engine          bmi.Engine
	NumericKeysOnly bool
	Theme           Theme
}

// OptionsFromConfig maps the config file onto form options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Engine:          bmi.Engine{StrictNumbers: cfg.Engine.StrictNumbers},
		NumericKeysOnly: cfg.UI.NumericKeysOnly,
		Theme:           ThemeByName(cfg.UI.Theme),
	}
}

// ConfigReloadedMsg carries a freshly loaded config into the running form.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// FormModel is the BMI form: three text fields, a Calculate trigger, and a
// slot that holds either the last result or the last validation error.
type FormModel struct {
	inputs []textinput.Model
	focus  int

	engine      bmi.Engine
	numericOnly bool

	// At most one of result and errMsg is set.
	result *bmi.Result
	errMsg string

	showHelp bool
	help     string

	width  int
	height int
	styles Styles
}

// NewFormModel creates the form with focus on the feet field.
func NewFormModel(opts Options) FormModel {
	m := FormModel{
		inputs:      make([]textinput.Model, FocusCalculate),
		engine:      opts.Engine,
		numericOnly: opts.NumericKeysOnly,
		styles:      NewStyles(opts.Theme),
	}

	placeholders := [...]string{"Enter feet", "Enter inches", "Enter your weight"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 16
		ti.Width = 24
		ti.Prompt = "› "
		m.inputs[i] = ti
	}
	m.applyStyles()
	m.inputs[FocusFeet].Focus()
	m.help = renderHelp(opts.Theme, helpWidth(0))

	return m
}

// Init starts the cursor blinking.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help = renderHelp(m.styles.Theme, helpWidth(msg.Width))
		return m, nil

	case ConfigReloadedMsg:
		m = m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "tab", "down":
			return m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m.setFocus(m.focus - 1)
		case "ctrl+s":
			return m.Calculate(), nil
		case "enter":
			if m.focus == FocusCalculate {
				return m.Calculate(), nil
			}
			return m.setFocus(m.focus + 1)
		}

		if m.focus == FocusCalculate {
			if msg.Type == tea.KeySpace {
				return m.Calculate(), nil
			}
			return m, nil
		}

		if m.numericOnly && msg.Type == tea.KeyRunes {
			msg.Runes = filterNumeric(msg.Runes)
			if len(msg.Runes) == 0 {
				return m, nil
			}
		}
		if m.numericOnly && msg.Type == tea.KeySpace {
			return m, nil
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if m.focus < FocusCalculate {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// Calculate runs the engine on the current field values and replaces the
// previous result or error.
func (m FormModel) Calculate() FormModel {
	feet, inches, weight := m.Values()
	log := logging.Get(logging.CategoryUI).With("calc_id", uuid.NewString()[:8])

	res, err := m.engine.Compute(feet, inches, weight)
	if err != nil {
		m.result = nil
		m.errMsg = err.Error()

		var verr *bmi.ValidationError
		if errors.As(err, &verr) {
			log.Info("calculation refused: %s", verr.Kind)
		} else {
			log.Warn("calculation failed: %v", err)
		}
		return m
	}

	m.result = &res
	m.errMsg = ""
	log.Info("calculated bmi=%s category=%s strict=%v", res.BMI, res.Category, m.engine.StrictNumbers)
	return m
}

// Values returns the raw feet, inches and weight text.
func (m FormModel) Values() (feet, inches, weight string) {
	return m.inputs[FocusFeet].Value(), m.inputs[FocusInches].Value(), m.inputs[FocusWeight].Value()
}

// SetValues replaces the raw field text.
func (m FormModel) SetValues(feet, inches, weight string) FormModel {
	m.inputs[FocusFeet].SetValue(feet)
	m.inputs[FocusInches].SetValue(inches)
	m.inputs[FocusWeight].SetValue(weight)
	return m
}

// Result returns the last successful computation, if the slot holds one.
func (m FormModel) Result() (bmi.Result, bool) {
	if m.result == nil {
		return bmi.Result{}, false
	}
	return *m.result, true
}

// ErrorMessage returns the last validation message, or "".
func (m FormModel) ErrorMessage() string {
	return m.errMsg
}

// Focus returns the focused target.
func (m FormModel) Focus() int {
	return m.focus
}

// HelpVisible reports whether the help panel is shown.
func (m FormModel) HelpVisible() bool {
	return m.showHelp
}

// Engine returns the engine settings in effect.
func (m FormModel) Engine() bmi.Engine {
	return m.engine
}

// Theme returns the active theme.
func (m FormModel) Theme() Theme {
	return m.styles.Theme
}

func (m FormModel) setFocus(target int) (FormModel, tea.Cmd) {
	m.focus = ((target % focusCount) + focusCount) % focusCount

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	logging.UIDebug("focus -> %d", m.focus)
	return m, cmd
}

func (m FormModel) applyConfig(cfg *config.Config) FormModel {
	if cfg == nil {
		return m
	}
	opts := OptionsFromConfig(cfg)
	m.engine = opts.Engine
	m.numericOnly = opts.NumericKeysOnly
	m.styles = NewStyles(opts.Theme)
	m.applyStyles()
	m.help = renderHelp(opts.Theme, helpWidth(m.width))
	logging.UI("config applied: theme=%s strict=%v", opts.Theme.Name, opts.Engine.StrictNumbers)
	return m
}

func (m *FormModel) applyStyles() {
	for i := range m.inputs {
		m.inputs[i].PromptStyle = m.styles.Prompt
		m.inputs[i].TextStyle = m.styles.Input
		m.inputs[i].PlaceholderStyle = m.styles.Placeholder
	}
}

func filterNumeric(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if strings.ContainsRune(numericRunes, r) {
			out = append(out, r)
		}
	}
	return out
}

// View renders the form.
func (m FormModel) View() string {
	s := m.styles
	labels := [...]string{"Height (feet)", "Height (inches)", "Weight (kg)"}

	var b strings.Builder
	b.WriteString(s.Title.Render("BMI Calculator"))
	b.WriteString("\n")
	b.WriteString(s.Description.Render("Enter your height in feet and inches, and your weight in kg."))
	b.WriteString("\n")

	for i, in := range m.inputs {
		field := s.BlurredField
		if i == m.focus {
			field = s.FocusedField
		}
		b.WriteString(s.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(field.Render(in.View()))
		b.WriteString("\n")
	}

	button := s.Button
	if m.focus == FocusCalculate {
		button = s.ButtonFocused
	}
	b.WriteString(button.Render("Calculate"))
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(s.Error.Render(m.errMsg))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom,
			s.BMIValue.Render(m.result.BMI), " ", s.Muted.Render("kg/m²")))
		b.WriteString("\n")
		b.WriteString(s.RenderCategory(m.result.Category))
		b.WriteString("\n")
	}

	card := s.Card.Render(strings.TrimRight(b.String(), "\n"))
	footer := s.Footer.Render("tab/↑↓ move • enter next/calculate • ctrl+s calculate • f1 help • esc quit")

	parts := []string{card, footer}
	if m.showHelp {
		parts = append(parts, m.help)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view,
		lipgloss.WithWhitespaceBackground(s.Theme.Background))
}
