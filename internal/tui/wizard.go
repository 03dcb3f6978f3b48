package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/ecofootprint/internal/footprint"
)

// ErrWizardCancelled is returned by RunWizard when the user quits early.
var ErrWizardCancelled = errors.New("input cancelled")

// WizardStep is one question in the input wizard.
type WizardStep int

const (
	// StepCarKm asks for yearly car distance.
	StepCarKm WizardStep = iota
	// StepBusKm asks for yearly bus/train distance.
	StepBusKm
	// StepElectricity asks for yearly electricity use.
	StepElectricity
	// StepDiet asks for the diet code.
	StepDiet
	// StepDone means every answer is in.
	StepDone
)

// Title returns the question shown for the step.
func (s WizardStep) Title() string {
	switch s {
	case StepCarKm:
		return "Car distance (km/year)"
	case StepBusKm:
		return "Bus/train distance (km/year)"
	case StepElectricity:
		return "Electricity used (kWh/year)"
	case StepDiet:
		return "Diet type (1-4)"
	default:
		return ""
	}
}

// WizardModel is the Bubble Tea model that collects footprint inputs.
// Every answer goes through the same parsers as the line prompts.
type WizardModel struct {
	step      WizardStep
	input     textinput.Model
	inputs    footprint.Inputs
	answers   []string
	errMsg    string
	cancelled bool
}

// NewWizardModel returns a wizard positioned on the first question.
func NewWizardModel() *WizardModel {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 32
	ti.Width = 20
	ti.Focus()

	return &WizardModel{
		step:  StepCarKm,
		input: ti,
	}
}

// Init starts the cursor blinking.
func (m *WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // Other keys go to the text input.
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the current answer and advances on success.
func (m *WizardModel) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()

	if err := m.apply(raw); err != nil {
		m.errMsg = footprint.UserMessage(err)
		m.input.SetValue("")
		return m, nil
	}

	m.errMsg = ""
	m.answers = append(m.answers, strings.TrimSpace(raw))
	m.input.SetValue("")
	m.step++

	if m.step == StepDone {
		return m, tea.Quit
	}
	if m.step == StepDiet {
		m.input.Placeholder = "1-4"
	}
	return m, nil
}

// apply stores raw into the field for the current step.
func (m *WizardModel) apply(raw string) error {
	if m.step == StepDiet {
		d, err := footprint.ParseDiet(raw)
		if err != nil {
			return err
		}
		m.inputs.Diet = d
		return nil
	}

	v, err := footprint.ParseQuantity(raw)
	if err != nil {
		return err
	}
	switch m.step {
	case StepCarKm:
		m.inputs.CarKm = v
	case StepBusKm:
		m.inputs.BusKm = v
	case StepElectricity:
		m.inputs.ElectricityKwh = v
	case StepDiet, StepDone:
	}
	return nil
}

// View renders the answered questions, the current prompt, and any error.
func (m *WizardModel) View() string {
	if m.cancelled || m.step == StepDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("🌱 EcoFootprint Calculator"))
	b.WriteString("\n\n")

	for i, answer := range m.answers {
		b.WriteString(LabelStyle.Render(WizardStep(i).Title() + ": "))
		b.WriteString(ValueStyle.Render(answer))
		b.WriteString("\n")
	}

	if m.step == StepDiet {
		for _, d := range footprint.Diets() {
			b.WriteString(MutedStyle.Render(fmt.Sprintf("  %d) %s", int(d), d)))
			b.WriteString("\n")
		}
	}

	b.WriteString(LabelStyle.Render(m.step.Title() + ": "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("enter: confirm • esc: quit"))
	return b.String()
}

// Step returns the current step.
func (m *WizardModel) Step() WizardStep {
	return m.step
}

// Cancelled reports whether the user quit before finishing.
func (m *WizardModel) Cancelled() bool {
	return m.cancelled
}

// Inputs returns the collected inputs and whether all four are present.
func (m *WizardModel) Inputs() (footprint.Inputs, bool) {
	return m.inputs, m.step == StepDone && !m.cancelled
}

// RunWizard runs the wizard on in/out until it finishes or is cancelled.
func RunWizard(ctx context.Context, in io.Reader, out io.Writer) (footprint.Inputs, error) {
	p := tea.NewProgram(NewWizardModel(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return footprint.Inputs{}, fmt.Errorf("running input wizard: %w", err)
	}

	m, ok := final.(*WizardModel)
	if !ok {
		return footprint.Inputs{}, fmt.Errorf("unexpected wizard model %T", final)
	}
	inputs, done := m.Inputs()
	if !done {
		return footprint.Inputs{}, ErrWizardCancelled
	}
	return inputs, nil
}
