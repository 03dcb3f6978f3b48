package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecofootprint/internal/footprint"
)

// answer types s into the focused input and presses enter.
func answer(t *testing.T, m *WizardModel, s string) tea.Cmd {
	t.Helper()
	if s != "" {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestWizard_CompletesWithValidAnswers(t *testing.T) {
	m := NewWizardModel()
	require.Equal(t, StepCarKm, m.Step())
	assert.NotNil(t, m.Init())

	assert.False(t, isQuit(answer(t, m, "100")))
	assert.Equal(t, StepBusKm, m.Step())
	assert.False(t, isQuit(answer(t, m, "50")))
	assert.False(t, isQuit(answer(t, m, "200")))
	assert.Equal(t, StepDiet, m.Step())
	assert.True(t, isQuit(answer(t, m, "1")))

	inputs, ok := m.Inputs()
	require.True(t, ok)
	assert.Equal(t, footprint.Inputs{CarKm: 100, BusKm: 50, ElectricityKwh: 200, Diet: footprint.DietMeatHeavy}, inputs)
	assert.Empty(t, m.View())
}

func TestWizard_RejectsInvalidAnswers(t *testing.T) {
	m := NewWizardModel()

	answer(t, m, "abc")
	assert.Equal(t, StepCarKm, m.Step())
	assert.Contains(t, m.View(), "Error: Invalid input. Enter a numeric value.")

	answer(t, m, "-3")
	assert.Equal(t, StepCarKm, m.Step())
	assert.Contains(t, m.View(), "Error: Please enter a non-negative number.")

	answer(t, m, "0")
	answer(t, m, "0")
	answer(t, m, "0")
	require.Equal(t, StepDiet, m.Step())
	assert.NotContains(t, m.View(), "Error:")
	assert.Contains(t, m.View(), "4) Vegan")

	answer(t, m, "7")
	assert.Equal(t, StepDiet, m.Step())
	assert.Contains(t, m.View(), "Error: Choice must be between 1 and 4.")

	answer(t, m, "x")
	assert.Contains(t, m.View(), "Error: Enter a whole number (1-4).")

	answer(t, m, "4")
	inputs, ok := m.Inputs()
	require.True(t, ok)
	assert.Equal(t, footprint.DietVegan, inputs.Diet)
}

func TestWizard_ShowsPreviousAnswers(t *testing.T) {
	m := NewWizardModel()
	answer(t, m, "1234")

	view := m.View()
	assert.Contains(t, view, "Car distance (km/year)")
	assert.Contains(t, view, "1234")
	assert.Contains(t, view, "Bus/train distance (km/year)")
}

func TestWizard_Cancel(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewWizardModel()
		answer(t, m, "10")

		_, cmd := m.Update(tea.KeyMsg{Type: keyType})

		assert.True(t, isQuit(cmd))
		assert.True(t, m.Cancelled())
		_, ok := m.Inputs()
		assert.False(t, ok)
	}
}

func TestWizardStepTitle(t *testing.T) {
	assert.Equal(t, "Diet type (1-4)", StepDiet.Title())
	assert.Empty(t, StepDone.Title())
}
