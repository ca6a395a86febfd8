package levelup

import (
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

// View is a read-only picture of a wizard for the presentation layer
type View struct {
	ClassName    string                   `json:"className"`
	TargetLevel  int                      `json:"targetLevel"`
	Step         int                      `json:"step"`
	TotalSteps   int                      `json:"totalSteps"`
	Kind         StepKind                 `json:"kind"`
	Status       Status                   `json:"status"`
	HitPointGain int                      `json:"hitPointGain"`
	Choice       *entities.LevelChoice    `json:"choice,omitempty"`
	Selections   []string                 `json:"selections"`
	Committed    []entities.ChoiceMade    `json:"committed"`
	Allocation   map[entities.Ability]int `json:"allocation,omitempty"`
	CanAdvance   bool                     `json:"canAdvance"`
	Blocker      string                   `json:"blocker,omitempty"`
}

// View renders the wizard's current state
func (w *Wizard) View() View {
	v := View{
		ClassName:    w.ClassName(),
		TargetLevel:  w.TargetLevel(),
		Step:         w.step,
		TotalSteps:   w.TotalSteps(),
		Kind:         w.Kind(),
		Status:       w.status,
		HitPointGain: w.hitPoints,
		Selections:   w.Selections(),
		Committed:    w.Committed(),
		Allocation:   w.Allocation(),
	}
	if v.Selections == nil {
		v.Selections = []string{}
	}
	if choice, ok := w.CurrentChoice(); ok {
		v.Choice = &choice
	}

	if err := w.CanAdvance(); err != nil {
		v.Blocker = errors.GetMessage(err)
	} else {
		v.CanAdvance = true
	}
	return v
}
