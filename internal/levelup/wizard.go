// Package levelup turns a character at level N into level N+1 using a class
// definition.
//
// The Wizard is a finite state machine over step indices. Step 0 shows the
// hit point gain, steps 1..C are the level's choices in order and an optional
// last step allocates ability score improvement points. Committed choices
// live in an append-only list; the step in progress keeps a transient
// selection buffer. Completing the last step calls Merge, which is a pure
// function of (character, class definition, decisions).
package levelup

import (
	"slices"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

// ASIPoints is exactly how many points an improvement step hands out.
const ASIPoints = 2

// StepKind is what the current step asks for
type StepKind string

// Step kinds
const (
	StepHitPoints               StepKind = "hit-points"
	StepChoice                  StepKind = "choice"
	StepAbilityScoreImprovement StepKind = "ability-score-improvement"
)

// Status of a wizard
type Status string

// Wizard statuses
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Wizard walks one level-up. It is not safe for concurrent use; the owner of
// the live character serializes calls.
type Wizard struct {
	opts       []Option
	character  *entities.Character
	definition *entities.ClassDefinition
	levelDef   *entities.LevelDefinition
	hitPoints  int

	status     Status
	step       int
	committed  []entities.ChoiceMade
	selections []string
	allocation map[entities.Ability]int
}

// Start opens a wizard for character's next level. It fails before any step
// when the class definition has no entry for that level.
func Start(character *entities.Character, definition *entities.ClassDefinition, opts ...Option) (*Wizard, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if definition == nil {
		return nil, errors.InvalidArgument("class definition is required")
	}

	levelDef, err := LevelFor(character, definition)
	if err != nil {
		return nil, err
	}

	return &Wizard{
		opts:       opts,
		character:  character.Clone(),
		definition: definition,
		levelDef:   levelDef,
		hitPoints:  HitPointGain(definition.HitDie, character.AbilityScores.Constitution),
		status:     StatusActive,
		allocation: make(map[entities.Ability]int),
	}, nil
}

// TotalSteps is 1 + number of choices + 1 if the level has an improvement.
func (w *Wizard) TotalSteps() int {
	total := 1 + len(w.levelDef.Choices)
	if w.levelDef.AbilityScoreImprovement {
		total++
	}
	return total
}

// Step returns the current step index
func (w *Wizard) Step() int { return w.step }

// Status returns whether the wizard is still running
func (w *Wizard) Status() Status { return w.status }

// TargetLevel is the level the character will reach in the class
func (w *Wizard) TargetLevel() int { return w.levelDef.Level }

// HitPointGain is fixed for the life of the wizard
func (w *Wizard) HitPointGain() int { return w.hitPoints }

// ClassName is the class being levelled
func (w *Wizard) ClassName() string { return w.definition.Name }

// Kind returns what the current step asks for
func (w *Wizard) Kind() StepKind {
	switch {
	case w.step == 0:
		return StepHitPoints
	case w.step <= len(w.levelDef.Choices):
		return StepChoice
	default:
		return StepAbilityScoreImprovement
	}
}

// CurrentChoice returns the choice of a choice step
func (w *Wizard) CurrentChoice() (entities.LevelChoice, bool) {
	if w.Kind() != StepChoice {
		return entities.LevelChoice{}, false
	}
	return w.levelDef.Choices[w.step-1], true
}

// Selections returns a copy of the transient selection buffer
func (w *Wizard) Selections() []string {
	return slices.Clone(w.selections)
}

// Committed returns a copy of the accumulated choice list
func (w *Wizard) Committed() []entities.ChoiceMade {
	return cloneChoices(w.committed)
}

// Allocation returns a copy of the improvement allocation
func (w *Wizard) Allocation() map[entities.Ability]int {
	out := make(map[entities.Ability]int, len(w.allocation))
	for k, v := range w.allocation {
		out[k] = v
	}
	return out
}

// AllocatedPoints sums the allocation
func (w *Wizard) AllocatedPoints() int {
	total := 0
	for _, points := range w.allocation {
		total += points
	}
	return total
}

// Toggle adds or removes one option on a choice step. Adding is refused once
// the buffer already holds the declared count.
func (w *Wizard) Toggle(option string) error {
	choice, err := w.choiceStep()
	if err != nil {
		return err
	}
	if _, ok := choice.Option(option); !ok {
		return errors.InvalidArgumentf("%q is not an option for %q", option, choice.Prompt)
	}

	if i := slices.Index(w.selections, option); i >= 0 {
		w.selections = slices.Delete(w.selections, i, i+1)
		return nil
	}
	if len(w.selections) >= choice.Choose {
		return errors.FailedPreconditionf("already selected %d of %d", len(w.selections), choice.Choose)
	}
	w.selections = append(w.selections, option)
	return nil
}

// Select replaces the selection buffer. Any count is accepted here; Advance
// enforces the exact count.
func (w *Wizard) Select(options []string) error {
	choice, err := w.choiceStep()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(options))
	for _, option := range options {
		if _, ok := choice.Option(option); !ok {
			return errors.InvalidArgumentf("%q is not an option for %q", option, choice.Prompt)
		}
		if seen[option] {
			return errors.InvalidArgumentf("%q selected more than once", option)
		}
		seen[option] = true
	}

	w.selections = slices.Clone(options)
	return nil
}

// Allocate sets the improvement points for one ability. Zero clears it.
func (w *Wizard) Allocate(ability entities.Ability, points int) error {
	if err := w.active(); err != nil {
		return err
	}
	if w.Kind() != StepAbilityScoreImprovement {
		return errors.FailedPrecondition("not on the ability score improvement step")
	}
	if !ability.Valid() {
		return errors.InvalidArgumentf("unknown ability %q", ability)
	}
	if points < 0 || points > ASIPoints {
		return errors.InvalidArgumentf("points must be between 0 and %d", ASIPoints)
	}
	if w.AllocatedPoints()-w.allocation[ability]+points > ASIPoints {
		return errors.InvalidArgumentf("only %d points can be allocated", ASIPoints)
	}

	if points == 0 {
		delete(w.allocation, ability)
		return nil
	}
	w.allocation[ability] = points
	return nil
}

// CanAdvance returns nil when Advance would succeed, or the reason it would not.
func (w *Wizard) CanAdvance() error {
	if err := w.active(); err != nil {
		return err
	}

	switch w.Kind() {
	case StepChoice:
		choice := w.levelDef.Choices[w.step-1]
		if len(w.selections) != choice.Choose {
			return errors.FailedPreconditionf("choose exactly %d for %q, %d selected", choice.Choose, choice.Prompt, len(w.selections)).
				WithMeta("required", choice.Choose).
				WithMeta("selected", len(w.selections))
		}
	case StepAbilityScoreImprovement:
		if allocated := w.AllocatedPoints(); allocated != ASIPoints {
			return errors.FailedPreconditionf("allocate exactly %d ability points, %d allocated", ASIPoints, allocated)
		}
		for _, ability := range entities.Abilities {
			if w.allocation[ability] <= 0 {
				continue
			}
			score := w.character.AbilityScores.Get(ability) + w.allocation[ability]
			if score > entities.MaxAbilityScore {
				return errors.FailedPreconditionf("%s would be %d, above %d", ability, score, entities.MaxAbilityScore).
					WithMeta("ability", string(ability))
			}
		}
	}

	return nil
}

// Advance commits the current step. On the last step it completes the
// level-up and returns the result; otherwise the result is nil.
func (w *Wizard) Advance() (*Result, error) {
	if err := w.CanAdvance(); err != nil {
		return nil, err
	}

	committed := w.committed
	if choice, ok := w.CurrentChoice(); ok {
		committed = append(cloneChoices(w.committed), entities.ChoiceMade{
			Type:       choice.Type,
			Selections: slices.Clone(w.selections),
		})
	}

	if w.step == w.TotalSteps()-1 {
		result, err := Merge(w.character, w.definition, Decisions{
			Choices:    committed,
			Allocation: w.Allocation(),
		}, w.opts...)
		if err != nil {
			return nil, err
		}

		w.status = StatusCompleted
		w.committed = nil
		w.selections = nil
		w.allocation = make(map[entities.Ability]int)
		return result, nil
	}

	w.committed = committed
	w.selections = nil
	w.step++
	return nil, nil
}

// Retreat steps back. Landing on a choice step pops that step's committed
// selections back into the buffer; leaving the improvement step drops the
// allocation.
func (w *Wizard) Retreat() error {
	if err := w.active(); err != nil {
		return err
	}

	switch w.Kind() {
	case StepHitPoints:
		return errors.FailedPrecondition("already at the first step, cancel instead")
	case StepAbilityScoreImprovement:
		w.allocation = make(map[entities.Ability]int)
	case StepChoice:
		w.selections = nil
	}

	w.step--
	if w.Kind() == StepChoice && len(w.committed) > 0 {
		last := w.committed[len(w.committed)-1]
		w.committed = w.committed[:len(w.committed)-1]
		w.selections = last.Selections
	}
	return nil
}

// Cancel aborts the level-up. It is only available on the first step.
func (w *Wizard) Cancel() error {
	if err := w.active(); err != nil {
		return err
	}
	if w.step != 0 {
		return errors.FailedPrecondition("level-up can only be cancelled from the first step")
	}

	w.status = StatusCancelled
	w.committed = nil
	w.selections = nil
	w.allocation = make(map[entities.Ability]int)
	return nil
}

func (w *Wizard) active() error {
	if w.status != StatusActive {
		return errors.FailedPreconditionf("level-up is %s", w.status)
	}
	return nil
}

func (w *Wizard) choiceStep() (entities.LevelChoice, error) {
	if err := w.active(); err != nil {
		return entities.LevelChoice{}, err
	}
	choice, ok := w.CurrentChoice()
	if !ok {
		return entities.LevelChoice{}, errors.FailedPrecondition("not on a choice step")
	}
	return choice, nil
}
