package levelup

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/formula"
)

const (
	classSourcePrefix    = "Class: "
	subclassSourcePrefix = "Subclass: "

	// resources with a max up to this many are drawn as slots when the
	// grant does not say how to draw them
	slotDisplayThreshold = 6
)

// Decisions are the committed wizard results fed into Merge.
type Decisions struct {
	// Choices line up with the level definition's choices by index.
	Choices    []entities.ChoiceMade
	Allocation map[entities.Ability]int
}

// Result is the merged character and the record appended to its history.
type Result struct {
	Character *entities.Character
	Record    entities.LevelUpRecord
}

// Option configures Start and Merge
type Option func(*options)

type options struct {
	formulas formula.Evaluator
}

// WithFormulaEvaluator resolves formula-valued resource maxima with e. Without
// it a formula max is 0 for level and option grants and the leading integer
// of the text for subclass feature grants.
func WithFormulaEvaluator(e formula.Evaluator) Option {
	return func(o *options) {
		o.formulas = e
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// HitPointGain is ceil(hitDie/2) + 1 + the constitution modifier. It can be
// negative for very low constitution; Merge floors the resulting hit points
// at 0 but records the raw gain.
func HitPointGain(hitDie, constitution int) int {
	return (hitDie+1)/2 + 1 + entities.Modifier(constitution)
}

// LevelFor returns the definition of the level the character would reach in
// the class. A class the character does not have yet starts at level 1.
func LevelFor(character *entities.Character, definition *entities.ClassDefinition) (*entities.LevelDefinition, error) {
	target := character.ClassLevel(definition.Name) + 1
	levelDef, ok := definition.LevelDefinition(target)
	if !ok {
		return nil, errors.FailedPreconditionf("no level definition for level %d in class %s", target, definition.Name).
			WithMeta("level", target).
			WithMeta("class", definition.Name)
	}
	return levelDef, nil
}

// Merge applies one level of definition to character. The input is not
// modified. It fails only when the next level is undefined or a configured
// formula evaluator rejects a max.
func Merge(character *entities.Character, definition *entities.ClassDefinition, decisions Decisions, opts ...Option) (*Result, error) {
	if character == nil || definition == nil {
		return nil, errors.InvalidArgument("character and class definition are required")
	}

	levelDef, err := LevelFor(character, definition)
	if err != nil {
		return nil, err
	}

	m := &merger{
		options:    newOptions(opts),
		definition: definition,
		levelDef:   levelDef,
		out:        character.Clone(),
		hitPoints:  HitPointGain(definition.HitDie, character.AbilityScores.Constitution),
	}

	if err := m.run(decisions); err != nil {
		return nil, err
	}

	return &Result{Character: m.out, Record: m.record}, nil
}

type merger struct {
	*options
	definition *entities.ClassDefinition
	levelDef   *entities.LevelDefinition
	out        *entities.Character
	hitPoints  int
	record     entities.LevelUpRecord
}

func (m *merger) run(decisions Decisions) error {
	m.out.Level++
	m.out.ProficiencyBonus = m.levelDef.ProficiencyBonus

	m.out.HitPoints.Max = max(m.out.HitPoints.Max+m.hitPoints, 0)
	m.out.HitPoints.Current = clamp(m.out.HitPoints.Current+m.hitPoints, 0, m.out.HitPoints.Max)

	m.applyAllocation(decisions.Allocation)

	classSource := classSourcePrefix + m.definition.Name
	for _, grant := range m.levelDef.Features {
		m.out.Features = append(m.out.Features, featureFrom(grant, classSource))
	}

	for _, grant := range m.levelDef.Resources {
		if grant.Conditional != "" {
			continue
		}
		if err := m.addResourceGrant(grant); err != nil {
			return err
		}
	}

	subclass := m.currentSubclass()
	for i, choice := range decisions.Choices {
		if choice.Type != entities.ChoiceSubclass || len(choice.Selections) != 1 || i >= len(m.levelDef.Choices) {
			continue
		}
		option, ok := m.levelDef.Choices[i].Option(choice.Selections[0])
		if !ok || option.Grants == nil || (len(option.Grants.Features) == 0 && len(option.Grants.Resources) == 0) {
			continue
		}

		subclass = option.Name
		source := subclassSourcePrefix + subclass
		for _, grant := range option.Grants.Features {
			m.out.Features = append(m.out.Features, featureFrom(grant, source))
		}
		for _, grant := range option.Grants.Resources {
			if err := m.addResourceGrant(grant); err != nil {
				return err
			}
		}
	}

	m.syncClasses(subclass)
	m.mergeSpellSlots()

	if subclass != "" {
		source := subclassSourcePrefix + subclass
		for _, grant := range m.levelDef.SubclassFeatures[subclass] {
			m.out.Features = append(m.out.Features, featureFrom(grant, source))
			if grant.GrantsResource == nil {
				continue
			}
			if err := m.addFeatureResource(*grant.GrantsResource); err != nil {
				return err
			}
		}
	}

	choices := cloneChoices(decisions.Choices)
	if asi := allocationChoice(decisions.Allocation); asi != nil {
		choices = append(choices, *asi)
	}

	m.record = entities.LevelUpRecord{
		Level:           m.out.Level,
		HitPointsGained: m.hitPoints,
		ChoicesMade:     choices,
		FeaturesGained:  unconditionalFeatureNames(m.levelDef),
		ResourcesGained: unconditionalResourceNames(m.levelDef),
	}
	m.out.LevelHistory = append(m.out.LevelHistory, m.record.Clone())

	return nil
}

func (m *merger) applyAllocation(allocation map[entities.Ability]int) {
	for _, ability := range entities.Abilities {
		points := allocation[ability]
		if points <= 0 {
			continue
		}
		score := m.out.AbilityScores.Get(ability) + points
		m.out.AbilityScores.Set(ability, min(score, entities.MaxAbilityScore))
	}
}

func (m *merger) addResourceGrant(grant entities.ResourceGrant) error {
	value, ok := grant.Max.Value()
	if !ok && m.formulas != nil {
		var err error
		if value, err = m.evaluate(grant.Name, grant.Max); err != nil {
			return err
		}
	}
	value = max(value, 0)

	m.out.Resources = append(m.out.Resources, entities.Resource{
		Name:        grant.Name,
		Icon:        grant.Icon,
		Current:     value,
		Max:         value,
		RechargeOn:  grant.RechargeOn,
		DisplayType: grant.DisplayType,
	})
	return nil
}

func (m *merger) addFeatureResource(grant entities.FeatureResourceGrant) error {
	value := grant.Max.ParseLeadingInt()
	if grant.Max.IsFormula() && m.formulas != nil {
		var err error
		if value, err = m.evaluate(grant.Name, grant.Max); err != nil {
			return err
		}
	}
	value = max(value, 0)

	display := entities.DisplayNumber
	if value <= slotDisplayThreshold {
		display = entities.DisplaySlots
	}

	m.out.Resources = append(m.out.Resources, entities.Resource{
		Name:        grant.Name,
		Icon:        grant.Icon,
		Current:     value,
		Max:         value,
		RechargeOn:  grant.RechargeOn,
		DisplayType: display,
	})
	return nil
}

// evaluate runs a formula against the character as merged so far, so level
// and proficiency bonus already reflect the new level.
func (m *merger) evaluate(resource string, maxValue entities.ResourceMax) (int, error) {
	value, err := m.formulas.Evaluate(maxValue.Formula(), formula.VarsFor(m.out))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve max for resource %s", resource).
			WithMeta("resource", resource)
	}
	return value, nil
}

// currentSubclass is the subclass of the class being levelled. The top-level
// subclass only counts for a legacy record of that same class.
func (m *merger) currentSubclass() string {
	if len(m.out.Classes) == 0 {
		if m.out.ClassName == m.definition.Name {
			return m.out.SubclassName
		}
		return ""
	}
	for _, cls := range m.out.Classes {
		if cls.ClassName == m.definition.Name {
			return cls.SubclassName
		}
	}
	return ""
}

// syncClasses keeps the canonical class list in step with level and subclass.
// The top-level class and subclass always mirror the primary class.
func (m *merger) syncClasses(subclass string) {
	if len(m.out.Classes) == 0 && m.out.ClassName != "" {
		m.out.Classes = []entities.CharacterClass{{
			ClassName:    m.out.ClassName,
			SubclassName: m.out.SubclassName,
			Level:        max(m.out.Level-1, 1),
		}}
	}

	index := -1
	for i := range m.out.Classes {
		if m.out.Classes[i].ClassName == m.definition.Name {
			index = i
			break
		}
	}
	if index < 0 {
		m.out.Classes = append(m.out.Classes, entities.CharacterClass{ClassName: m.definition.Name})
		index = len(m.out.Classes) - 1
	}

	m.out.Classes[index].Level++
	if subclass != "" {
		m.out.Classes[index].SubclassName = subclass
	}

	primary := m.out.PrimaryClass()
	m.out.ClassName = primary.ClassName
	m.out.SubclassName = primary.SubclassName
}

// mergeSpellSlots raises slot maxima to the level's table. Index i of the
// table is spell level i+1; existing slots never shrink.
func (m *merger) mergeSpellSlots() {
	if len(m.levelDef.SpellSlots) == 0 {
		return
	}

	if m.out.Spellcasting == nil {
		sc := &entities.Spellcasting{
			KnownSpells: []entities.CharacterSpell{},
			SpellSlots:  []entities.SpellSlot{},
		}
		if m.definition.Spellcasting != nil {
			sc.Ability = m.definition.Spellcasting.Ability
		}
		m.out.Spellcasting = sc
	}

	slots := m.out.Spellcasting.SpellSlots
	for i, count := range m.levelDef.SpellSlots {
		if count <= 0 {
			continue
		}
		level := i + 1
		found := false
		for j := range slots {
			if slots[j].Level == level {
				slots[j].Max = max(slots[j].Max, count)
				found = true
				break
			}
		}
		if !found {
			slots = append(slots, entities.SpellSlot{Level: level, Max: count})
		}
	}

	slices.SortStableFunc(slots, func(a, b entities.SpellSlot) int { return a.Level - b.Level })
	for j := range slots {
		slots[j].Used = clamp(slots[j].Used, 0, slots[j].Max)
	}
	m.out.Spellcasting.SpellSlots = slots
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func featureFrom(grant entities.FeatureGrant, source string) entities.Feature {
	feature := entities.Feature{
		Name:        grant.Name,
		Description: grant.Description,
		Source:      source,
		Type:        grant.Type,
	}
	if grant.GrantsResource != nil {
		feature.UsesResource = grant.GrantsResource.Name
	}
	return feature
}

// allocationChoice formats allocations as "<ability> +<n>" in sheet order.
func allocationChoice(allocation map[entities.Ability]int) *entities.ChoiceMade {
	var selections []string
	for _, ability := range entities.Abilities {
		if points := allocation[ability]; points > 0 {
			selections = append(selections, fmt.Sprintf("%s +%d", ability, points))
		}
	}
	if len(selections) == 0 {
		return nil
	}
	return &entities.ChoiceMade{
		Type:       entities.ChoiceAbilityScoreImprovement,
		Selections: selections,
	}
}

func unconditionalFeatureNames(levelDef *entities.LevelDefinition) []string {
	names := make([]string, 0, len(levelDef.Features))
	for _, f := range levelDef.Features {
		names = append(names, f.Name)
	}
	return names
}

func unconditionalResourceNames(levelDef *entities.LevelDefinition) []string {
	names := make([]string, 0, len(levelDef.Resources))
	for _, r := range levelDef.Resources {
		if r.Conditional == "" {
			names = append(names, r.Name)
		}
	}
	return names
}

func cloneChoices(in []entities.ChoiceMade) []entities.ChoiceMade {
	out := make([]entities.ChoiceMade, 0, len(in)+1)
	for _, c := range in {
		out = append(out, entities.ChoiceMade{
			Type:       c.Type,
			Selections: append([]string(nil), c.Selections...),
		})
	}
	return out
}
