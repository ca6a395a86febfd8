package testutils

import (
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/testutils/builders"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"

	// SubclassChampion is the subclass offered at FighterClassDefinition level 3
	SubclassChampion = "Champion"
)

// FighterClassDefinition is a small Fighter rulebook used across tests:
//   - level 2: Action Surge, which grants a short-rest resource
//   - level 3: a subclass choice (Champion grants Improved Critical) and a
//     fighting-style pick of two
//   - level 4: ability score improvement only
//   - level 5: Extra Attack plus Champion subclass features, one of which
//     grants a formula-valued resource
func FighterClassDefinition() *entities.ClassDefinition {
	return builders.NewClassDefinitionBuilder().
		WithLevel(entities.LevelDefinition{
			Level:            1,
			ProficiencyBonus: 2,
			Features: []entities.FeatureGrant{
				{Name: "Second Wind", Description: "Regain 1d10 + level hit points", Type: entities.FeatureActive},
			},
		}).
		WithLevel(entities.LevelDefinition{
			Level:            2,
			ProficiencyBonus: 2,
			Features: []entities.FeatureGrant{{
				Name:        "Action Surge",
				Description: "Take one additional action",
				Type:        entities.FeatureResource,
				GrantsResource: &entities.FeatureResourceGrant{
					Name: "Action Surge", Icon: "!", Max: entities.FixedMax(1), RechargeOn: entities.RechargeShortRest,
				},
			}},
			Resources: []entities.ResourceGrant{
				{Name: "Action Surge", Icon: "!", Max: entities.FixedMax(1), RechargeOn: entities.RechargeShortRest, DisplayType: entities.DisplaySlots},
				{Name: "Arcane Ward", Icon: "~", Max: entities.FixedMax(4), RechargeOn: entities.RechargeLongRest, DisplayType: entities.DisplayBar, Conditional: "Eldritch Knight"},
			},
		}).
		WithLevel(entities.LevelDefinition{
			Level:            3,
			ProficiencyBonus: 2,
			Features:         []entities.FeatureGrant{},
			Choices: []entities.LevelChoice{
				{
					Type:   entities.ChoiceSubclass,
					Prompt: "Choose your Martial Archetype",
					Choose: 1,
					From: []entities.ChoiceOption{
						{
							Name:        SubclassChampion,
							Description: "Raw physical power",
							Grants: &entities.OptionGrants{
								Features: []entities.FeatureGrant{
									{Name: "Improved Critical", Description: "Crit on 19-20", Type: entities.FeaturePassive},
								},
							},
						},
						{
							Name:        "Battle Master",
							Description: "Martial maneuvers",
							Grants: &entities.OptionGrants{
								Features: []entities.FeatureGrant{
									{Name: "Combat Superiority", Description: "Superiority dice", Type: entities.FeatureResource},
								},
								Resources: []entities.ResourceGrant{
									{Name: "Superiority Dice", Icon: "d8", Max: entities.FixedMax(4), RechargeOn: entities.RechargeShortRest, DisplayType: entities.DisplaySlots},
								},
							},
						},
						{Name: "Eldritch Knight", Description: "Grants nothing at this level"},
					},
				},
				{
					Type:   entities.ChoiceFightingStyle,
					Prompt: "Choose two fighting styles",
					Choose: 2,
					From: []entities.ChoiceOption{
						{Name: "Archery"},
						{Name: "Defense"},
						{Name: "Dueling"},
					},
				},
			},
		}).
		WithLevel(entities.LevelDefinition{
			Level:                   4,
			ProficiencyBonus:        2,
			Features:                []entities.FeatureGrant{},
			AbilityScoreImprovement: true,
		}).
		WithLevel(entities.LevelDefinition{
			Level:            5,
			ProficiencyBonus: 3,
			Features: []entities.FeatureGrant{
				{Name: "Extra Attack", Description: "Attack twice", Type: entities.FeaturePassive},
			},
			SubclassFeatures: map[string][]entities.FeatureGrant{
				SubclassChampion: {
					{
						Name:        "Remarkable Athlete",
						Description: "Half proficiency to physical checks",
						Type:        entities.FeatureResource,
						GrantsResource: &entities.FeatureResourceGrant{
							Name: "Athletic Feats", Icon: "^", Max: entities.FormulaMax("level + proficiencyBonus"), RechargeOn: entities.RechargeLongRest,
						},
					},
				},
			},
		}).
		Build()
}

// TestCharacter returns a level 1 fighter with constitution 14 and 20 hit points
func TestCharacter() *entities.Character {
	return builders.NewCharacterBuilder().
		WithName(TestCharacterName).
		WithAbility(entities.AbilityConstitution, 14).
		WithHitPoints(20, 20, 0).
		Build()
}
