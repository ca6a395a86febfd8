package entities

// Ability names one of the six ability scores.
type Ability string

// Abilities in sheet order
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// MaxAbilityScore is the ceiling an improvement can raise a score to.
const MaxAbilityScore = 20

// Abilities lists every ability in sheet order.
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown ability names
func (a *Ability) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, a, "ability")
}

// AbilityScores holds the six scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an ability, 0 for an unknown one
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	}
	return 0
}

// Set assigns the score for an ability; unknown abilities are ignored
func (s *AbilityScores) Set(a Ability, value int) {
	switch a {
	case AbilityStrength:
		s.Strength = value
	case AbilityDexterity:
		s.Dexterity = value
	case AbilityConstitution:
		s.Constitution = value
	case AbilityIntelligence:
		s.Intelligence = value
	case AbilityWisdom:
		s.Wisdom = value
	case AbilityCharisma:
		s.Charisma = value
	}
}

// Modifier returns floor((score-10)/2), rounding toward negative infinity.
func Modifier(score int) int {
	return floorDiv(score-10, 2)
}

// ProficiencyBonusForLevel is the rules-table bonus for a total level.
func ProficiencyBonusForLevel(totalLevel int) int {
	if totalLevel < 1 {
		totalLevel = 1
	}
	return (totalLevel-1)/4 + 2
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
