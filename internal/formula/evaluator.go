// Package formula evaluates formula-valued resource maxima such as
// "level + proficiencyBonus" or "abilityModifier('wisdom') + 1".
//
// Expressions run in a fresh Lua state with only the variables below bound:
//
//	level              total character level
//	proficiencyBonus   the character's proficiency bonus
//	strength .. charisma  raw ability scores
//	abilityModifier(name) floor((score-10)/2) for the named ability
//	floor(x), ceil(x), max(a, b), min(a, b)
//
// Results are floored to an integer. A formula that runs too long fails.
package formula

import (
	"math"
	"strings"

	lua "github.com/Shopify/go-lua"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

// Vars is the fixed variable set a formula can read
type Vars struct {
	Level            int
	ProficiencyBonus int
	AbilityScores    entities.AbilityScores
}

// VarsFor builds the variable set from a character
func VarsFor(character *entities.Character) Vars {
	return Vars{
		Level:            character.Level,
		ProficiencyBonus: character.ProficiencyBonus,
		AbilityScores:    character.AbilityScores,
	}
}

// Evaluator resolves formula text to an integer
type Evaluator interface {
	Evaluate(expr string, vars Vars) (int, error)
}

// LuaEvaluator evaluates formulas with an embedded Lua interpreter
type LuaEvaluator struct{}

// NewLuaEvaluator returns the default evaluator
func NewLuaEvaluator() *LuaEvaluator {
	return &LuaEvaluator{}
}

var _ Evaluator = (*LuaEvaluator)(nil)

// maxInstructions bounds the VM instructions one formula may run
const maxInstructions = 100000

// globals that must not be reachable from a formula
var strippedGlobals = []string{
	"os", "io", "package", "debug", "require", "dofile", "loadfile", "load", "loadstring", "collectgarbage",
}

// Evaluate returns the floored numeric value of expr.
func (e *LuaEvaluator) Evaluate(expr string, vars Vars) (int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, errors.InvalidArgument("formula is empty")
	}

	state := lua.NewState()
	lua.OpenLibraries(state)
	for _, name := range strippedGlobals {
		state.PushNil()
		state.SetGlobal(name)
	}
	bindVars(state, vars)

	if err := lua.LoadString(state, "return "+expr); err != nil {
		return 0, errors.InvalidArgumentf("formula %q does not parse", expr).WithMeta("cause", err.Error())
	}
	lua.SetDebugHook(state, func(l *lua.State, _ lua.Debug) {
		lua.Errorf(l, "instruction limit of %d exceeded", maxInstructions)
	}, lua.MaskCount, maxInstructions)
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return 0, errors.InvalidArgumentf("formula %q failed", expr).WithMeta("cause", err.Error())
	}

	value, ok := state.ToNumber(-1)
	state.Pop(1)
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.InvalidArgumentf("formula %q is not numeric", expr)
	}

	return int(math.Floor(value)), nil
}

func bindVars(state *lua.State, vars Vars) {
	state.PushInteger(vars.Level)
	state.SetGlobal("level")
	state.PushInteger(vars.ProficiencyBonus)
	state.SetGlobal("proficiencyBonus")

	for _, ability := range entities.Abilities {
		state.PushInteger(vars.AbilityScores.Get(ability))
		state.SetGlobal(string(ability))
	}

	scores := vars.AbilityScores
	state.Register("abilityModifier", func(l *lua.State) int {
		name := entities.Ability(strings.ToLower(lua.CheckString(l, 1)))
		if !name.Valid() {
			lua.Errorf(l, "unknown ability %q", string(name))
			return 0
		}
		l.PushInteger(entities.Modifier(scores.Get(name)))
		return 1
	})
	state.Register("floor", func(l *lua.State) int {
		l.PushNumber(math.Floor(lua.CheckNumber(l, 1)))
		return 1
	})
	state.Register("ceil", func(l *lua.State) int {
		l.PushNumber(math.Ceil(lua.CheckNumber(l, 1)))
		return 1
	})
	state.Register("max", func(l *lua.State) int {
		l.PushNumber(math.Max(lua.CheckNumber(l, 1), lua.CheckNumber(l, 2)))
		return 1
	})
	state.Register("min", func(l *lua.State) int {
		l.PushNumber(math.Min(lua.CheckNumber(l, 1), lua.CheckNumber(l, 2)))
		return 1
	})
}
