// Package dice implements the sheet's dice roller: NdM+K rolls on the
// standard polyhedral dice with a short history of recent results.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-hud/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/idgen"
)

const (
	// HistorySize is how many rolls are remembered
	HistorySize = 10

	// MaxDiceCount bounds a single roll
	MaxDiceCount = 100
)

// SupportedSides are the dice on the roller
var SupportedSides = []int{4, 6, 8, 10, 12, 20, 100}

// Regex for dice notation like "d20", "2d6", "1d8+3", "4d4-1"
var diceNotationRegex = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(\d+))?$`)

// Service defines the interface for dice operations
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
	idGen  idgen.Generator
	clock  clock.Clock

	mu      sync.Mutex
	history []*Roll
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller:  cfg.Roller,
		idGen:   cfg.IDGenerator,
		clock:   cfg.Clock,
		history: make([]*Roll, 0, HistorySize),
	}, nil
}

// ParseNotation parses "NdM", "dM", "NdM+K" and "NdM-K"
func ParseNotation(notation string) (count, sides, modifier int, err error) {
	normalized := strings.ToLower(strings.ReplaceAll(notation, " ", ""))
	matches := diceNotationRegex.FindStringSubmatch(normalized)
	if matches == nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY+Z)", notation)
	}

	count = 1
	if matches[1] != "" {
		if count, err = strconv.Atoi(matches[1]); err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
		}
	}
	if sides, err = strconv.Atoi(matches[2]); err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	if matches[4] != "" {
		if modifier, err = strconv.Atoi(matches[4]); err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	return count, sides, modifier, nil
}

// FormatNotation renders count, sides and modifier as "2d6+3"
func FormatNotation(count, sides, modifier int) string {
	switch {
	case modifier > 0:
		return fmt.Sprintf("%dd%d+%d", count, sides, modifier)
	case modifier < 0:
		return fmt.Sprintf("%dd%d%d", count, sides, modifier)
	default:
		return fmt.Sprintf("%dd%d", count, sides)
	}
}

func validateRoll(count, sides int) error {
	if count < 1 || count > MaxDiceCount {
		return errors.InvalidArgumentf("dice count must be between 1 and %d", MaxDiceCount)
	}
	if !slices.Contains(SupportedSides, sides) {
		return errors.InvalidArgumentf("unsupported die d%d", sides).
			WithMeta("sides", sides)
	}
	return nil
}

// RollDice rolls with rpg-toolkit and records the result
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	count, sides, modifier := input.Count, input.Sides, input.Modifier
	if input.Notation != "" {
		var err error
		if count, sides, modifier, err = ParseNotation(input.Notation); err != nil {
			return nil, err
		}
	}
	if err := validateRoll(count, sides); err != nil {
		return nil, err
	}

	values, err := o.roller.RollN(count, sides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	total := modifier
	for _, v := range values {
		total += v
	}

	roll := &Roll{
		ID:       o.idGen.Generate(),
		Notation: FormatNotation(count, sides, modifier),
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
		Dice:     values,
		Total:    total,
		RolledAt: o.clock.Now(),
	}

	o.mu.Lock()
	o.history = append([]*Roll{roll}, o.history...)
	if len(o.history) > HistorySize {
		o.history = o.history[:HistorySize]
	}
	o.mu.Unlock()

	slog.InfoContext(ctx, "Dice rolled",
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.ID,
	)

	return &RollDiceOutput{Roll: roll}, nil
}

// GetHistory returns recent rolls, newest first
func (o *orchestrator) GetHistory(_ context.Context, _ *GetHistoryInput) (*GetHistoryOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetHistoryOutput{Rolls: slices.Clone(o.history)}, nil
}

// ClearHistory forgets all rolls
func (o *orchestrator) ClearHistory(ctx context.Context, _ *ClearHistoryInput) (*ClearHistoryOutput, error) {
	o.mu.Lock()
	deleted := len(o.history)
	o.history = make([]*Roll, 0, HistorySize)
	o.mu.Unlock()

	slog.InfoContext(ctx, "Dice history cleared", "rolls_deleted", deleted)

	return &ClearHistoryOutput{RollsDeleted: deleted}, nil
}
