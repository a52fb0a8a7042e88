package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/diegoholiveira/jsonlogic/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Rule is one promotional adjustment. When is a JsonLogic expression
// evaluated against quote facts (subtotal, total, is_express, item_count,
// quantity); the first rule whose condition holds applies its discount.
type Rule struct {
	ID              string         `yaml:"id"`
	Description     string         `yaml:"description"`
	When            map[string]any `yaml:"when"`
	DiscountPercent int            `yaml:"discount_percent"`
}

// Pack is a loaded rule file
type Pack struct {
	Rules []Rule `yaml:"rules"`
}

// LoadPack reads a rule pack from a YAML file and validates it
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	seen := make(map[string]bool, len(pack.Rules))
	for _, rule := range pack.Rules {
		if rule.ID == "" {
			return nil, fmt.Errorf("rule with empty id")
		}
		if seen[rule.ID] {
			return nil, fmt.Errorf("duplicate rule id %q", rule.ID)
		}
		seen[rule.ID] = true
		if len(rule.When) == 0 {
			return nil, fmt.Errorf("rule %q has no condition", rule.ID)
		}
		if rule.DiscountPercent < 0 || rule.DiscountPercent > 100 {
			return nil, fmt.Errorf("rule %q discount_percent must be between 0 and 100, got %d", rule.ID, rule.DiscountPercent)
		}
	}

	return &pack, nil
}

// Engine evaluates a rule pack against quote facts
type Engine struct {
	rules  []Rule
	logger *zap.Logger
}

// NewEngine creates a rule engine from a loaded pack
func NewEngine(pack *Pack, logger *zap.Logger) *Engine {
	return &Engine{
		rules:  pack.Rules,
		logger: logger,
	}
}

// Match returns the first rule whose condition holds for the given facts,
// or nil when none applies.
func (e *Engine) Match(facts map[string]any) (*Rule, error) {
	for i := range e.rules {
		ok, err := evaluate(e.rules[i].When, facts)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", e.rules[i].ID, err)
		}
		if ok {
			e.logger.Debug("rule matched", zap.String("rule_id", e.rules[i].ID))
			return &e.rules[i], nil
		}
	}
	return nil, nil
}

func evaluate(condition, facts map[string]any) (bool, error) {
	conditionJSON, err := json.Marshal(condition)
	if err != nil {
		return false, fmt.Errorf("failed to encode condition: %w", err)
	}
	factsJSON, err := json.Marshal(facts)
	if err != nil {
		return false, fmt.Errorf("failed to encode facts: %w", err)
	}

	var result bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(conditionJSON), bytes.NewReader(factsJSON), &result); err != nil {
		return false, fmt.Errorf("failed to evaluate condition: %w", err)
	}

	var value any
	if err := json.Unmarshal(result.Bytes(), &value); err != nil {
		return false, fmt.Errorf("failed to decode result: %w", err)
	}
	matched, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("condition must evaluate to a boolean, got %T", value)
	}
	return matched, nil
}
