package dice

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
)

// RollResult is the outcome of rolling a group of identical dice plus a flat bonus
type RollResult struct {
	Total    int
	RawTotal int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	IsCrit   bool // natural 20 on a single d20
	IsFumble bool // natural 1 on a single d20
}

// Expression is a parsed dice notation such as "2d6+3"
type Expression struct {
	Count int
	Sides int
	Bonus int
}

// String renders the expression back to notation
func (e Expression) String() string {
	switch {
	case e.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Sides, e.Bonus)
	case e.Bonus < 0:
		return fmt.Sprintf("%dd%d%d", e.Count, e.Sides, e.Bonus)
	default:
		return fmt.Sprintf("%dd%d", e.Count, e.Sides)
	}
}

// Roll rolls the expression with the given roller
func (e Expression) Roll(roller Roller) (*RollResult, error) {
	return roller.Roll(e.Count, e.Sides, e.Bonus)
}

// Parse reads notation of the form NdS, NdS+B or NdS-B
func Parse(notation string) (Expression, error) {
	notation = strings.TrimSpace(strings.ToLower(notation))

	var expr Expression
	dicePart := notation
	if i := strings.IndexAny(notation, "+-"); i >= 0 {
		bonus, err := strconv.Atoi(notation[i:])
		if err != nil {
			return Expression{}, fmt.Errorf("invalid dice bonus in %q", notation)
		}
		expr.Bonus = bonus
		dicePart = notation[:i]
	}

	parts := strings.Split(dicePart, "d")
	if len(parts) != 2 {
		return Expression{}, fmt.Errorf("invalid dice string %q", notation)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil || count < 1 {
		return Expression{}, fmt.Errorf("invalid dice count in %q", notation)
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil || sides < 1 {
		return Expression{}, fmt.Errorf("invalid dice size in %q", notation)
	}

	expr.Count = count
	expr.Sides = sides
	return expr, nil
}

// roll rolls dice using math/rand
func roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rawTotal := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = rand.Intn(sides) + 1
		rawTotal += out[i]
	}

	log.Printf("[DICE] Rolling %dd%d: %v total: %d", count, sides, out, rawTotal+bonus)

	result := &RollResult{
		Total:    rawTotal + bonus,
		RawTotal: rawTotal,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
	}
	if count == 1 && sides == 20 {
		result.IsCrit = out[0] == 20
		result.IsFumble = out[0] == 1
	}

	return result, nil
}
