package combat

import (
	"fmt"

	"github.com/KirkDiggler/runesmith/internal/dice"
)

// Degree is the degree of success of a check
type Degree int

const (
	CriticalFailure Degree = iota
	Failure
	Success
	CriticalSuccess
)

func (d Degree) String() string {
	switch d {
	case CriticalFailure:
		return "critical failure"
	case Failure:
		return "failure"
	case Success:
		return "success"
	case CriticalSuccess:
		return "critical success"
	}
	return fmt.Sprintf("degree(%d)", int(d))
}

// DegreeOf grades a check total against a DC. A natural 20 improves and a
// natural 1 worsens the result by one step.
func DegreeOf(total, natural, dc int) Degree {
	var degree Degree
	switch {
	case total >= dc+10:
		degree = CriticalSuccess
	case total >= dc:
		degree = Success
	case total <= dc-10:
		degree = CriticalFailure
	default:
		degree = Failure
	}

	switch natural {
	case 20:
		if degree < CriticalSuccess {
			degree++
		}
	case 1:
		if degree > CriticalFailure {
			degree--
		}
	}
	return degree
}

// SaveResult is the outcome of one saving throw
type SaveResult struct {
	Save   Save
	DC     int
	Roll   *dice.RollResult
	Degree Degree
}

// SavingThrow rolls target's save against dc
func SavingThrow(roller dice.Roller, target *Creature, save Save, dc int) (*SaveResult, error) {
	bonus := target.Saves[save]
	roll, err := roller.Roll(1, 20, bonus)
	if err != nil {
		return nil, err
	}
	natural := roll.RawTotal
	return &SaveResult{
		Save:   save,
		DC:     dc,
		Roll:   roll,
		Degree: DegreeOf(roll.Total, natural, dc),
	}, nil
}

// BasicSaveDamage scales damage by a basic save's degree
func BasicSaveDamage(degree Degree, damage int) int {
	switch degree {
	case CriticalSuccess:
		return 0
	case Success:
		return damage / 2
	case CriticalFailure:
		return damage * 2
	}
	return damage
}

// SavePreview describes a save for a targeting tooltip
func SavePreview(target *Creature, save Save, dc int) string {
	bonus := target.Saves[save]
	needed := dc - bonus
	return fmt.Sprintf("%s save DC %d (%s +%d, succeeds on %d or higher)", save, dc, target.Name, bonus, clampD20(needed))
}

func clampD20(n int) int {
	if n < 1 {
		return 1
	}
	if n > 20 {
		return 20
	}
	return n
}
