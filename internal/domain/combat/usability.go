package combat

// Usability is the legality of using something on a candidate
type Usability struct {
	Legal  bool
	Reason string
}

// Usable is the legal result
var Usable = Usability{Legal: true}

// NotUsable returns an illegal result carrying a reason for the chooser
func NotUsable(reason string) Usability {
	return Usability{Reason: reason}
}

// Condition is an extra legality predicate on a target candidate
type Condition func(enc *Encounter, actor, candidate *Creature) Usability

// Conditions checks each condition in order and returns the first rejection
func Conditions(enc *Encounter, actor, candidate *Creature, conds ...Condition) Usability {
	for _, cond := range conds {
		if cond == nil {
			continue
		}
		if u := cond(enc, actor, candidate); !u.Legal {
			return u
		}
	}
	return Usable
}
