package combat

//go:generate mockgen -destination=mock/mock_picker.go -package=mockcombat -source=picker.go

import (
	"context"
)

// OptionKind is what choosing an option means
type OptionKind int

const (
	OptionCreature OptionKind = iota
	OptionCancel
	OptionPass
)

// Option is one choice offered to the acting player or AI
type Option struct {
	Kind     OptionKind
	Label    string
	Creature *Creature
	// Key lets the caller map the chosen option back to what it stands for
	Key string
	// Tooltip previews the outcome when the action offers one
	Tooltip string
}

// CancelOption backs out of the whole activity
func CancelOption() Option {
	return Option{Kind: OptionCancel, Label: "Cancel"}
}

// PassOption ends a repeating activity
func PassOption(label string) Option {
	if label == "" {
		label = "Pass"
	}
	return Option{Kind: OptionPass, Label: label}
}

// Request asks the performer to choose one option
type Request struct {
	Prompt  string
	Actor   *Creature
	Options []Option
}

// Picker awaits a choice from the acting player or AI
type Picker interface {
	Pick(ctx context.Context, req *Request) (*Option, error)
}

// FirstChoicePicker picks the first creature option, passing when there is none.
// It stands in for an AI that always takes the first legal play.
type FirstChoicePicker struct{}

// Pick implements Picker
func (FirstChoicePicker) Pick(_ context.Context, req *Request) (*Option, error) {
	for i := range req.Options {
		if req.Options[i].Kind == OptionCreature {
			return &req.Options[i], nil
		}
	}
	for i := range req.Options {
		if req.Options[i].Kind == OptionPass {
			return &req.Options[i], nil
		}
	}
	cancel := CancelOption()
	return &cancel, nil
}
