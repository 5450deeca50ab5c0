// Package catalog loads the rune text shipped with the module.
package catalog

import (
	"embed"
	"sort"
	"strings"

	"github.com/KirkDiggler/runesmith/internal/dice"
	"github.com/KirkDiggler/runesmith/internal/domain/runes"
	"github.com/KirkDiggler/runesmith/internal/effects"
	dnderr "github.com/KirkDiggler/runesmith/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/runes.yaml
var embedded embed.FS

// Damage is how much an invocation deals and how it heightens
type Damage struct {
	Dice string `yaml:"dice"`
	Type string `yaml:"type"`
	// Heighten is added every Every levels above the rune's level
	Heighten string `yaml:"heighten"`
	Every    int    `yaml:"every"`
}

// Entry is the text and classification of one rune
type Entry struct {
	Key        string   `yaml:"key"`
	Name       string   `yaml:"name"`
	Level      int      `yaml:"level"`
	Tags       []string `yaml:"tags"`
	UsageTags  []string `yaml:"usage_tags"`
	InvokeTags []string `yaml:"invoke_tags"`

	Usage     string `yaml:"usage"`
	Flavor    string `yaml:"flavor"`
	Passive   string `yaml:"passive"`
	Invoke    string `yaml:"invoke"`
	LevelText string `yaml:"level_text"`

	Damage *Damage `yaml:"damage"`
}

type file struct {
	Runes []*Entry `yaml:"runes"`
}

// Catalog is the loaded rune text by key
type Catalog struct {
	entries map[string]*Entry
}

// Load reads the embedded catalog
func Load() (*Catalog, error) {
	data, err := embedded.ReadFile("data/runes.yaml")
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read rune catalog")
	}
	return Parse(data)
}

// Parse reads a catalog document
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, dnderr.Wrap(err, "failed to parse rune catalog")
	}

	c := &Catalog{entries: make(map[string]*Entry, len(f.Runes))}
	for i, e := range f.Runes {
		if err := e.normalize(); err != nil {
			return nil, dnderr.Wrapf(err, "rune catalog entry %d", i)
		}
		if _, exists := c.entries[e.Key]; exists {
			return nil, dnderr.Misconfiguredf("rune %s is listed twice", e.Key)
		}
		c.entries[e.Key] = e
	}
	return c, nil
}

// Entry returns the entry for key
func (c *Catalog) Entry(key string) (*Entry, error) {
	e, ok := c.entries[key]
	if !ok {
		return nil, dnderr.NotFoundf("rune %s is not in the catalog", key)
	}
	return e, nil
}

// Keys returns every key in the catalog, sorted
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *Entry) normalize() error {
	e.Key = strings.TrimSpace(e.Key)
	if e.Key == "" {
		return dnderr.Misconfiguredf("rune %q has no key", e.Name)
	}
	if strings.TrimSpace(e.Name) == "" {
		e.Name = DisplayName(e.Key)
	}
	if e.Level < 1 {
		e.Level = 1
	}
	if e.Damage != nil {
		if _, err := dice.Parse(e.Damage.Dice); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeMisconfigured, "rune "+e.Key+" damage")
		}
		if e.Damage.Heighten != "" {
			if _, err := dice.Parse(e.Damage.Heighten); err != nil {
				return dnderr.WrapWithCode(err, dnderr.CodeMisconfigured, "rune "+e.Key+" heightened damage")
			}
		}
	}
	return nil
}

// DamageAt returns the invocation damage heightened to level
func (e *Entry) DamageAt(level int) (dice.Expression, error) {
	if e.Damage == nil {
		return dice.Expression{}, dnderr.NotFoundf("rune %s deals no damage", e.Key)
	}
	expr, err := dice.Parse(e.Damage.Dice)
	if err != nil {
		return dice.Expression{}, err
	}
	if e.Damage.Heighten == "" || e.Damage.Every < 1 || level <= e.Level {
		return expr, nil
	}

	step, err := dice.Parse(e.Damage.Heighten)
	if err != nil {
		return dice.Expression{}, err
	}
	steps := (level - e.Level) / e.Damage.Every
	expr.Count += step.Count * steps
	expr.Bonus += step.Bonus * steps
	return expr, nil
}

// Definition turns the entry into a rune definition with text and tags
// filled in. Behavior is left to the caller.
func (e *Entry) Definition() runes.Definition {
	def := runes.Definition{
		Key:         effects.Tag(e.Key),
		Name:        e.Name,
		Level:       e.Level,
		UsageText:   e.Usage,
		FlavorText:  e.Flavor,
		PassiveText: e.Passive,
		InvokeText:  e.fill(e.Invoke, e.Level),
		LevelText:   e.fill(e.LevelText, e.Level),
		Tags:        toTags(e.Tags),
		UsageTags:   toTags(e.UsageTags),
		InvokeTags:  toTags(e.InvokeTags),
	}
	if e.Damage != nil {
		def.HeightenInvoke = func(_ *runes.Rune, level int) string {
			return e.fill(e.Invoke, level)
		}
	}
	return def
}

// fill replaces {damage} and {heighten} placeholders
func (e *Entry) fill(text string, level int) string {
	if e.Damage == nil || text == "" {
		return text
	}
	damage := e.Damage.Dice
	if expr, err := e.DamageAt(level); err == nil {
		damage = expr.String()
	}
	return strings.NewReplacer("{damage}", damage, "{heighten}", e.Damage.Heighten).Replace(text)
}

// DisplayName turns a key such as "rune-of-fire" into "Rune Of Fire"
func DisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "-", " "))
}

func toTags(in []string) []effects.Tag {
	out := make([]effects.Tag, 0, len(in))
	for _, t := range in {
		out = append(out, effects.Tag(t))
	}
	return out
}
