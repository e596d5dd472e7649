// Package configurator keeps the visitor's package selection and turns it
// into a quote request message. It holds no I/O; callers persist Snapshots.
package configurator

import (
	"errors"
	"sort"
	"strings"

	"EportsTech/internal/entity"
	"EportsTech/internal/localization"
)

type State string

const (
	StateLoading      State = "loading"
	StateReady        State = "ready"
	StateSummaryReady State = "summary_ready"
)

type Level string

const (
	LevelEssential   Level = "essential"
	LevelRecommended Level = "recommended"
	LevelOptional    Level = "optional"
)

// LevelRule assigns the recommendation level of an item when it is loaded.
type LevelRule func(item entity.ConfiguratorItem) Level

// UniformOptional marks every item optional. It is the only rule shipped
// until a questionnaire feeds real priorities.
func UniformOptional(entity.ConfiguratorItem) Level {
	return LevelOptional
}

var (
	ErrItemNotFound = errors.New("configurator item not found")
	ErrNotReady     = errors.New("configurator is still loading")
	ErrNoLevelRule  = errors.New("level rule is required")
)

type ItemResult struct {
	entity.ConfiguratorItem
	Level    Level `json:"level"`
	Selected bool  `json:"selected"`
}

type Quote struct {
	ServiceInterest string                    `json:"serviceInterest"`
	Message         string                    `json:"message"`
	Items           []entity.ConfiguratorItem `json:"items"`
}

// Snapshot is the serializable form of an Engine.
type Snapshot struct {
	State State        `json:"state"`
	Items []ItemResult `json:"items"`
}

type Engine struct {
	state   State
	items   []ItemResult
	bundled map[string]entity.ConfiguratorItem
}

// New creates an engine in the loading state. bundled supplies the copy
// used when an item's stored title or benefit is empty in every language
// the chain consults.
func New(bundled []entity.ConfiguratorItem) *Engine {
	e := &Engine{state: StateLoading}
	e.setBundled(bundled)
	return e
}

func Restore(s Snapshot, bundled []entity.ConfiguratorItem) *Engine {
	e := &Engine{state: s.State, items: s.Items}
	if e.state == "" {
		e.state = StateLoading
	}
	e.setBundled(bundled)
	return e
}

func (e *Engine) setBundled(bundled []entity.ConfiguratorItem) {
	e.bundled = make(map[string]entity.ConfiguratorItem, len(bundled))
	for _, it := range bundled {
		e.bundled[it.ID] = it
	}
}

func (e *Engine) Snapshot() Snapshot {
	items := make([]ItemResult, len(e.items))
	copy(items, e.items)
	return Snapshot{State: e.state, Items: items}
}

func (e *Engine) State() State {
	return e.state
}

// Load keeps visible items in sort order, all unselected.
func (e *Engine) Load(items []entity.ConfiguratorItem, rule LevelRule) error {
	if rule == nil {
		return ErrNoLevelRule
	}

	visible := make([]entity.ConfiguratorItem, 0, len(items))
	for _, it := range items {
		if it.Visible {
			visible = append(visible, it)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	e.items = make([]ItemResult, 0, len(visible))
	for _, it := range visible {
		e.items = append(e.items, ItemResult{
			ConfiguratorItem: it,
			Level:            rule(it),
		})
	}
	e.state = StateReady
	return nil
}

func (e *Engine) Items() []ItemResult {
	out := make([]ItemResult, len(e.items))
	copy(out, e.items)
	return out
}

// Toggle flips the selection of exactly one item.
func (e *Engine) Toggle(id string) error {
	if e.state == StateLoading {
		return ErrNotReady
	}
	for i := range e.items {
		if e.items[i].ID == id {
			e.items[i].Selected = !e.items[i].Selected
			e.state = StateReady
			return nil
		}
	}
	return ErrItemNotFound
}

func (e *Engine) Selected() []ItemResult {
	out := make([]ItemResult, 0)
	for _, it := range e.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

func (e *Engine) SelectedCount() int {
	n := 0
	for _, it := range e.items {
		if it.Selected {
			n++
		}
	}
	return n
}

// RequestQuote builds the prefilled contact message: the intro line followed
// by one "- title (benefit)" line per selected item. An empty selection is
// allowed and yields the intro alone.
func (e *Engine) RequestQuote(lang entity.Language) (Quote, error) {
	if e.state == StateLoading {
		return Quote{}, ErrNotReady
	}

	selected := e.Selected()
	lines := make([]string, 0, len(selected)+1)
	lines = append(lines, localization.QuoteIntro(lang))

	items := make([]entity.ConfiguratorItem, 0, len(selected))
	for _, it := range selected {
		fallback := e.bundled[it.ID]
		title := localization.Text(it.Title, lang, fallback.Title)
		benefit := localization.Text(it.Benefit, lang, fallback.Benefit)
		lines = append(lines, "- "+singleLine(title)+" ("+singleLine(benefit)+")")
		items = append(items, it.ConfiguratorItem)
	}

	e.state = StateSummaryReady
	return Quote{
		ServiceInterest: entity.ServiceInterestCustomConfiguration,
		Message:         strings.Join(lines, "\n"),
		Items:           items,
	}, nil
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
