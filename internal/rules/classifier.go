// Package rules implements the Trophy Gold resolution rules: the pure
// classification of a set of rolled dice into a narrative outcome, and the
// composition of dice pools per roll type.
package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goldhollow/trophytable/internal/models"
)

// Classify maps a set of rolled dice and the roll type they were made under
// to an Outcome. It is deterministic, total over the four roll types, and has
// no side effects. An empty dice set yields the sentinel no-dice outcome.
// An unknown roll type is a programming error and panics: the enum is closed
// and callers enumerate it exhaustively.
func Classify(dice []models.Die, rollType models.RollType) models.Outcome {
	if len(dice) == 0 {
		return models.Outcome{
			Label:    "Sin dados",
			Severity: models.SeverityNone,
			Sound:    models.SoundClick,
			RollType: rollType,
		}
	}

	highest := 0
	for _, d := range dice {
		if d.Value > highest {
			highest = d.Value
		}
	}

	// The dark-highest check considers every die tied for the highest value,
	// not a single winner among them.
	isDarkHighest := false
	for _, d := range dice {
		if d.Value == highest && d.Kind == models.DieKindDark {
			isDarkHighest = true
			break
		}
	}

	var out models.Outcome
	switch rollType {
	case models.RollTypeRisk:
		out = classifyRisk(highest)
	case models.RollTypeHunt:
		out = classifyHunt(dice)
	case models.RollTypeCombat:
		out = classifyCombat(dice)
	case models.RollTypeHelp:
		out = classifyHelp(dice)
	default:
		panic(fmt.Sprintf("rules: unknown roll type %q", rollType))
	}

	out.RollType = rollType
	out.IsDarkHighest = isDarkHighest && highest > 0

	// Unconditional override, applied last: a dark die on top means ruin
	// looms regardless of how well the roll itself went.
	if out.IsDarkHighest {
		out.Sound = models.SoundRuin
	}

	return out
}

func classifyRisk(highest int) models.Outcome {
	switch {
	case highest == 6:
		return models.Outcome{
			Label:    "Logras lo que quieres. Describe cómo o pídeselo al Guardián",
			Severity: models.SeverityGold,
			Icon:     "✨",
			Sound:    models.SoundSuccess,
		}
	case highest >= 4:
		return models.Outcome{
			Label:    "Logras lo que quieres, pero con alguna complicación. El Guardián la determina y tú describes cómo lo consigues.",
			Severity: models.SeverityPale,
			Icon:     "⚠️",
			Sound:    models.SoundFail,
		}
	default:
		return models.Outcome{
			Label:    "Fracasas y todo va a peor. El Guardián describe cómo.",
			Severity: models.SeverityMuted,
			Icon:     "💀",
			Sound:    models.SoundFail,
		}
	}
}

// classifyHunt counts sixes; each six is one exploration token. Light or
// dark makes no difference here.
func classifyHunt(dice []models.Die) models.Outcome {
	sixes := 0
	for _, d := range dice {
		if d.Value == 6 {
			sixes++
		}
	}

	if sixes == 0 {
		return models.Outcome{
			Label:    "No encuentras nada.",
			Severity: models.SeverityMuted,
			Icon:     "🥀",
			Sound:    models.SoundFail,
		}
	}

	label := fmt.Sprintf("Ganas %d Contadores de Exploración.", sixes)
	if sixes == 1 {
		label = "Ganas 1 Contador de Exploración."
	}
	return models.Outcome{
		Label:    label,
		Severity: models.SeverityGold,
		Icon:     "💎",
		Sound:    models.SoundSuccess,
		Tokens:   sixes,
	}
}

// classifyCombat sums the two highest dark dice for damage, then counts how
// many dark dice land on a declared weak point (a light die value); each
// match is one ruin hit.
func classifyCombat(dice []models.Die) models.Outcome {
	var darkValues, lightValues []int
	for _, d := range dice {
		if d.Kind == models.DieKindDark {
			darkValues = append(darkValues, d.Value)
		} else {
			lightValues = append(lightValues, d.Value)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(darkValues)))

	damage := 0
	if len(darkValues) > 0 {
		damage = darkValues[0]
	}
	if len(darkValues) > 1 {
		damage += darkValues[1]
	}

	ruinHits := 0
	for _, weakPoint := range lightValues {
		for _, v := range darkValues {
			if v == weakPoint {
				ruinHits++
			}
		}
	}

	out := models.Outcome{
		Label:    fmt.Sprintf("Daño total: %d", damage),
		Damage:   damage,
		RuinHits: ruinHits,
	}

	if ruinHits > 0 {
		out.Label += fmt.Sprintf(" | ¡Punto débil golpeado! (+%d RUINA)", ruinHits)
		out.Severity = models.SeverityRuin
		out.Icon = "🩸"
		out.Sound = models.SoundRuin
		return out
	}

	if damage >= 10 {
		out.Severity = models.SeverityCritical
		out.Icon = "⚔️"
		out.Sound = models.SoundSuccess
	} else {
		out.Severity = models.SeverityMuted
		out.Icon = "🗡️"
		out.Sound = models.SoundClick
	}

	if len(lightValues) > 0 {
		out.Label += fmt.Sprintf(" (P. Débil: %s)", joinInts(lightValues))
	}
	return out
}

// classifyHelp reads the single light die a help roll consists of. The pool
// assembler guarantees exactly one die; extra dice would only matter for the
// shared dark-highest check, which is moot for an all-light pool.
func classifyHelp(dice []models.Die) models.Outcome {
	val := dice[0].Value
	out := models.Outcome{
		Label: fmt.Sprintf("Dado de ayuda: %d", val),
	}
	switch {
	case val == 6:
		out.Severity = models.SeverityGold
		out.Icon = "🤝"
		out.Sound = models.SoundSuccess
	case val >= 4:
		out.Severity = models.SeverityPale
		out.Icon = "✋"
		out.Sound = models.SoundFail
	default:
		out.Severity = models.SeverityMuted
		out.Icon = "🥀"
		out.Sound = models.SoundFail
	}
	return out
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
