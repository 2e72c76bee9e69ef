package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/state"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	wkerrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

var buttonTones = map[string]components.ButtonVariant{
	"":          components.ButtonVariantPrimary,
	"default":   components.ButtonVariantMuted,
	"primary":   components.ButtonVariantPrimary,
	"secondary": components.ButtonVariantSecondary,
	"success":   components.ButtonVariantSuccess,
	"warning":   components.ButtonVariantWarning,
	"error":     components.ButtonVariantError,
	"info":      components.ButtonVariantInfo,
}

// Build creates the widget a variant describes with its state seeded from
// the variant's props.
func Build(v config.VariantFile) (components.ContextualRenderable, error) {
	p := v.Props
	label := v.Label
	if label == "" {
		label = v.ID
	}

	switch v.Kind {
	case "button":
		return components.NewButton(label).
			WithVariant(buttonTones[p.Tone]).
			WithDisabled(p.Disabled), nil

	case "badge":
		tone, _ := components.ParseBadgeVariant(p.Tone)
		return components.NewBadge(label).WithVariant(tone), nil

	case "accordion":
		sections := make([]components.AccordionSection, 0, len(p.Items))
		for _, item := range p.Items {
			sections = append(sections, components.AccordionSection{ID: item.ID, Title: itemLabel(item), Body: item.Body})
		}
		return components.NewAccordion(p.Multi, sections...).WithOpen(p.Open...), nil

	case "chips":
		chips := make([]components.Chip, 0, len(p.Items))
		for _, item := range p.Items {
			chips = append(chips, components.Chip{ID: item.ID, Label: itemLabel(item)})
		}
		return components.NewChipFilter(chips, p.Open...), nil

	case "select":
		sel := components.NewSelect(options(p.Items), p.Value, nil)
		if p.Controlled {
			sel.SetValue(p.Value)
		}
		return sel, nil

	case "range":
		if p.Min == nil || p.Max == nil {
			return nil, wkerrors.NewRenderError(v.ID, "range needs min and max", nil)
		}
		low, high := *p.Min, *p.Max
		if p.Low != nil {
			low = *p.Low
		}
		if p.High != nil {
			high = *p.High
		}
		slider, err := components.NewRangeSlider(v.Label, *p.Min, *p.Max, low, high)
		if err != nil {
			return nil, wkerrors.NewRenderError(v.ID, "", err)
		}
		return slider, nil

	case "pagination":
		return components.NewPagination(max(p.Current, 1), p.Total), nil

	case "autocomplete":
		ac := components.NewAutocomplete(options(p.Items), p.Limit, nil)
		ac.SetQuery(p.Query)
		return ac, nil

	case "stepper":
		steps := make([]string, 0, len(p.Items))
		for _, item := range p.Items {
			steps = append(steps, itemLabel(item))
		}
		stepper := state.NewStepper(steps...)
		for i := 0; i < p.Step; i++ {
			stepper.Next()
		}
		return components.NewStepperView(stepper), nil

	default:
		return nil, wkerrors.NewValidationError("kind", fmt.Sprintf("unknown widget kind %q", v.Kind), nil)
	}
}

func itemLabel(item config.Item) string {
	if item.Label != "" {
		return item.Label
	}
	return item.ID
}

func options(items []config.Item) []state.Option {
	opts := make([]state.Option, 0, len(items))
	for _, item := range items {
		opts = append(opts, state.Option{Value: item.ID, Label: itemLabel(item)})
	}
	return opts
}
