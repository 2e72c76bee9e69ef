package config

import (
	"fmt"

	wkerrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// ValidateTheme performs schema validation on a theme document.
func ValidateTheme(theme *ThemeFile) error {
	if theme == nil {
		return wkerrors.NewValidationError("theme", "theme is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(theme))
}

// ValidateCatalog performs schema and cross-field validation on a catalog.
func ValidateCatalog(cat *CatalogFile) error {
	if cat == nil {
		return wkerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(cat); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cat.Variants))
	for i, variant := range cat.Variants {
		if first, exists := seen[variant.ID]; exists {
			return wkerrors.NewValidationError(fieldForVariant(i, "id"),
				fmt.Sprintf("duplicate variant id %q (first at variants[%d])", variant.ID, first), nil)
		}
		seen[variant.ID] = i

		if err := validateProps(i, variant); err != nil {
			return err
		}
	}

	return nil
}

// validateProps checks the props a kind cannot render without.
func validateProps(index int, variant VariantFile) error {
	props := variant.Props
	switch variant.Kind {
	case "accordion", "chips", "select", "autocomplete", "stepper":
		if len(props.Items) == 0 {
			return wkerrors.NewValidationError(fieldForVariant(index, "props.items"),
				fmt.Sprintf("%s needs at least one item", variant.Kind), nil)
		}
	case "range":
		if props.Min == nil || props.Max == nil {
			return wkerrors.NewValidationError(fieldForVariant(index, "props"),
				"range needs min and max", nil)
		}
		if *props.Min > *props.Max {
			return wkerrors.NewValidationError(fieldForVariant(index, "props.min"),
				fmt.Sprintf("min %d is greater than max %d", *props.Min, *props.Max), nil)
		}
	case "pagination":
		if props.Total < 1 {
			return wkerrors.NewValidationError(fieldForVariant(index, "props.total"),
				"pagination needs a total of at least 1", nil)
		}
	}

	if variant.Kind == "stepper" && props.Step > len(props.Items) {
		return wkerrors.NewValidationError(fieldForVariant(index, "props.step"),
			fmt.Sprintf("step %d is past the last of %d steps", props.Step, len(props.Items)), nil)
	}
	return nil
}
