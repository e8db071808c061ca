package inventory

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLen         = 100
	maxDescriptionLen  = 500
	maxCategoryNameLen = 50
	maxCategoryDescLen = 200
)

var hexColorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

func validateItemInput(in CreateInput) *ValidationError {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Item name is required"
	} else if utf8.RuneCountInString(in.Name) > maxNameLen {
		errs["name"] = "Item name cannot exceed 100 characters"
	}
	if strings.TrimSpace(in.Category) == "" {
		errs["category"] = "Category is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "Description is required"
	} else if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		errs["description"] = "Description cannot exceed 500 characters"
	}
	if in.Quantity < 0 {
		errs["quantity"] = "Quantity cannot be negative"
	}
	if in.Price != nil && *in.Price < 0 {
		errs["price"] = "Price cannot be negative"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func validateItemChanges(in UpdateInput) *ValidationError {
	errs := map[string]string{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			errs["name"] = "Item name is required"
		} else if utf8.RuneCountInString(*in.Name) > maxNameLen {
			errs["name"] = "Item name cannot exceed 100 characters"
		}
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		errs["category"] = "Category is required"
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			errs["description"] = "Description is required"
		} else if utf8.RuneCountInString(*in.Description) > maxDescriptionLen {
			errs["description"] = "Description cannot exceed 500 characters"
		}
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		errs["quantity"] = "Quantity cannot be negative"
	}
	if in.Price != nil && *in.Price < 0 {
		errs["price"] = "Price cannot be negative"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func validateCategoryInput(in CategoryInput) *ValidationError {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Category name is required"
	} else if utf8.RuneCountInString(in.Name) > maxCategoryNameLen {
		errs["name"] = "Category name cannot exceed 50 characters"
	}
	if utf8.RuneCountInString(in.Description) > maxCategoryDescLen {
		errs["description"] = "Description cannot exceed 200 characters"
	}
	if in.Color != "" && !hexColorRe.MatchString(in.Color) {
		errs["color"] = "Color must be a valid hex color code (e.g. #ff0000)"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
