package commands

import (
	"fmt"
	"strings"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

func validateKind(kind domain.Kind) error {
	for _, k := range domain.Kinds {
		if kind == k {
			return nil
		}
	}
	return &application.ValidationError{
		Field:   "kind",
		Message: fmt.Sprintf("expected tag or folder, got: %q", kind),
	}
}

func validateRef(fieldName, ref string) error {
	return application.ValidateRequired(fieldName, domain.ParseLabelRef(ref))
}

// describe renders a label for result messages, e.g. "tag #work/design"
func describe(v application.LabelView) string {
	if v.Kind == domain.KindTag {
		return fmt.Sprintf("tag %s", v.DisplayTag())
	}
	return fmt.Sprintf("folder %s", v.Path)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
