package rule

import (
	"strings"

	"github.com/google/uuid"
)

// UUID accepts the canonical 36-character form only.
func UUID() Rule[string] {
	return Rule[string]{
		Name: "uuid",
		Check: func(value string, _ Env) bool {
			// Fast rejection before parsing
			if len(value) != 36 || strings.Count(value, "-") != 4 {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Message:        "must be a valid UUID",
		TranslationKey: "validation.uuid",
	}
}

// NonNilUUID fails on uuid.Nil.
func NonNilUUID() Rule[uuid.UUID] {
	return Rule[uuid.UUID]{
		Name:           "uuid_not_nil",
		Check:          func(value uuid.UUID, _ Env) bool { return value != uuid.Nil },
		Message:        "UUID cannot be nil",
		TranslationKey: "validation.uuid_not_nil",
	}
}
