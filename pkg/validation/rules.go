package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegexp = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// TagSeparator splits a tag entry into key and value.
const TagSeparator = ": "

// registerRules registers the tags used in entity and DTO struct tags.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_e164", isPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("custom_email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("tag_pair", isTagPair); err != nil {
		return err
	}
	if err := v.RegisterValidation("unique_tag_keys", hasUniqueTagKeys); err != nil {
		return err
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegexp.MatchString(fl.Field().String())
}

func isPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}

// isTagPair accepts "key: value" with a non-empty key.
func isTagPair(fl validator.FieldLevel) bool {
	key, _, found := strings.Cut(fl.Field().String(), TagSeparator)
	return found && strings.TrimSpace(key) != ""
}

// hasUniqueTagKeys rejects a tag list in which two entries share a key,
// since only one of them could be stored.
func hasUniqueTagKeys(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	seen := make(map[string]struct{}, field.Len())
	for i := 0; i < field.Len(); i++ {
		key, _, _ := strings.Cut(field.Index(i).String(), TagSeparator)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
