package entities

import (
	"sort"
	"strings"

	"procurement-api/pkg/validation"
)

var validate = newValidator()

func newValidator() *validation.CustomValidator {
	v := validation.New()
	v.Engine().RegisterStructValidation(requestBudgetRange, Request{})
	return v
}

// Validate checks an entity against its field constraints before it reaches the store.
func Validate(entity interface{}) error {
	return validate.Validate(entity)
}

// TagsToList exposes a stored tag mapping as sorted "key: value" strings.
func TagsToList(tags map[string]string) []string {
	list := make([]string, 0, len(tags))
	for k, v := range tags {
		list = append(list, k+validation.TagSeparator+v)
	}
	sort.Strings(list)
	return list
}

// TagsFromList converts "key: value" strings back into the stored mapping.
// Each entry is split at the first separator, so a value may contain ": " but a key may not.
// Entries without a separator are stored with an empty value. A repeated key keeps the
// last value; the unique_tag_keys rule rejects such lists before they are stored.
func TagsFromList(list []string) map[string]string {
	tags := make(map[string]string, len(list))
	for _, tag := range list {
		k, v, _ := strings.Cut(tag, validation.TagSeparator)
		tags[k] = v
	}
	return tags
}

// ServicesToList returns the names of enabled services, sorted.
func ServicesToList(services map[string]bool) []string {
	list := make([]string, 0, len(services))
	for name, enabled := range services {
		if enabled {
			list = append(list, name)
		}
	}
	sort.Strings(list)
	return list
}

func ServicesFromList(list []string) map[string]bool {
	services := make(map[string]bool, len(list))
	for _, name := range list {
		services[name] = true
	}
	return services
}
