package utils

import "fmt"

// EnumValidator builds a field validator that accepts only the listed values.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(value string) error {
		if _, ok := set[value]; !ok {
			return fmt.Errorf("value %q is not one of the allowed values", value)
		}
		return nil
	}
}
