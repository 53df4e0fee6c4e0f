package config

import "fmt"

// Range returns a validator that accepts integers within [min, max],
// inclusive on both ends.
func Range(min, max int) Validator[int] {
	return func(value int) error {
		if value < min || value > max {
			return fmt.Errorf("value %d is out of range [%d, %d]", value, min, max)
		}

		return nil
	}
}
