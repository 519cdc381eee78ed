package flows

import (
	"fmt"
	"strconv"
)

// digitsExactly builds a validator for fixed-length numeric input (PIN entry).
func digitsExactly(n int) func(string) error {
	return func(input string) error {
		if len(input) != n {
			return fmt.Errorf("enter exactly %d digits", n)
		}
		for _, r := range input {
			if r < '0' || r > '9' {
				return fmt.Errorf("enter exactly %d digits", n)
			}
		}
		return nil
	}
}

// intBetween builds a validator for an integer amount within [min, max].
func intBetween(min, max int64) func(string) error {
	return func(input string) error {
		v, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if v < min || v > max {
			return fmt.Errorf("amount must be between R%d and R%d", min, max)
		}
		return nil
	}
}

// oneOf builds a validator for enumerated option menus.
func oneOf(options ...string) func(string) error {
	return func(input string) error {
		for _, o := range options {
			if input == o {
				return nil
			}
		}
		return fmt.Errorf("reply with option number (1-%d)", len(options))
	}
}
