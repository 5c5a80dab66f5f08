package vin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/vin"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1HGCM82633A004352", vin.Normalize("  1hgcm82633a004352 "))
}

func TestValidate(t *testing.T) {
	t.Run("Success - Known Valid VINs", func(t *testing.T) {
		for _, v := range []string{
			"1HGCM82633A004352",
			"1M8GDM9AXKP042788", // check digit X
			"5YJ3E1EA7HF000337",
			"11111111111111111",
		} {
			assert.NoError(t, vin.Validate(v), v)
		}
	})

	t.Run("Failure - Wrong Length", func(t *testing.T) {
		assert.Error(t, vin.Validate(""))
		assert.Error(t, vin.Validate("1HGCM82633A00435"))
		assert.Error(t, vin.Validate("1HGCM82633A0043521"))
	})

	t.Run("Failure - Forbidden Characters", func(t *testing.T) {
		// I, O and Q are never used in a VIN
		assert.Error(t, vin.Validate("IHGCM82633A004352"))
		assert.Error(t, vin.Validate("OHGCM82633A004352"))
		assert.Error(t, vin.Validate("QHGCM82633A004352"))
		assert.Error(t, vin.Validate("1HGCM82633A00435!"))
	})

	t.Run("Failure - Check Digit Mismatch", func(t *testing.T) {
		assert.Error(t, vin.Validate("1HGCM82634A004352"))
	})

	t.Run("Failure - Lowercase Rejected Without Normalize", func(t *testing.T) {
		assert.Error(t, vin.Validate("1hgcm82633a004352"))
	})
}
