package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	Date string `binding:"required,isodate"`
	Time string `binding:"required,clock"`
	Role string `binding:"omitempty,role"`
}

func TestCustomRules(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, v.Struct(slot{Date: "2025-06-12", Time: "09:00"}))
	assert.NoError(t, v.Struct(slot{Date: "2025-06-12", Time: "09:00:30", Role: "student"}))

	tests := []struct {
		name string
		in   slot
		tag  string
	}{
		{"day first date", slot{Date: "12/06/2025", Time: "09:00"}, TagDate},
		{"impossible date", slot{Date: "2025-02-30", Time: "09:00"}, TagDate},
		{"hour out of range", slot{Date: "2025-06-12", Time: "25:00"}, TagClock},
		{"unknown role", slot{Date: "2025-06-12", Time: "09:00", Role: "dean"}, TagRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.tag, verrs[0].Tag())
		})
	}
}

func TestRegisterWithGinIsRepeatable(t *testing.T) {
	require.NoError(t, RegisterWithGin())
	require.NoError(t, RegisterWithGin())
}
