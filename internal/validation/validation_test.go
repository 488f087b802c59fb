package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"1234567890",
		"123-456-7890",
		"123.456.7890",
		"123 456 7890",
		"(123)4567890",
		"(123) 456-7890",
		"123-4567890",
	}
	for _, p := range valid {
		t.Run("Valid "+p, func(t *testing.T) {
			assert.True(t, IsValidPhone(p))
		})
	}

	invalid := []string{
		"",
		"123456789",
		"12345678901",
		"123-456-789a",
		"abc-def-ghij",
		"123--456-7890",
		"123_456_7890",
		"+1 123 456 7890",
		" 1234567890",
		"1234567890 ",
		"123/456/7890",
	}
	for _, p := range invalid {
		t.Run("Invalid "+p, func(t *testing.T) {
			assert.False(t, IsValidPhone(p))
		})
	}
}

func TestValidGenres(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     bool
	}{
		{"AllKnown", []string{"Jazz", "Blues", "R&B"}, true},
		{"Single", []string{"Other"}, true},
		{"Empty", []string{}, true},
		{"OneUnknown", []string{"Jazz", "Polka"}, false},
		{"WrongCase", []string{"jazz"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidGenres(tt.selected))
		})
	}
}

func TestValidState(t *testing.T) {
	assert.True(t, ValidState("CA"))
	assert.True(t, ValidState("WY"))
	assert.False(t, ValidState(""))
	assert.False(t, ValidState("California"))
	assert.False(t, ValidState("ZZ"))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://www.facebook.com/thedueling"))
	assert.True(t, IsValidURL("http://example.com"))
	assert.False(t, IsValidURL("example.com"))
	assert.False(t, IsValidURL("/relative/path"))
	assert.False(t, IsValidURL("http://"))
	assert.False(t, IsValidURL("not a url"))
	assert.False(t, IsValidURL("http://[::1"))
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type sample struct {
		Phone  string   `validate:"omitempty,phone"`
		State  string   `validate:"usstate"`
		Genres []string `validate:"genres"`
		Link   string   `validate:"omitempty,absurl"`
		Name   string   `validate:"required,notblank"`
	}

	t.Run("Valid", func(t *testing.T) {
		err := v.Struct(sample{Phone: "123-456-7890", State: "NY", Genres: []string{"Jazz"}, Link: "https://x.io", Name: "The Musical Hop"})
		assert.NoError(t, err)
	})

	t.Run("EmptyOptionalFields", func(t *testing.T) {
		err := v.Struct(sample{State: "NY", Genres: []string{"Jazz"}, Name: "Hop"})
		assert.NoError(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		err := v.Struct(sample{Phone: "12", State: "QQ", Genres: []string{"Polka"}, Link: "nope", Name: " \t "})
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := map[string]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		assert.Equal(t, map[string]string{
			"Phone":  TagPhone,
			"State":  TagState,
			"Genres": TagGenres,
			"Link":   TagURL,
			"Name":   TagNotBlank,
		}, fields)
	})
}
