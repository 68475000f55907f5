package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
)

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.Page
		err   bool
	}{
		{name: "defaults", query: "", want: types.Page{Skip: 0, Limit: types.DefaultLimit}},
		{name: "explicit", query: "skip=20&limit=10", want: types.Page{Skip: 20, Limit: 10}},
		{name: "limit capped", query: "limit=100000", want: types.Page{Limit: types.MaxLimit}},
		{name: "negative skip", query: "skip=-1", err: true},
		{name: "text limit", query: "limit=ten", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			page, err := ParsePaginationParams(values)
			if tt.err {
				var invalid *apperrors.InvalidInputError
				assert.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestParseFilterParams(t *testing.T) {
	values, err := url.ParseQuery("filter[price__gte]=100&filter[status]=pending&filter[]=x&status=ignored&filter[notes]=a&filter[notes]=b")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"price__gte": "100",
		"status":     "pending",
		"notes":      "a",
	}, ParseFilterParams(values))
}

func TestParseOptionalNumbers(t *testing.T) {
	values := url.Values{"client_id": {"7"}, "min_price": {"99.5"}, "max_price": {"cheap"}}

	id, err := ParseOptionalUint(values, "client_id")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint64(7), *id)

	missing, err := ParseOptionalUint(values, "request_id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	price, err := ParseOptionalFloat(values, "min_price")
	require.NoError(t, err)
	assert.Equal(t, 99.5, *price)

	_, err = ParseOptionalFloat(values, "max_price")
	assert.ErrorContains(t, err, "max_price")
}

func TestNormalizePhoneNumber(t *testing.T) {
	tests := map[string]string{
		"+1 (555) 010-0123": "+15550100123",
		"992 93 123 45 67":  "+992931234567",
		"+00441234567":      "+441234567",
		"call me":           "",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePhoneNumber(in), in)
	}
}

func TestPasswords(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("correct horse")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("battery staple")))
}
