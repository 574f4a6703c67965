package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		region        string
		expectedCount int
		expectedFirst string
		expectedLast  string
		expectedError bool
	}{
		{
			name:          "american region",
			region:        "american",
			expectedCount: 6,
			expectedFirst: "United States",
			expectedLast:  "Chile",
		},
		{
			name:          "african region",
			region:        "african",
			expectedCount: 10,
			expectedFirst: "South Africa",
			expectedLast:  "Zimbabwe",
		},
		{
			name:          "all concatenates american then african",
			region:        "all",
			expectedCount: 16,
			expectedFirst: "United States",
			expectedLast:  "Zimbabwe",
		},
		{
			name:          "unknown region",
			region:        "european",
			expectedError: true,
		},
		{
			name:          "empty region",
			region:        "",
			expectedError: true,
		},
		{
			name:          "case sensitive",
			region:        "American",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			countries, err := Resolve(tt.region)

			if tt.expectedError {
				require.ErrorIs(t, err, ErrInvalidRegion)
				assert.Nil(t, countries)
				return
			}

			require.NoError(t, err)
			require.Len(t, countries, tt.expectedCount)
			assert.Equal(t, tt.expectedFirst, countries[0])
			assert.Equal(t, tt.expectedLast, countries[len(countries)-1])
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	for _, region := range []string{American, African, All} {
		first, err := Resolve(region)
		require.NoError(t, err)
		second, err := Resolve(region)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	countries, err := Resolve(American)
	require.NoError(t, err)
	countries[0] = "mutated"

	again, err := Resolve(American)
	require.NoError(t, err)
	assert.Equal(t, "United States", again[0])
}

func TestTables(t *testing.T) {
	tables := Tables()
	require.Contains(t, tables, American)
	require.Contains(t, tables, African)
	assert.Len(t, tables[American], 6)
	assert.Len(t, tables[African], 10)
}
