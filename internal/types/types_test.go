package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanTier(t *testing.T) {
	tests := []struct {
		in   string
		want PlanTier
	}{
		{"free", PlanFree},
		{"pro", PlanPro},
		{"paid", PlanPro}, // legacy synonym
		{"FREE", PlanFree},
		{" Pro ", PlanPro},
	}
	for _, tt := range tests {
		got, err := ParsePlanTier(tt.in)
		require.NoError(t, err, "ParsePlanTier(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParsePlanTier(%q)", tt.in)
	}
}

func TestParsePlanTier_Invalid(t *testing.T) {
	for _, in := range []string{"", "enterprise", "premium", "0"} {
		_, err := ParsePlanTier(in)
		assert.Error(t, err, "ParsePlanTier(%q)", in)
	}
}

func TestFixedPageSets(t *testing.T) {
	assert.Equal(t, []string{"home", "about", "contact", "signup", "login", "privacy", "terms"}, ComponentPages)
	assert.Equal(t, []string{"shop", "category", "product", "cart", "checkout"}, LayoutPages)
}
