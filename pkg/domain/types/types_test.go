package types_test

import (
	"testing"

	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRoleEqualFold(t *testing.T) {
	tests := []struct {
		name     string
		a, b     types.Role
		expected bool
	}{
		{"Identical roles match", "DESIGNER", "DESIGNER", true},
		{"Case differences match", "designer", "DESIGNER", true},
		{"Mixed case matches", "Designer", "dEsIgNeR", true},
		{"Different roles do not match", "DESIGNER", "CONSUMER", false},
		{"Empty roles match", "", "", true},
		{"Empty against non-empty does not match", "", "DESIGNER", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.expected, tt.a.EqualFold(tt.b))
		})
	}
}

func TestNewCorrelationID(t *testing.T) {
	a := types.NewCorrelationID()
	b := types.NewCorrelationID()
	gt.True(t, a != "")
	gt.True(t, a != b)
}
