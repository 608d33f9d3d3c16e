package types_test

import (
	"strings"
	"testing"

	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestDocumentIDValidation(t *testing.T) {
	testCases := []struct {
		name  string
		id    types.TeamID
		valid bool
	}{
		{name: "generated", id: types.NewTeamID(), valid: true},
		{name: "legacy id", id: "aBc123XyZ", valid: true},
		{name: "empty", id: types.EmptyTeamID, valid: false},
		{name: "slash", id: "team/other", valid: false},
		{name: "dot", id: ".", valid: false},
		{name: "double dot", id: "..", valid: false},
		{name: "reserved", id: "__team__", valid: false},
		{name: "too long", id: types.TeamID(strings.Repeat("a", 1501)), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.id.Validate()
			if tc.valid {
				gt.NoError(t, err)
			} else {
				gt.Error(t, err)
			}
		})
	}
}

func TestNewIDs(t *testing.T) {
	gt.NotEqual(t, types.NewTeamID(), types.NewTeamID())
	gt.NotEqual(t, types.NewBotID(), types.NewBotID())
	gt.NoError(t, types.NewBotID().Validate())
}
