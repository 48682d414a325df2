package category

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var someGroups = Groups{
	{Name: "Housing", Categories: []string{"Rent", "Utilities"}},
	{Name: "Living", Categories: []string{"Groceries", "Healthcare"}},
}

func TestNew(t *testing.T) {
	c, err := New(someGroups, "Others")
	require.NoError(t, err)
	assert.Equal(t, someGroups, c.Groups())
	assert.Equal(t, "Others", c.DefaultGroup())
}

func TestNewInvalid(t *testing.T) {
	for _, tc := range []struct {
		description string
		groups      Groups
		defaultName string
		ambiguous   bool
		err         string
	}{
		{
			description: "category in two groups",
			groups: Groups{
				{Name: "Living", Categories: []string{"Groceries", "Drinks"}},
				{Name: "Leisure", Categories: []string{"Drinks"}},
			},
			defaultName: "Others",
			ambiguous:   true,
			err:         `Invalid category groups: Category "Drinks" is listed in multiple groups: Living, Leisure`,
		},
		{
			description: "category twice in one group",
			groups: Groups{
				{Name: "Living", Categories: []string{"Drinks", "Drinks"}},
			},
			defaultName: "Others",
			ambiguous:   true,
			err:         `Invalid category groups: Category "Drinks" is listed in multiple groups: Living, Living`,
		},
		{
			description: "empty default",
			groups:      someGroups,
			err:         "Invalid category groups: Default group name must not be empty",
		},
		{
			description: "empty group name",
			groups:      Groups{{Categories: []string{"Rent"}}},
			defaultName: "Others",
			err:         "Invalid category groups: Group names must not be empty",
		},
		{
			description: "duplicate group name",
			groups: Groups{
				{Name: "Housing", Categories: []string{"Rent"}},
				{Name: "Housing", Categories: []string{"Utilities"}},
			},
			defaultName: "Others",
			err:         `Invalid category groups: Duplicate group name: "Housing"`,
		},
		{
			description: "group named like the default",
			groups:      Groups{{Name: "Others", Categories: []string{"Rent"}}},
			defaultName: "Others",
			err:         `Invalid category groups: Group "Others" has the same name as the default group`,
		},
		{
			description: "category named like a group",
			groups: Groups{
				{Name: "Housing", Categories: []string{"Rent"}},
				{Name: "Leisure", Categories: []string{"Housing"}},
			},
			defaultName: "Others",
			err:         `Invalid category groups: Category "Housing" conflicts with a group of the same name`,
		},
		{
			description: "empty category",
			groups:      Groups{{Name: "Housing", Categories: []string{""}}},
			defaultName: "Others",
			err:         `Invalid category groups: Group "Housing" contains an empty category name`,
		},
		{
			description: "multiple problems are reported together",
			groups: Groups{
				{Name: "Living", Categories: []string{"Drinks"}},
				{Name: "Leisure", Categories: []string{"Drinks", "Music"}},
				{Name: "Hobbies", Categories: []string{"Music"}},
			},
			defaultName: "Others",
			ambiguous:   true,
			err: "Invalid category groups: " +
				`Category "Drinks" is listed in multiple groups: Living, Leisure` + "\n" +
				`Category "Music" is listed in multiple groups: Leisure, Hobbies`,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			c, err := New(tc.groups, tc.defaultName)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Equal(t, tc.err, err.Error())
			assert.Equal(t, tc.ambiguous, IsAmbiguous(err))
		})
	}
}

func TestClassify(t *testing.T) {
	c, err := New(someGroups, "Others")
	require.NoError(t, err)

	for _, tc := range []struct {
		category string
		expected string
		assigned bool
	}{
		{category: "Rent", expected: "Housing", assigned: true},
		{category: "Healthcare", expected: "Living", assigned: true},
		{category: "Cinema", expected: "Others"},
		{category: "rent", expected: "Others"},
		{category: "", expected: "Others"},
	} {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.category))
			assert.Equal(t, tc.assigned, c.Assigned(tc.category))
		})
	}
}

func TestIsAmbiguous(t *testing.T) {
	assert.False(t, IsAmbiguous(nil))
	assert.False(t, IsAmbiguous(errors.New("some error")))
	assert.True(t, IsAmbiguous(errors.Wrap(&AmbiguousCategoryError{Category: "Drinks"}, "wrapped")))
}
