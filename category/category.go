// Package category regroups raw export categories into a small set of user-defined groups
package category

import (
	sErrors "github.com/johnstarich/spendee-sankey/errors"
	"github.com/pkg/errors"
)

// Group is a named bucket of raw category names. Raw categories become the group's subcategories.
type Group struct {
	Name       string   `mapstructure:"name"`
	Categories []string `mapstructure:"categories"`
}

// Groups is an ordered table of groups. Order is used to break ties when sorting by amount.
type Groups []Group

// Categorizer classifies raw categories into groups
type Categorizer struct {
	groups       Groups
	defaultGroup string
	membership   map[string]string
}

// New validates groups and returns a Categorizer. Categories not found in any group are classified as defaultGroup.
func New(groups Groups, defaultGroup string) (*Categorizer, error) {
	if err := validate(groups, defaultGroup); err != nil {
		return nil, err
	}
	membership := make(map[string]string)
	for _, group := range groups {
		for _, category := range group.Categories {
			membership[category] = group.Name
		}
	}
	return &Categorizer{
		groups:       groups,
		defaultGroup: defaultGroup,
		membership:   membership,
	}, nil
}

func validate(groups Groups, defaultGroup string) error {
	var errs sErrors.Errors
	errs.ErrIf(defaultGroup == "", "Default group name must not be empty")

	groupNames := make(map[string]bool, len(groups))
	categoryGroups := make(map[string][]string)
	var categoryOrder []string
	for _, group := range groups {
		switch {
		case errs.ErrIf(group.Name == "", "Group names must not be empty"):
		case errs.ErrIf(groupNames[group.Name], "Duplicate group name: %q", group.Name):
		case errs.ErrIf(group.Name == defaultGroup, "Group %q has the same name as the default group", group.Name):
		}
		groupNames[group.Name] = true

		for _, category := range group.Categories {
			if errs.ErrIf(category == "", "Group %q contains an empty category name", group.Name) {
				continue
			}
			if _, seen := categoryGroups[category]; !seen {
				categoryOrder = append(categoryOrder, category)
			}
			categoryGroups[category] = append(categoryGroups[category], group.Name)
		}
	}

	for _, category := range categoryOrder {
		owners := categoryGroups[category]
		if len(owners) > 1 {
			errs.AddErr(&AmbiguousCategoryError{Category: category, Groups: owners})
		}
		errs.ErrIf(groupNames[category], "Category %q conflicts with a group of the same name", category)
		errs.ErrIf(category == defaultGroup, "Category %q conflicts with the default group", category)
	}
	return errors.Wrap(errs.ErrOrNil(), "Invalid category groups")
}

// Classify returns the name of the group containing category, or the default group if none do
func (c *Categorizer) Classify(category string) string {
	if group, ok := c.membership[category]; ok {
		return group
	}
	return c.defaultGroup
}

// Assigned returns true if category is explicitly listed in a configured group
func (c *Categorizer) Assigned(category string) bool {
	_, ok := c.membership[category]
	return ok
}

// Groups returns the configured groups, excluding the default group
func (c *Categorizer) Groups() Groups {
	return c.groups
}

// DefaultGroup returns the overflow group's name
func (c *Categorizer) DefaultGroup() string {
	return c.defaultGroup
}
