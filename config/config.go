// Package config loads the category groups and node labels used to build flows
package config

import (
	"github.com/johnstarich/spendee-sankey/category"
	sErrors "github.com/johnstarich/spendee-sankey/errors"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the static configuration for a run
type Config struct {
	DefaultGroup    string          `mapstructure:"default_group"`
	SavingsCategory string          `mapstructure:"savings_category"`
	Groups          category.Groups `mapstructure:"groups"`
	IncomeRenames   []Rename        `mapstructure:"income_renames"`
	Nodes           Nodes           `mapstructure:"nodes"`
}

// Rename relabels an income category that an expense category also uses.
// Stored as a list of from/to pairs since viper lower-cases map keys, which would break case-sensitive category names.
type Rename struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Nodes are the labels of the fixed nodes in the flow graph
type Nodes struct {
	Income   string `mapstructure:"income"`
	Savings  string `mapstructure:"savings"`
	Expenses string `mapstructure:"expenses"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DefaultGroup:    "Others",
		SavingsCategory: "Savings",
		Groups: category.Groups{
			{Name: "Housing", Categories: []string{"Rent", "Utilities"}},
			{Name: "Living", Categories: []string{"Groceries", "Healthcare", "Clothing"}},
			{Name: "Leisure", Categories: []string{"Entertainment", "Brewing", "Music", "Reading", "Drinks", "Take Away & Restaurant", "Cinema"}},
		},
		IncomeRenames: []Rename{
			{From: "Gifts", To: "Gifted"},
		},
		Nodes: Nodes{
			Income:   "Income",
			Savings:  "Savings",
			Expenses: "Expenses",
		},
	}
}

// Load reads the config file at path. The file type is detected from its extension.
// Settings missing from the file fall back to Default. An empty path returns Default.
func Load(path string) (*Config, error) {
	defaults := Default()
	if path == "" {
		return defaults, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("default_group", defaults.DefaultGroup)
	v.SetDefault("savings_category", defaults.SavingsCategory)
	v.SetDefault("nodes.income", defaults.Nodes.Income)
	v.SetDefault("nodes.savings", defaults.Nodes.Savings)
	v.SetDefault("nodes.expenses", defaults.Nodes.Expenses)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "Failed to read config file '%s'", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse config file '%s'", path)
	}
	if cfg.Groups == nil {
		cfg.Groups = defaults.Groups
	}
	if cfg.IncomeRenames == nil {
		cfg.IncomeRenames = defaults.IncomeRenames
	}
	if err := validateRenames(cfg.IncomeRenames); err != nil {
		return nil, errors.Wrapf(err, "Invalid income_renames in config file '%s'", path)
	}
	return &cfg, nil
}

func validateRenames(renames []Rename) error {
	var errs sErrors.Errors
	seen := make(map[string]bool, len(renames))
	for i, rename := range renames {
		if errs.ErrIf(rename.From == "" || rename.To == "", "Rename #%d must set both 'from' and 'to'", i+1) {
			continue
		}
		errs.ErrIf(seen[rename.From], "Duplicate rename for %q", rename.From)
		seen[rename.From] = true
	}
	return errs.ErrOrNil()
}

// RenameMap returns IncomeRenames keyed by the original category name
func (c *Config) RenameMap() map[string]string {
	renames := make(map[string]string, len(c.IncomeRenames))
	for _, rename := range c.IncomeRenames {
		renames[rename.From] = rename.To
	}
	return renames
}

// Categorizer validates the configured groups and returns a Categorizer for them
func (c *Config) Categorizer() (*category.Categorizer, error) {
	return category.New(c.Groups, c.DefaultGroup)
}
