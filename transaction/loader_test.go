package transaction

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spendeeExport = `Date,Wallet,Category Type,Category Name,Amount,Currency,Note,Labels,Author
2019-01-31T09:00:00+00:00,Main,income,Salary,1000,EUR,,,Jane
2019-02-01T10:00:00+00:00,Main,expense,Rent,-300,EUR,"flat, monthly",,Jane
2019-02-02T10:00:00+00:00,Main,expense,Savings,-100.25,EUR,,,Jane
`

func TestNewFromReader(t *testing.T) {
	txns, err := NewFromReader(strings.NewReader(spendeeExport))
	require.NoError(t, err)
	assert.Equal(t, Transactions{
		{Type: Income, Category: "Salary", Amount: dec("1000")},
		{Type: Expense, Category: "Rent", Amount: dec("-300")},
		{Type: Expense, Category: "Savings", Amount: dec("-100.25")},
	}, txns)
}

func TestNewFromReaderOptions(t *testing.T) {
	input := "\ufeffCategory Type ;Amount; Category Name\nexpense;-4.20;Drinks\n"
	txns, err := NewFromReader(strings.NewReader(input), Delimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, Transactions{
		{Type: Expense, Category: "Drinks", Amount: dec("-4.20")},
	}, txns)
}

func TestNewFromReaderErrors(t *testing.T) {
	for _, tc := range []struct {
		description string
		input       string
		format      bool
		err         string
	}{
		{
			description: "empty input",
			input:       "",
			format:      true,
			err:         "Missing required columns: Category Type, Category Name, Amount",
		},
		{
			description: "missing amount",
			input:       "Category Type,Category Name\nincome,Salary\n",
			format:      true,
			err:         "Missing required columns: Amount",
		},
		{
			description: "bad category type",
			input:       "Category Type,Category Name,Amount\ntransfer,Savings,10\n",
			format:      true,
			err:         `Invalid record on line 2: Unrecognized category type: "transfer"`,
		},
		{
			description: "bad amount",
			input:       "Category Type,Category Name,Amount\nincome,Salary,10\nexpense,Rent,lots\n",
			format:      true,
			err:         `Invalid record on line 3: Invalid amount "lots"`,
		},
		{
			description: "short record",
			input:       "Category Type,Category Name,Amount\nincome,Salary\n",
			format:      true,
			err:         "Invalid record on line 2: Expected at least 3 fields, found 2",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			_, err := NewFromReader(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
			assert.Equal(t, tc.format, IsFormatError(err))
		})
	}
}

func TestIsFormatError(t *testing.T) {
	assert.False(t, IsFormatError(nil))
	assert.False(t, IsFormatError(errors.New("some error")))
	assert.True(t, IsFormatError(errors.Wrap(&MissingColumnError{Columns: []string{ColumnAmount}}, "wrapped")))
}

func TestNewRowError(t *testing.T) {
	assert.NoError(t, newRowError(1, nil))
	err := newRowError(4, errors.New("bad cell"))
	require.Error(t, err)
	assert.Equal(t, "Invalid record on line 4: bad cell", err.Error())
}
