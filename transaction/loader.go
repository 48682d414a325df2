package transaction

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Column names required in a transaction export
const (
	ColumnType     = "Category Type"
	ColumnCategory = "Category Name"
	ColumnAmount   = "Amount"
)

var requiredColumns = []string{ColumnType, ColumnCategory, ColumnAmount}

const byteOrderMark = "\ufeff"

type loaderOptions struct {
	delimiter rune
}

// Option customizes how NewFromReader parses its input
type Option func(*loaderOptions)

// Delimiter sets the field separator. Defaults to ','
func Delimiter(r rune) Option {
	return func(o *loaderOptions) {
		o.delimiter = r
	}
}

// NewFromReader reads a delimited export with a header row. Only the category type, category name, and amount columns are kept.
func NewFromReader(reader io.Reader, opts ...Option) (Transactions, error) {
	options := loaderOptions{delimiter: ','}
	for _, opt := range opts {
		opt(&options)
	}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = options.delimiter
	csvReader.FieldsPerRecord = -1
	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, &MissingColumnError{Columns: requiredColumns}
	}
	if err != nil {
		return nil, errors.Wrap(err, "Error reading header")
	}

	indexes, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}
	typeIndex, categoryIndex, amountIndex := indexes[0], indexes[1], indexes[2]
	maxIndex := typeIndex
	for _, ix := range indexes {
		if ix > maxIndex {
			maxIndex = ix
		}
	}

	var txns Transactions
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "Error reading record")
		}
		line, _ := csvReader.FieldPos(0)
		if len(record) <= maxIndex {
			return nil, newRowError(line, errors.Errorf("Expected at least %d fields, found %d", maxIndex+1, len(record)))
		}

		txnType, err := ParseType(record[typeIndex])
		if err != nil {
			return nil, newRowError(line, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(record[amountIndex]))
		if err != nil {
			return nil, newRowError(line, errors.Wrapf(err, "Invalid amount %q", record[amountIndex]))
		}
		txns = append(txns, Transaction{
			Type:     txnType,
			Category: record[categoryIndex],
			Amount:   amount,
		})
	}
	return txns, nil
}

// columnIndexes returns the index of each required column, in requiredColumns order
func columnIndexes(header []string) ([]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		name = strings.TrimSpace(name)
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	indexes := make([]int, 0, len(requiredColumns))
	var missing []string
	for _, column := range requiredColumns {
		ix, ok := positions[column]
		if !ok {
			missing = append(missing, column)
			continue
		}
		indexes = append(indexes, ix)
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}
	return indexes, nil
}
