package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV loads a regression dataset from a CSV file.
// targetCols specifies the indices of columns to be used as targets, in
// that order; negative indices count from the last column. All other
// columns are used as inputs.
// hasHeader skips the first line if true.
func LoadCSV(filename string, targetCols []int, hasHeader bool) (*Dataset, error) {
	records, err := readRecords(filename, hasHeader)
	if err != nil {
		return nil, err
	}

	numCols := len(records[0])
	cols := make([]int, len(targetCols))
	isTarget := make(map[int]bool, len(targetCols))
	for i, col := range targetCols {
		c, err := column(col, numCols)
		if err != nil {
			return nil, err
		}
		cols[i] = c
		isTarget[c] = true
	}

	d := New(numCols-len(isTarget), len(targetCols))
	for i, record := range records {
		values, err := parseRow(record, numCols, i)
		if err != nil {
			return nil, err
		}

		input := make([]float64, 0, d.inputDims)
		for j, v := range values {
			if !isTarget[j] {
				input = append(input, v)
			}
		}
		target := make([]float64, 0, len(cols))
		for _, col := range cols {
			target = append(target, values[col])
		}
		if err := d.Add(input, target); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return d, nil
}

// LoadClassificationCSV loads a classification dataset whose labelCol holds
// a 1-based integer class label. Targets are one-hot over numClasses.
// A negative labelCol counts from the last column.
func LoadClassificationCSV(filename string, labelCol, numClasses int, hasHeader bool) (*Dataset, error) {
	records, err := readRecords(filename, hasHeader)
	if err != nil {
		return nil, err
	}

	numCols := len(records[0])
	labelCol, err = column(labelCol, numCols)
	if err != nil {
		return nil, err
	}

	d := NewClassification(numCols-1, numClasses)
	for i, record := range records {
		values, err := parseRow(record, numCols, i)
		if err != nil {
			return nil, err
		}
		input := make([]float64, 0, numCols-1)
		input = append(input, values[:labelCol]...)
		input = append(input, values[labelCol+1:]...)
		if err := d.AddLabeled(input, int(values[labelCol])); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return d, nil
}

func column(col, numCols int) (int, error) {
	c := col
	if c < 0 {
		c += numCols
	}
	if c < 0 || c >= numCols {
		return 0, fmt.Errorf("column %d out of range for %d columns", col, numCols)
	}
	return c, nil
}

func readRecords(filename string, hasHeader bool) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parseRecords(file, hasHeader)
}

func parseRecords(r io.Reader, hasHeader bool) ([][]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}
	if hasHeader {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file has no data rows")
	}
	return records, nil
}

func parseRow(record []string, numCols, row int) ([]float64, error) {
	if len(record) != numCols {
		return nil, fmt.Errorf("inconsistent number of columns at row %d", row)
	}
	values := make([]float64, numCols)
	for j, s := range record {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", row, j, err)
		}
		values[j] = v
	}
	return values, nil
}
