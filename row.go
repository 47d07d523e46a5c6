package cqlstream

import (
	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/types"
)

// materializeRow converts one scanned row into a record.
//
// Columns follow the result set's schema order, not the map order, so every
// record of a query carries the same column sequence. A column absent from
// the row map is a null cell. A single cell conversion failure fails the
// whole row with a *types.RowError naming the column.
func materializeRow(row map[string]any, cols []cql.ColumnInfo) (*types.Record, error) {
	rec := types.NewRecord(len(cols))
	for _, col := range cols {
		cell := TypedCell{Type: col.Type}
		if v, ok := row[col.Name]; ok {
			cell.Value = v
		}

		converted, err := Convert(cell)
		if err != nil {
			return nil, &types.RowError{Column: col.Name, Cause: err}
		}
		rec.Append(col.Name, converted)
	}

	return rec, nil
}
