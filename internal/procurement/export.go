package procurement

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// WriteCSV renders a result as the order sheet handed to suppliers.
// Row order matches Result.Items, so output is deterministic.
func WriteCSV(result *Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"ingredient",
		"unit",
		"storage",
		"planned_amount",
		"order_amount",
		"in_stock",
		"unit_cost",
		"subtotal",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, item := range result.Items {
		row := []string{
			item.Name,
			item.Unit,
			item.StorageType,
			formatAmount(item.PlannedAmount),
			formatAmount(item.OrderAmount),
			strconv.FormatBool(item.InStock),
			formatAmount(item.UnitCost),
			formatAmount(item.Subtotal),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	totalRow := []string{"TOTAL", "", "", "", "", "", "", formatAmount(result.TotalCost)}
	if err := w.Write(totalRow); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
