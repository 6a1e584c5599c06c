package store

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}

// showOrder is the single ordering rule for every show listing:
// explicit season sort first, then start date, with shows lacking
// both last in ingestion order.
const showOrder = ` ORDER BY (season_sort IS NULL), season_sort, (date_start IS NULL), date_start, rowid`
