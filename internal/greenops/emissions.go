package greenops

// EmissionOf returns value multiplied by the factor for t, in kg CO2e.
func EmissionOf(t ActivityType, value float64) float64 {
	return value * t.Factor()
}

// CalculateTotal sums the emissions of every activity, in kg CO2e.
// An empty or nil slice totals zero.
func CalculateTotal(activities []Activity) float64 {
	var total float64
	for _, a := range activities {
		total += EmissionOf(a.Type, a.Value)
	}
	return total
}

// QuantitiesByType sums reported quantity per activity type.
// Every type in the table has an entry, zero when unreported.
func QuantitiesByType(activities []Activity) map[ActivityType]float64 {
	totals := make(map[ActivityType]float64, len(activityTable))
	for _, spec := range activityTable {
		totals[spec.typ] = 0
	}
	for _, a := range activities {
		totals[a.Type] += a.Value
	}
	return totals
}

// Breakdown aggregates activities per type in table order.
// Types with no reported quantity are omitted.
func Breakdown(activities []Activity) []TypeEmission {
	quantities := QuantitiesByType(activities)

	rows := make([]TypeEmission, 0, len(activityTable))
	for _, spec := range activityTable {
		q := quantities[spec.typ]
		if q == 0 {
			continue
		}
		rows = append(rows, TypeEmission{
			Type:      spec.typ,
			Label:     spec.label,
			Quantity:  q,
			Unit:      spec.unit,
			Emissions: q * spec.factor,
		})
	}
	return rows
}

// ClassifyImpact rates a daily total.
func ClassifyImpact(totalKg float64) ImpactLevel {
	switch {
	case totalKg < ImpactMediumThresholdKg:
		return ImpactLow
	case totalKg < ImpactHighThresholdKg:
		return ImpactMedium
	default:
		return ImpactHigh
	}
}
