package coaching

// KPIs holds the four tracked service-department metrics. Every field is
// optional: a nil pointer means the upstream account exposed no usable value,
// which is distinct from zero.
type KPIs struct {
	ActiveConversation            *float64
	TotalMPISent                  *float64
	ClosedROsWithTechVideoPercent *float64
	InspectionsCompletedPercent   *float64
}

// Alias lists for each KPI, in preference order. Stores were provisioned at
// different times with different Vitally trait names, so each metric is looked
// up under every name it has been seen with. The order is part of the
// contract: earlier names are the preferred source of truth.
//
// vitally.custom.mpiMade30Day appears for both Total MPIs and Inspections
// Completed; that mirrors the upstream mapping as observed and must not be
// "corrected" here without confirmation from the Vitally side.
var (
	activeConversationAliases = []string{
		"Active Conversation %",
		"vitally.custom.activeConversation",
		"bigquery.ActiveConversation",
	}

	totalMPISentAliases = []string{
		"MPI Sent %",
		"MPI Sent % ",
		"vitally.custom.mpiMade30Day",
		"Total MPIs Sent",
	}

	techVideoAliases = []string{
		"Closed ROs TV Made %",
		"vitally.custom.techVideoMade30Day",
		"Closed ROs w/ Tech Video (%)",
	}

	inspectionsCompletedAliases = []string{
		"% of ROs w MPI Completed",
		"MPI Completed to Made %",
		"vitally.custom.mpiMade30Day",
		"Inspections Completed (%)",
	}
)

// resolveKPIs maps the untyped account payload onto the four KPIs.
func resolveKPIs(source map[string]any) *KPIs {
	return &KPIs{
		ActiveConversation:            firstAliasValue(source, activeConversationAliases),
		TotalMPISent:                  firstAliasValue(source, totalMPISentAliases),
		ClosedROsWithTechVideoPercent: firstAliasValue(source, techVideoAliases),
		InspectionsCompletedPercent:   firstAliasValue(source, inspectionsCompletedAliases),
	}
}

// firstAliasValue walks the alias list left to right and returns the first
// value that normalizes to a number. Keys holding nil or an empty string are
// skipped so a later alias can still supply the metric.
func firstAliasValue(source map[string]any, aliases []string) *float64 {
	for _, alias := range aliases {
		raw, ok := source[alias]
		if !ok || raw == nil || raw == "" {
			continue
		}

		if value := normalizeValue(raw); value != nil {
			return value
		}
	}

	return nil
}
