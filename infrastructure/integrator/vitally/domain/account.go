package vitallydomain

// Account is one dealership account as returned by the Vitally REST API. The
// payload has no fixed schema: KPI fields may live under traits, customFields
// or at the top level, so everything is kept as a generic map.
type Account struct {
	Name   string
	Fields map[string]any
}

// KPISource selects the sub-object to scan for KPI fields: a non-empty traits
// mapping wins, then customFields, then the whole payload.
func (a *Account) KPISource() map[string]any {
	if traits := subMapping(a.Fields, "traits"); len(traits) > 0 {
		return traits
	}

	if customFields := subMapping(a.Fields, "customFields"); len(customFields) > 0 {
		return customFields
	}

	return a.Fields
}

func subMapping(fields map[string]any, key string) map[string]any {
	value, ok := fields[key]
	if !ok {
		return nil
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	return mapping
}
