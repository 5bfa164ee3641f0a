package ingredient

// aliases maps normalized synonyms to a single canonical term. The table
// is static configuration; extending it is a data-maintenance concern.
var aliases = map[string]string{
	"scallion":     "green onion",
	"scallions":    "green onion",
	"spring onion": "green onion",
	"cilantro":     "coriander",
	"chickpea":     "garbanzo bean",
	"chickpeas":    "garbanzo bean",
}

// Canonical normalizes raw and resolves it through the alias table. When
// no alias entry exists the normalized key is returned unchanged.
func Canonical(raw string) string {
	normalized := Normalize(raw)
	if canonical, ok := aliases[normalized]; ok {
		return canonical
	}
	return normalized
}
