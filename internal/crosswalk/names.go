package crosswalk

import "strings"

// Tokens dropped during name normalization. Candidate-format names carry
// honorifics and credentials inconsistently across cycles.
var (
	honorifics = map[string]bool{
		"MR": true, "MRS": true, "MS": true, "DR": true, "HON": true,
		"SEN": true, "SENATOR": true, "REP": true, "REPRESENTATIVE": true,
	}
	nameSuffixes = map[string]bool{
		"JR": true, "SR": true, "II": true, "III": true, "IV": true, "V": true,
	}
	credentials = map[string]bool{
		"MD": true, "PHD": true, "DDS": true, "DVM": true, "ESQ": true,
		"CPA": true, "JD": true, "RN": true, "MBA": true,
	}
)

// Name is a normalized person name used for fallback matching
type Name struct {
	First string
	Last  string
}

// ParseName normalizes either candidate format ("LAST, FIRST MIDDLE") or
// natural format ("FIRST MIDDLE LAST") into upper-cased first/last parts.
func ParseName(raw string) Name {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return Name{}
	}

	var first, last string
	if comma := strings.Index(raw, ","); comma >= 0 {
		last = raw[:comma]
		rest := cleanTokens(raw[comma+1:])
		if len(rest) > 0 {
			first = rest[0]
		}
		lastTokens := cleanTokens(last)
		last = strings.Join(lastTokens, " ")
	} else {
		tokens := cleanTokens(raw)
		if len(tokens) == 1 {
			last = tokens[0]
		} else if len(tokens) > 1 {
			first = tokens[0]
			last = tokens[len(tokens)-1]
		}
	}

	return Name{First: first, Last: last}
}

// cleanTokens splits a name fragment and drops honorifics, generational
// suffixes, and professional credentials.
func cleanTokens(fragment string) []string {
	fields := strings.FieldsFunc(fragment, func(r rune) bool {
		return r == ' ' || r == '.' || r == ','
	})

	var tokens []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if honorifics[f] || nameSuffixes[f] || credentials[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// firstNameCompatible reports whether two first names plausibly refer to the
// same person: exact, one a prefix of the other (DAN/DANIEL), or a shared
// first initial. The bare-initial rule is permissive; kept as-is pending a
// precision/recall decision.
func firstNameCompatible(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		return true
	}
	return a[0] == b[0]
}

// sameDistrict compares district designators ignoring leading zeros
func sameDistrict(a, b string) bool {
	return strings.TrimLeft(a, "0") == strings.TrimLeft(b, "0")
}
