package app

import "strings"

// AliasTable maps a canonical Dutch place name to its foreign spellings.
// It is injected into the search service so deployments can extend it
// without touching matcher logic.
type AliasTable map[string][]string

// Expand returns the deduplicated term set for a trimmed lowercase query:
// the query itself, plus the canonical term and all its aliases for every
// entry where the query prefixes (or is prefixed by) the canonical term
// or any alias. Prefix, not substring: "nice" must not light up via
// longer unrelated words. Partial typing still works ("wen" → "wenen").
func (t AliasTable) Expand(query string) []string {
	seen := map[string]struct{}{query: {}}
	terms := []string{query}

	add := func(s string) {
		s = strings.ToLower(s)
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		terms = append(terms, s)
	}

	for nl, aliases := range t {
		matched := prefixEither(nl, query)
		if !matched {
			for _, a := range aliases {
				if prefixEither(a, query) {
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}
		add(nl)
		for _, a := range aliases {
			add(a)
		}
	}
	return terms
}

func prefixEither(term, query string) bool {
	term = strings.ToLower(term)
	return strings.HasPrefix(term, query) || strings.HasPrefix(query, term)
}

// DefaultAliasTable covers the cities and countries Dutch agents search
// for most, with English and Spanish (and the odd local) spellings.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		// Cities
		"wenen":      {"vienna", "wien", "viena"},
		"parijs":     {"paris", "parís"},
		"londen":     {"london", "londres"},
		"berlijn":    {"berlin", "berlín"},
		"munchen":    {"munich", "münchen", "múnich"},
		"keulen":     {"cologne", "köln", "colonia"},
		"praag":      {"prague", "praha", "praga"},
		"boedapest":  {"budapest"},
		"warschau":   {"warsaw", "warszawa", "varsovia"},
		"lissabon":   {"lisbon", "lisboa"},
		"sevilla":    {"seville"},
		"athene":     {"athens", "atenas"},
		"rome":       {"roma"},
		"venetie":    {"venice", "venezia", "venecia"},
		"florence":   {"firenze", "florencia"},
		"milaan":     {"milan", "milano", "milán"},
		"napels":     {"naples", "napoli", "nápoles"},
		"turijn":     {"turin", "torino", "turín"},
		"genua":      {"genoa", "genova", "génova"},
		"brussel":    {"brussels", "bruselas"},
		"antwerpen":  {"antwerp", "amberes"},
		"geneve":     {"geneva", "genève", "ginebra"},
		"zurich":     {"zürich", "zúrich"},
		"kopenhagen": {"copenhagen", "københavn", "copenhague"},
		"moskou":     {"moscow", "moscú"},
		"istanboel":  {"istanbul", "estambul"},
		"kaapstad":   {"cape town", "ciudad del cabo"},
		"new york":   {"nueva york"},
		"nice":       {"niza"},
		"malaga":     {"málaga"},
		"cordoba":    {"córdoba"},

		// Countries
		"oostenrijk":          {"austria", "österreich"},
		"frankrijk":           {"france", "francia"},
		"spanje":              {"spain", "españa"},
		"italie":              {"italy", "italia"},
		"duitsland":           {"germany", "deutschland", "alemania"},
		"griekenland":         {"greece", "grecia"},
		"zwitserland":         {"switzerland", "suiza"},
		"noorwegen":           {"norway", "noruega"},
		"zweden":              {"sweden", "suecia"},
		"denemarken":          {"denmark", "dinamarca"},
		"hongarije":           {"hungary", "hungría"},
		"tsjechie":            {"czech republic", "czechia", "chequia"},
		"polen":               {"poland", "polonia"},
		"portugal":            {"portugal"},
		"turkije":             {"turkey", "türkiye", "turquía"},
		"kroatie":             {"croatia", "croacia"},
		"ierland":             {"ireland", "irlanda"},
		"verenigd koninkrijk": {"united kingdom", "reino unido"},
		"verenigde staten":    {"united states", "usa", "estados unidos"},
		"nederland":           {"netherlands", "holanda", "países bajos"},
		"belgie":              {"belgium", "bélgica"},
		"marokko":             {"morocco", "marruecos"},
		"egypte":              {"egypt", "egipto"},
		"zuid-afrika":         {"south africa", "sudáfrica"},
		"thailand":            {"tailandia"},
		"indonesie":           {"indonesia"},
		"japan":               {"japón"},
	}
}
