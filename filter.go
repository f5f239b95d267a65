package glyphcanvas

// FilterSymbols restricts the symbol list to the wanted names, keeping the
// order of the wanted list. Names which are not available are returned as
// missing. An empty wanted list, or one without any match, selects all the
// symbols and reports false.
func FilterSymbols(symbols []Symbol, wanted []string) (selected []Symbol, missing []string, filtered bool) {
	if len(wanted) == 0 {
		return symbols, nil, false
	}

	index := make(map[string]int, len(symbols))
	for i, s := range symbols {
		if _, ok := index[s.Name]; !ok {
			index[s.Name] = i
		}
	}

	seen := make(map[string]bool, len(wanted))
	for _, name := range wanted {
		if seen[name] {
			continue
		}
		seen[name] = true

		if i, ok := index[name]; ok {
			selected = append(selected, symbols[i])
		} else {
			missing = append(missing, name)
		}
	}

	if len(selected) == 0 {
		return symbols, missing, false
	}
	return selected, missing, true
}
