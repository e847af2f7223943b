// Package query parses the search-box syntax shared by the marketplace
// and installed listings: free text mixed with name:value attribute
// filters, where a leading '-' inverts the filter's polarity.
package query

import "strings"

// Sink receives one callback per recognized name:value attribute token.
// The marketplace and installed interpreters both implement it.
type Sink interface {
	HandleAttribute(name, value string, invert bool)
}

// SplitQuery breaks a raw query into word tokens. Quoted phrases become a
// single token with the quotes stripped; an unterminated quote ends the
// scan and the remainder is dropped. A token terminated by a colon keeps
// the colon, marking it as an attribute name for the parser.
func SplitQuery(query string) []string {
	var words []string

	length := len(query)
	index := 0

	for index < length {
		startCh := query[index]
		index++
		if startCh == ' ' {
			continue
		}
		if startCh == '"' {
			end := strings.IndexByte(query[index:], '"')
			if end == -1 {
				break
			}
			words = append(words, query[index:index+end])
			index += end + 1
			continue
		}

		start := index - 1
		for index < length && query[index] != ' ' && query[index] != ':' {
			index++
		}
		if index < length && query[index] == ':' {
			index++ // keep the colon in the token
			words = append(words, query[start:index])
		} else {
			words = append(words, query[start:index])
			index++ // past the space (harmless at end of string)
		}
	}

	// Nothing scanned out of a non-empty input (all spaces, or one big
	// unterminated quote): hand back the whole input as a single token.
	if len(words) == 0 && length > 0 {
		words = append(words, query)
	}

	return words
}

// Parse walks the token stream of raw, dispatching every name:value pair
// to sink and returning the free-text remainder. ok reports whether any
// free text was found.
//
// A lone token is always free text, whatever its shape. With two or more
// tokens, an attribute name missing its value or a second free-text word
// makes the query ambiguous and the whole raw string is returned instead.
// Attribute events already dispatched before such a fallback are not
// rolled back; only the free-text result degrades.
func Parse(raw string, sink Sink) (search string, ok bool) {
	words := SplitQuery(raw)
	size := len(words)

	if size == 0 {
		return "", false
	}
	if size == 1 {
		return words[0], true
	}

	index := 0
	for index < size {
		name := words[index]
		index++
		if strings.HasSuffix(name, ":") {
			if index >= size {
				// Attribute name with no value: unparseable.
				return raw, true
			}
			invert := strings.HasPrefix(name, "-")
			name = strings.TrimSuffix(name, ":")
			if invert {
				name = name[1:]
			}
			sink.HandleAttribute(name, words[index], invert)
			index++
		} else if !ok {
			search, ok = name, true
		} else {
			// Second free-text word: ambiguous, degrade to the raw input.
			return raw, true
		}
	}

	return search, ok
}
