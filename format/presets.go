package format

import (
	"fmt"
	"strings"
)

// Built-in rank list presets. Order list entries of the form "@name"
// expand to these, so common orderings do not have to be spelled out
// IRI by IRI.
var (
	predicatePresets = map[string][]string{
		"ontology": {
			"http://www.w3.org/1999/02/22-rdf-syntax-ns#type",
			"http://www.w3.org/2000/01/rdf-schema#label",
			"http://www.w3.org/2000/01/rdf-schema#comment",
		},
	}
	subjectTypePresets = map[string][]string{
		"ontology": {
			"http://www.w3.org/2002/07/owl#Ontology",
			"http://www.w3.org/2002/07/owl#Class",
			"http://www.w3.org/2000/01/rdf-schema#Class",
			"http://www.w3.org/2002/07/owl#ObjectProperty",
			"http://www.w3.org/2002/07/owl#DatatypeProperty",
			"http://www.w3.org/2002/07/owl#AnnotationProperty",
			"http://www.w3.org/2002/07/owl#NamedIndividual",
		},
	}
)

// ExpandPredicateOrder replaces "@name" preset references in a
// predicate order list. User-defined presets take precedence over the
// built-in ones; an unknown preset name is a configuration error.
func ExpandPredicateOrder(entries []string, custom map[string][]string) ([]string, error) {
	return expandOrder(entries, predicatePresets, custom)
}

// ExpandSubjectTypeOrder replaces "@name" preset references in a
// subject type order list.
func ExpandSubjectTypeOrder(entries []string, custom map[string][]string) ([]string, error) {
	return expandOrder(entries, subjectTypePresets, custom)
}

func expandOrder(entries []string, builtin, custom map[string][]string) ([]string, error) {
	var out []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry, "@") {
			out = append(out, entry)
			continue
		}
		name := entry[1:]
		if list, ok := custom[name]; ok {
			out = append(out, list...)
			continue
		}
		if list, ok := builtin[name]; ok {
			out = append(out, list...)
			continue
		}
		return nil, fmt.Errorf("unknown rank list preset %q", name)
	}
	return out, nil
}
