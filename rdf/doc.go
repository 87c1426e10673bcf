// Package rdf provides a compact RDF model and a Turtle reader geared
// towards formatting.
//
// Unlike a general purpose store, parsing here keeps everything a
// pretty-printer needs beyond the triples themselves: the declared
// prefixes and base, the order subjects first appeared in and the
// order blank nodes first appeared in object position. ParseTurtle
// returns all of that as an Input.
//
// The model is deliberately small. Term is implemented by IRI,
// BlankNode, Literal and TripleTerm; the last one carries RDF-star
// quoted triples in subject or object position. Graph deduplicates
// triples and indexes them by subject and by predicate-object pair.
//
// Canonicalize relabels blank nodes deterministically from the graph
// structure, so two inputs differing only in blank node labels
// serialize identically.
package rdf
