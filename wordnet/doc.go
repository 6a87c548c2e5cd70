// Package wordnet indexes a WordNet-style noun hierarchy and answers
// semantic-relatedness queries on it through the sap engine.
//
// Inputs
//
//	synsets:   one synonym set per line, "id,noun1 noun2 ...,gloss".
//	           Ids are consecutive from 0. The gloss may itself contain commas.
//	hypernyms: "id,parent1,parent2,..." per line. A line holding only "id",
//	           or no line at all, means the synset has no parent.
//
// Edges point from a synset to each of its hypernyms, so the hierarchy must
// be a rooted DAG: exactly one synset without hypernyms and no cycles.
// Construction fails with ErrNotRooted or ErrCycle otherwise.
//
// Queries
//
//   - IsNoun(noun), Nouns():     membership and the sorted noun list.
//   - Distance(a, b):            length of the shortest ancestral path between
//     any synset of a and any synset of b.
//   - SAP(a, b):                 the synset (its noun field) that is the common
//     ancestor on such a path.
//
// A noun may belong to several synsets ("table" the furniture and "table"
// the array); queries consider all of them at once.
//
// Loading
//
//	New parses two io.Readers. Load opens two files concurrently and
//	transparently decompresses names ending in ".gz".
//
// Concurrency
//
//	A *WordNet is immutable after construction and safe for concurrent use;
//	the underlying engine serialises its searches.
package wordnet
