package corpus

import porterstemmer "github.com/blevesearch/go-porterstemmer"

// Reference stems word with the blevesearch Porter implementation, the one
// bleve's "stemmer_porter" filter uses. It follows Porter's paper, without
// the -bli and -logi rules of the reference C version, so expect a handful
// of disagreements on real corpora.
func Reference(word string) string {
	return porterstemmer.StemString(word)
}
