// Package codec converts typed preference values to and from their text
// tokens.
//
// Scalars (bool, int32, float32, string) are written in a culture-invariant
// form. Sequences are the element tokens joined by the registry delimiter.
// Ciphertext is written as the decimal value of every byte joined by the
// same delimiter.
//
// String elements are not escaped: a string containing the delimiter splits
// into several elements when a sequence is decoded. Existing saved data
// depends on this layout so it is kept as is.
package codec
