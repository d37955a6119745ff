// Package der implements the small subset of ASN.1 DER (ITU-T X.690) needed to
// move an RSA public key between its PKCS#1 and X.509 encodings.
//
// It is a tag-length-value codec, not a general ASN.1 library. Values are
// opaque byte runs; the package only knows how to put a header around content
// and how to take it off again.
//
// # Writing
//
// A Writer builds an encoding inside out. Content is written first and then
// wrapped; each WriteBytes or Wrap call lands in front of the bytes already
// written:
//
//	w := der.NewWriter()
//	w.WriteBytes(inner)        // inner
//	w.WrapBitString()          // 03 len 00 inner
//	w.WriteBytes(sibling)      // sibling 03 len 00 inner
//	w.Wrap(der.TagSequence)    // 30 len sibling 03 len 00 inner
//	out := w.Bytes()
//
// Lengths are always written in minimal form. Writer operations cannot fail.
//
// # Reading
//
// A Reader walks an encoding from the front with a cursor that never moves
// backwards. Unwrap checks a tag and steps over its header, Skip matches a
// literal run of bytes and ReadContentsOfBitString returns the byte-aligned
// payload of a BIT STRING. A failing call returns one of the typed errors in
// this package and leaves the cursor untouched.
//
// The Reader is strict: indefinite lengths, long form lengths that could have
// been short, and long form lengths with leading zero bytes are rejected.
package der
