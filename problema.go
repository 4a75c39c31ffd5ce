/*
Package problema implements the Problema cipher, a pedagogical symmetric
encryption primitive combining an Enigma-style rotor machine operating over
the Unicode Basic Multilingual Plane with a reduced AES-flavored block
permutation, chained through an output-feedback mechanism. The library
features:

  - A pure Go implementation enabling code-simplicity and easy builds.
  - Character-mode encryption of UTF-8 text preserving the character count.
  - A block mode exposing the reduced AES permutation for 16-byte blocks.

Problema was designed as a teaching exercise for security undergraduates and
is NOT a secure cipher. It must never be used to protect real data; the
implementation intentionally preserves the reference algorithm bit-for-bit,
including its known weaknesses, so that ciphertexts remain interoperable.
*/
package problema
