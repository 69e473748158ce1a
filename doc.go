// Package huffpack implements a lossless byte-stream compressor built on
// Huffman coding.
//
// A compressed stream is self-describing.  It consists of:
//
//     32 bits    magic number 0xface8201
//     variable   the Huffman tree in preorder: an internal node is a 0 bit
//                followed by its left and right subtrees, a leaf is a 1 bit
//                followed by its 9-bit symbol
//     variable   the code of each input byte, concatenated
//     variable   the code of the EndOfStream symbol (256)
//
// followed by zero bits up to the next byte boundary.  Bits are packed most
// significant first, using github.com/icza/bitio.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
