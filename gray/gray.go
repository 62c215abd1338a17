/*
Package gray implements an encoder and decoder for raw 8-bit grayscale
pixel buffers.

The format is a headerless dump of one intensity byte per pixel in
row-major order; each row is contiguous and rows are concatenated top to
bottom. A buffer for a width by height image is therefore exactly
width * height bytes. Because there is no header the dimensions must be
supplied out of band when decoding.
*/
package gray
