package sprite

// Image dimensions. Length is derived so the array literal below cannot
// drift out of step with the declared size without a compile error.
const (
	Width     = 16
	Height    = 24
	PixelSize = 1
	Length    = Width * Height * PixelSize
)

// Image holds the sample sprite shipped with the tool, stored as raw
// 8-bit grayscale in row-major order.
var Image = [Length]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x95, 0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x8f, 0x92, 0x92, 0xf9, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xfa, 0x91, 0x9c, 0x93, 0x92, 0xfe, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xfd, 0x99, 0x93, 0x95, 0x97, 0x94, 0x94, 0xfd, 0xfd, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xfe, 0x91, 0x94, 0x94, 0x93, 0x98, 0x94, 0x9a, 0x99, 0xfe, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xfd, 0x99, 0x91, 0x90, 0x98, 0xfe, 0xfe, 0xfe, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xee, 0x9b, 0x9c, 0x94, 0x90, 0x99, 0x9a, 0xfd, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0x93, 0x93, 0x9a, 0x9a, 0x94, 0x94, 0x9a, 0x8f, 0x90, 0xfc, 0xff, 0xff, 0xff,
	0xfb, 0xff, 0xfb, 0x98, 0x91, 0x93, 0x9a, 0x8f, 0x9d, 0x97, 0x94, 0x8f, 0x98, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xfb, 0x93, 0x93, 0x8e, 0x94, 0x98, 0x8e, 0xfb, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xfe, 0x93, 0x98, 0x97, 0x95, 0x96, 0x9c, 0x95, 0x9b, 0xfc, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xfe, 0x95, 0x90, 0x96, 0x99, 0x97, 0x95, 0x9c, 0x94, 0x98, 0x90, 0xff, 0xff, 0xff,
	0xff, 0xfd, 0x9e, 0x9b, 0x8f, 0x90, 0x9e, 0x9d, 0x97, 0x9c, 0x93, 0x95, 0x98, 0x95, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xfd, 0x90, 0x98, 0x9c, 0x9c, 0x9c, 0x98, 0xfa, 0xfd, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xac, 0x98, 0x9c, 0x9c, 0x9c, 0x9c, 0x9c, 0x94, 0x95, 0xfc, 0xff, 0xff, 0xff,
	0xff, 0xfe, 0x96, 0x8f, 0x91, 0x99, 0x97, 0x92, 0x99, 0x99, 0x92, 0x96, 0x98, 0xb1, 0xff, 0xff,
	0xff, 0x93, 0x98, 0x94, 0x93, 0x98, 0x99, 0x97, 0x99, 0x9c, 0x97, 0x9a, 0x9c, 0x8b, 0x89, 0xff,
	0xff, 0xfe, 0xfe, 0xff, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfd, 0xfe, 0xff, 0xfe, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xa7, 0xa7, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x99, 0x99, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xb1, 0xa9, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xb0, 0xb1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xb6, 0xb1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xb6, 0xb1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xb1,
}
