package gridmap

// GrayAverage converts a 3-channel sample to a single gray value by
// unweighted channel averaging: (c0 + c1 + c2) / 3 with integer division.
// The division truncates toward zero rather than rounding, which biases
// results slightly low; this matches the historical behavior callers depend
// on and is kept deliberately. The sum fits an int (max 765), so no overflow
// is possible, and the function is total: every input yields a value in
// [0, 255] with a nil error.
//
// This is NOT a luma conversion; see GrayLuma for perceptual weighting.
func GrayAverage(px Sample3) (Sample1, error) {
	sum := int(px[0]) + int(px[1]) + int(px[2])
	return Sample1(sum / 3), nil
}

// GrayLuma converts an RGB sample to gray using BT.601 luma weights
// (0.299 R + 0.587 G + 0.114 B) in fixed-point arithmetic. Unlike
// GrayAverage it is channel-order dependent and expects RGB.
func GrayLuma(px Sample3) (Sample1, error) {
	v := (299*int(px[0]) + 587*int(px[1]) + 114*int(px[2])) / 1000
	return Sample1(v), nil
}
