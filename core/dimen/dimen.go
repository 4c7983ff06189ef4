// Package dimen provides the fixed-point length type all box geometry is
// computed in.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import "fmt"

// Dimen is a length in scaled points, the fixed-point unit layout
// arithmetic is done in. A scaled point is 1/65536 of a big point, fine
// enough that rounding during percentage resolution never shows on screen,
// while sums and comparisons stay exact integer operations.
type Dimen int32

// Unit lengths, as multiples of a scaled point. A CSS pixel is identified
// with the big point (1/72 inch), which keeps pixel values round numbers.
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point
	BP   Dimen = 65536   // big point, 1/72 inch
	PX   Dimen = 65536   // CSS pixel
	PT   Dimen = 65291   // printer's point, 1/72.27 inch
	MM   Dimen = 185771  // millimeter
	CM   Dimen = 1857710 // centimeter
	IN   Dimen = 4718592 // inch
)

func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Point is a position in box coordinates, relative to some content origin.
type Point struct {
	X, Y Dimen
}

// Origin is the zero position.
var Origin = Point{0, 0}

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
