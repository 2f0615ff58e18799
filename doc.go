// Package csscolor parses CSS colour literals into RGBA pixels.
//
// The accepted forms are hexadecimal (#rgb, #rrggbb, #rrggbbaa, with or
// without the leading #), the functional rgb(), rgba(), hsl() and hsla()
// notations with comma separated arguments, and the 16 basic colour keywords.
// Results are [color.NRGBA] values, ready to be converted by any
// [color.Model], such as the display formats in the pixel package.
//
// Out of range components are clamped by default. A [Parser] created with
// [Config.Strict] rejects them with a [RangeError] instead.
package csscolor
