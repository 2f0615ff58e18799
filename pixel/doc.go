// Package pixel implements the pixel formats of small OLED and LCD displays.
//
// Parsed colours are converted to a display format with the [color.Model] of
// a [Format], packed with [Format.Pack], or drawn into a [Buffer] which holds
// a whole frame in the layout the display expects.
package pixel
