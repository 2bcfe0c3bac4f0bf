// Package codec converts between byte slices and their textual forms.
//
// Hex decoding accepts upper and lower case digits; hex encoding always
// produces lower case. Base64 encoding uses the standard alphabet with '='
// padding (RFC 4648 section 4). All functions are pure and safe for
// concurrent use.
package codec
