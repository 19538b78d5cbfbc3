// Package filter implements the image filters that consume blurkit masks.
//
// The centerpiece is [VariableBlur], a separable Gaussian blur whose radius
// varies per pixel under the control of a mask's alpha channel: opaque mask
// pixels receive the full blur radius, transparent ones pass through
// untouched. Feeding it a mask built from an expanded gradient strip yields
// a progressive blur that ramps smoothly across the image.
package filter
