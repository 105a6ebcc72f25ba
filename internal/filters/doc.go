// Package filters exposes the color conversions as template-style filters.
//
// A filter receives the input as text, its arguments as text and an
// evaluation context, and returns a Value: text on success or Nil when the
// input is not a recognized color. Filters never return errors and never
// panic on user input.
//
//	c := filters.WithColorFilters(filters.NewCollection())
//	v, _ := c.Invoke("color_to_hex", "rgb(255, 0, 0)", nil, filters.EvalContext{})
//	fmt.Println(v) // #ff0000
//
// The order in which notations are tried is fixed per filter:
//   - color_to_rgb: hex, hsl
//   - color_to_hex: rgb, hsl
//   - color_to_hsl: hex, rgb
//   - color_extract: hex, rgb, hsl
package filters
