// Package colorable holds a colour attribute meant to be embedded by unrelated types.
package colorable

// Colorable is embedded by value; its methods are promoted to the embedding type.
type Colorable struct {
	color string
}

func (c *Colorable) SetColor(color string) { c.color = color }

func (c Colorable) Color() string { return c.color }
