package scale

// Category10 is the ten-color categorical palette used for series.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Ordinal assigns palette colors to names in the order the names are seen.
type Ordinal struct {
	palette []string
	index   map[string]int
	domain  []string
}

// NewOrdinal returns an ordinal scale whose domain starts as names.
func NewOrdinal(palette []string, names ...string) *Ordinal {
	if len(palette) == 0 {
		palette = Category10
	}
	o := &Ordinal{
		palette: palette,
		index:   make(map[string]int),
	}
	for _, n := range names {
		o.Color(n)
	}
	return o
}

// Color returns the color of name, extending the domain if name is new.
func (o *Ordinal) Color(name string) string {
	i, ok := o.index[name]
	if !ok {
		i = len(o.domain)
		o.index[name] = i
		o.domain = append(o.domain, name)
	}
	return o.palette[i%len(o.palette)]
}

// Domain returns the names in assignment order.
func (o *Ordinal) Domain() []string {
	return append([]string(nil), o.domain...)
}
