package svg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	root := New("svg").SetAttr("width", 900)
	g := root.Append("g").SetAttr("class", "legend")
	g.Append("text").SetAttr("x", 3).SetText(`Austin & "friends" <3`)
	g.Append("rect").SetStyle("fill", "#1f77b4").SetStyle("opacity", 0)

	var buf bytes.Buffer
	require.NoError(t, root.Render(&buf))

	want := `<svg width="900">
  <g class="legend">
    <text x="3">Austin &amp; &#34;friends&#34; &lt;3</text>
    <rect style="fill: #1f77b4; opacity: 0"/>
  </g>
</svg>
`
	assert.Equal(t, want, buf.String())
}

func TestSetAttrKeepsOrder(t *testing.T) {
	e := New("circle").SetAttr("r", 7).SetAttr("cx", 1).SetAttr("r", 9)
	assert.Equal(t, "9", e.Attr("r"))
	assert.Equal(t, "<circle r=\"9\" cx=\"1\"/>\n", e.String())
	assert.Equal(t, "", e.Attr("missing"))
}

func TestFindAndRemove(t *testing.T) {
	root := New("div")
	svg := root.Append("svg")
	a := svg.Append("path").SetAttr("class", "line")
	svg.Append("g").Append("path").SetAttr("class", "line highlighted")
	svg.Append("path").SetAttr("class", "mouse-line")

	assert.Len(t, root.Find("line"), 2)
	assert.True(t, a.HasClass("line"))
	assert.False(t, a.HasClass("mouse-line"))

	a.Remove()
	assert.Len(t, root.Find("line"), 1)
	assert.Nil(t, a.Parent())

	svg.Remove()
	assert.Empty(t, root.Children())
	assert.Empty(t, root.Find("mouse-line"))

	// Removing a detached element is a no-op.
	svg.Remove()
}
