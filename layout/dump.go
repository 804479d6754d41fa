package layout

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// LayoutJson populates a json object with the full physical plan, one entry
// per mip level
func (l *Layout) LayoutJson(json jwriter.ObjectState) {
	json.Name("Target").String(l.target.String())
	json.Name("Format").String(l.imageFormat.String())
	json.Name("CPP").Int(l.cpp)
	json.Name("Samples").Int(l.samples)
	json.Name("Tiled").Bool(l.tiled)
	json.Name("ArrayLayers").Int(l.arrayLayers)
	json.Name("LayerStride").Int(l.layerStride)
	json.Name("TotalBytes").Int(l.totalSize)

	arrayState := json.Name("Levels").Array()
	defer arrayState.End()

	for i := range l.levels {
		slice := &l.levels[i]

		obj := arrayState.Object()
		obj.Name("Tiling").String(slice.Tiling.String())
		obj.Name("Offset").Int(slice.Offset)
		obj.Name("Stride").Int(slice.Stride)
		obj.Name("PaddedHeight").Int(slice.PaddedHeight)
		obj.Name("Size").Int(slice.Size)
		obj.Name("UBPad").Int(slice.UBPad)
		obj.End()
	}
}

// BuildLayoutString returns the LayoutJson dump as a JSON string, for
// diagnostics and bug reports.
func (l *Layout) BuildLayoutString() string {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	l.LayoutJson(obj)
	obj.End()

	return string(writer.Bytes())
}
