package save_test

import (
	"fmt"

	"github.com/rawbytedev/tcsave/pkg/geom"
	"github.com/rawbytedev/tcsave/pkg/save"
	"github.com/rawbytedev/tcsave/pkg/save/hub"
	"github.com/rawbytedev/tcsave/pkg/save/v10"
	"github.com/rawbytedev/tcsave/pkg/wire"
)

func Example() {
	data, err := save.Encode(&v10.Circuit{
		Header:     hub.Header{Description: "half adder"},
		Components: wire.Own(v10.Component{Kind: v10.KindNandBit, PermanentID: 1}),
		Wires: wire.Own(v10.Wire{Start: geom.Point{X: 1, Y: 1}, Path: geom.NewRoute(
			geom.Segment{Length: 3, Direction: geom.Right},
		)}),
	})
	if err != nil {
		panic(err)
	}

	rec, err := save.Decode(data)
	if err != nil {
		panic(err)
	}
	c := rec.(*v10.Circuit)
	w, err := c.Wires.Collect()
	if err != nil {
		panic(err)
	}
	end, _ := w[0].Path.End(w[0].Start)
	fmt.Println(rec.Tag(), c.Description, c.Components.Len(), end)
	// Output: 10 half adder 1 (4,1)
}
