package stripe_test

import (
	"fmt"

	stripe "github.com/grindlemire/go-stripe"
)

func Example() {
	root := stripe.NewStripe(
		stripe.WithName("toolbar"),
		stripe.WithLayoutDim(stripe.DimX),
		stripe.WithSize(300, 100),
		stripe.WithSpacing(10, 0),
	)
	for _, name := range []string{"open", "save", "quit"} {
		root.Append(stripe.NewFrame(stripe.WithName(name), stripe.WithSize(50, 20)))
	}
	stripe.NextFrame(&root.Frame)

	for _, f := range root.Sequence() {
		fmt.Printf("%s at (%g, %g)\n", f.Name(), f.Position().X(), f.Position().Y())
	}
	fmt.Println("free:", root.FreeSpace())
	// Output:
	// open at (0, 40)
	// save at (60, 40)
	// quit at (120, 40)
	// free: 130
}

func ExampleStripe_Pinpoint() {
	root := stripe.NewStripe(stripe.WithName("root"), stripe.WithLayoutDim(stripe.DimY), stripe.WithSize(100, 100))
	root.Append(stripe.NewFrame(stripe.WithName("header"), stripe.WithSize(100, 20)))
	root.Append(stripe.NewFrame(stripe.WithName("body"), stripe.WithSize(100, 60)))
	stripe.NextFrame(&root.Frame)

	fmt.Println(root.Pinpoint(50, 30, false).Name())
	// Output: body
}
