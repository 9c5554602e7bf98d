package stackvalue_test

import (
	"fmt"

	"github.com/jaittola/pasteparser/stackvalue"
)

func ExampleConvertString() {
	for _, src := range []string{"3/4 - 2/5i", "-1 3/4", "2 ∠ 32°", "[1, 2; 3, 4]"} {
		v, err := stackvalue.ConvertString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%T %v\n", v, v)
	}
	// Output:
	// *stackvalue.Complex 3/4 - 2/5i
	// *stackvalue.Rational -1 3/4
	// *stackvalue.Complex 2 ∠ 32°
	// *stackvalue.Matrix [1  2
	// 3  4]
}
