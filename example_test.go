package numconv_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/numconv"
	"github.com/hupe1980/numconv/checked"
	"github.com/hupe1980/numconv/matrix"
	"github.com/hupe1980/numconv/truncating"
	"github.com/hupe1980/numconv/wrapping"
)

func ExampleChecked() {
	b, err := numconv.Checked[uint8](uint16(300))
	fmt.Println(b, err)

	i, err := numconv.Checked[int32](2.0)
	fmt.Println(i, err)

	_, err = numconv.Checked[uint8](math.Inf(1))
	fmt.Println(errors.Is(err, numconv.ErrInfinite))
	// Output:
	// 0 overflow during numeric conversion
	// 2 <nil>
	// true
}

func ExampleConvert() {
	v, err := numconv.Convert(matrix.Wrapping, matrix.Int8, uint8(255))
	fmt.Printf("%T %v %v\n", v, v, err)

	_, err = numconv.Convert(matrix.Extending, matrix.Int16, uint8(1))
	fmt.Println(err)
	fmt.Println(errors.Is(err, numconv.ErrUnsupported))
	// Output:
	// int8 -1 <nil>
	// extending conversion from uint8 to int16 is not supported
	// true
}

func Example_policyPackages() {
	u, err := checked.Int32ToUint16(-5)
	fmt.Println(u, err)
	fmt.Println(wrapping.Uint8ToInt8(200))
	fmt.Println(truncating.Uint32ToUint8(0x1234))
	// Output:
	// 0 underflow during numeric conversion
	// -56
	// 52
}
