// Package extending widens a value into a strictly larger kind of the same
// signedness. The result always equals the input: unsigned sources are
// zero-extended and signed sources sign-extended.
//
//	extending.Int8ToInt32(-1)    // -1
//	extending.Uint16ToUint64(7)  // 7
//
// float32 extends to float64, and integers of at most 16 bits (32 bits for
// float64) extend to the float kinds that hold them exactly. uint and int
// take part only where the relation holds on every word width: uint8 extends
// to uint and uint extends to uint128.
package extending

//go:generate go run github.com/hupe1980/numconv/cmd/numconv gen --policy extending -o extending_gen.go
