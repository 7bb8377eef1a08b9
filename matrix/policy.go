package matrix

import (
	"fmt"
	"strings"
)

// Policy names one of the four conversion semantics.
type Policy uint8

const (
	// Checked conversions preserve the value or report why they cannot.
	Checked Policy = iota
	// Wrapping conversions reinterpret the bit pattern at equal width.
	Wrapping
	// Extending conversions widen without loss.
	Extending
	// Truncating conversions narrow by discarding high-order bits.
	Truncating
)

// NumPolicies is the number of policies.
const NumPolicies = 4

var policyNames = [NumPolicies]string{"checked", "wrapping", "extending", "truncating"}

// Policies returns all policies.
func Policies() []Policy {
	return []Policy{Checked, Wrapping, Extending, Truncating}
}

// Valid reports whether p names a known policy.
func (p Policy) Valid() bool { return int(p) < NumPolicies }

func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
	return policyNames[p]
}

// Fallible reports whether conversions under p can fail.
func (p Policy) Fallible() bool { return p == Checked }

// ParsePolicy parses a policy name such as "checked" or "Truncating".
func ParsePolicy(s string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range policyNames {
		if key == name {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown conversion policy %q", s)
}
