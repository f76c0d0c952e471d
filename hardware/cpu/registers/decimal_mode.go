// This file is part of sim6502.
//
// sim6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sim6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sim6502.  If not, see <https://www.gnu.org/licenses/>.

package registers

// decodes a packed BCD value. nibbles greater than nine are not corrected.
func fromBCD(v uint8) int {
	return int(v>>4)*10 + int(v&0x0f)
}

// encodes a value in the range 0 to 99 as packed BCD.
func toBCD(v int) uint8 {
	return uint8(v/10)<<4 | uint8(v%10)
}

// AddDecimal adds value to register as though both are packed BCD
// representations. Returns new carry and overflow states.
//
// The zero and sign flags should be taken from the register after the
// operation in the normal way. The sign of a decimal result is bit 7 of the
// re-encoded value.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	sum := fromBCD(v) + fromBCD(val)
	if carry {
		sum++
	}

	if sum > 99 {
		sum -= 100
		rcarry = true
	}

	r.value = toBCD(sum)
	overflow = ^(v^val)&(v^r.value)&0x80 != 0

	return rcarry, overflow
}

// SubtractDecimal subtracts value from register as though both are packed
// BCD representations. Returns new carry and overflow states. As with binary
// subtraction, a carry value of false means that an additional one is
// subtracted and a returned carry of false indicates a borrow.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	diff := fromBCD(v) - fromBCD(val)
	if !carry {
		diff--
	}

	rcarry = true
	if diff < 0 {
		diff += 100
		rcarry = false
	}

	// values with illegal nibbles can still produce a result outside of the
	// BCD range
	if diff < 0 {
		diff = 0
	}

	r.value = toBCD(diff)
	overflow = (v^val)&(v^r.value)&0x80 != 0

	return rcarry, overflow
}
