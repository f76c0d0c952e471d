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

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for a goroutine. It returns a result
// that is different between goroutines and consistent for a given goroutine.
// It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that is allowed to use a resource.
type Owner struct {
	id uint64
}

// NewOwner is the preferred method of initialisation for the Owner type. The
// calling goroutine becomes the owner.
func NewOwner() Owner {
	return Owner{id: GetGoRoutineID()}
}

// Check panics if the calling goroutine is not the owner.
func (o Owner) Check() {
	if id := GetGoRoutineID(); id != o.id {
		panic(fmt.Sprintf("assert: goroutine %d is not the owner (owner is %d)", id, o.id))
	}
}
