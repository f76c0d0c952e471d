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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/sim6502/curated"
)

// Value represents the actual Go preference value.
type Value interface{}

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Hook functions are called with the new value of a preference. A non-nil
// error from the pre hook prevents the value from changing.
type Hook func(value Value) error

// hooks are shared by all pref types. The hooks are called even if the value
// has not changed.
type hooks struct {
	pre  Hook
	post Hook
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated.
func (h *hooks) SetHookPre(f Hook) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (h *hooks) SetHookPost(f Hook) {
	h.post = f
}

// store the new value in v, surrounded by calls to the hook functions.
func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}

	v.Store(nv)

	if h.post != nil {
		return h.post(nv)
	}

	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.value, v)
	case string:
		return p.store(&p.value, strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return curated.Errorf(InvalidValue, fmt.Sprintf("%T", v), "prefs.Bool")
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if ov, ok := p.value.Load().(bool); ok {
		return ov
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	maxLen int
	value  atomic.Value // string
}

func (p *String) String() string {
	if ov, ok := p.value.Load().(string); ok {
		return ov
	}
	return ""
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. The existing string will be
// cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if ov, ok := p.value.Load().(string); ok {
		p.value.Store(p.crop(ov))
	}
}

// Set new value to String type. Values of any type are converted to a string
// with the %v verb.
func (p *String) Set(v Value) error {
	return p.store(&p.value, p.crop(fmt.Sprintf("%v", v)))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system. String values are
// parsed with base prefix rules so "0x0600" and "1536" are the same value.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set new value to Int type. New value can be any integer type that fits in
// an int, or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(&p.value, v)
	case int32:
		return p.store(&p.value, int(v))
	case int64:
		return p.store(&p.value, int(v))
	case uint8:
		return p.store(&p.value, int(v))
	case uint16:
		return p.store(&p.value, int(v))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return curated.Errorf(InvalidValue, fmt.Sprintf("%q", v), "prefs.Int")
		}
		return p.store(&p.value, int(n))
	}
	return curated.Errorf(InvalidValue, fmt.Sprintf("%T", v), "prefs.Int")
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if ov, ok := p.value.Load().(int); ok {
		return ov
	}
	return 0
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
