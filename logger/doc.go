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

// Package logger is the central log repository for the simulator. Log entries
// are tagged and kept in memory, up to a maximum number. The oldest entries
// are discarded when the maximum is exceeded.
//
// Consecutive entries with identical tag and detail are collapsed into one
// entry with a repeat count.
//
// Every request to log requires a Permission. The Allow value can be used
// when logging is always appropriate:
//
//	logger.Log(logger.Allow, "cpu", "hardware interrupt serviced")
//
// The detail argument can be a string, an error, a fmt.Stringer or any other
// value that can be formatted with the %v verb.
//
// Log entries can be echoed to an io.Writer as they are created with the
// SetEcho() function.
package logger
