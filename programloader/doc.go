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

// Package programloader is used to load program binaries and saved CPU states
// from disk or from an HTTP server. The data is read once and kept in the
// Loader, along with a SHA1 hash of the data.
//
// Files with the .state extension are assumed to contain a saved CPU state.
// All other files are assumed to contain a raw program binary.
package programloader
