// This file is part of Gophercube.
//
// Gophercube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercube.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"reflect"
	"testing"
)

// Equate is used to test equality between one value and another. The
// expected value is always the second argument.
//
// Both values must be of the same type or the test will fail with a
// detailed message.
func Equate(t *testing.T, value, expectedValue interface{}) bool {
	t.Helper()

	if reflect.TypeOf(value) != reflect.TypeOf(expectedValue) {
		t.Fatalf("values for equation are not the same type (%T and %T)", value, expectedValue)
		return false
	}

	if !reflect.DeepEqual(value, expectedValue) {
		t.Errorf("equation of type %T failed (%v  - wanted %v)", value, value, expectedValue)
		return false
	}

	return true
}
