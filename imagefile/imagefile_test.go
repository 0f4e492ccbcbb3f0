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

package imagefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/imagefile"
	"github.com/gophercube/gophercube/test"
)

func TestGameIDFromHeader(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "zelda.img")
	err := os.WriteFile(fn, []byte("GZLE01\x00\x00some image data"), 0644)
	test.ExpectedSuccess(t, err)

	img, err := imagefile.Load(fn)
	test.ExpectedSuccess(t, err)
	test.Equate(t, img.GameID, "GZLE01")
	test.Equate(t, img.ShortName(), "zelda")
}

func TestGameIDFromHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "dump.bin")
	err := os.WriteFile(fn, []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, 0644)
	test.ExpectedSuccess(t, err)

	img, err := imagefile.Load(fn)
	test.ExpectedSuccess(t, err)

	// no printable game code in the header so the ID is derived from the
	// hash
	test.Equate(t, img.GameID, img.Hash[:8])
	test.Equate(t, len(img.GameID), 8)
}
