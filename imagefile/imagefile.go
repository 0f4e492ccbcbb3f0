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

// Package imagefile loads memory images from disk and decides on the game
// ID used to key per-game settings.
package imagefile

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
)

// the length of the game code found at the start of a disc image header.
const gameCodeLen = 6

// Image is a memory image as loaded from disk.
type Image struct {
	Filename string

	// the ID used to key per-game settings. taken from the image header
	// when possible, derived from the image hash otherwise
	GameID string

	// SHA1 of the entire file
	Hash string

	Data []byte
}

// Load an image from disk.
func Load(filename string) (*Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("imagefile: %w", err)
	}

	img := &Image{
		Filename: filename,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		Data:     data,
	}
	img.GameID = gameID(data, img.Hash)

	return img, nil
}

// ShortName returns a shortened, friendlier version of the image filename.
func (img *Image) ShortName() string {
	sn := filepath.Base(img.Filename)
	return sn[:len(sn)-len(filepath.Ext(sn))]
}

func (img *Image) String() string {
	return fmt.Sprintf("%s [%s]", img.ShortName(), img.GameID)
}

// gameID decides on the ID for the image. disc images carry a six
// character game code at the very start of the header; when that's present
// we use it, like the original hardware's IPL does. for anything else (raw
// RAM dumps, test images) a prefix of the image hash is unique enough.
func gameID(data []byte, hash string) string {
	if len(data) >= gameCodeLen {
		code := data[:gameCodeLen]
		ok := true
		for _, b := range code {
			if !(b >= '0' && b <= '9' || b >= 'A' && b <= 'Z') {
				ok = false
				break
			}
		}
		if ok {
			return string(code)
		}
	}
	return hash[:8]
}
