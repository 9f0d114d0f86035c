package camera

import (
	"fmt"
	"strings"
)

// Key is a control key the camera reacts to.
type Key uint16

const (
	KeyW Key = 1 << iota
	KeyA
	KeyS
	KeyD
	KeyE
	KeyQ
	KeyZ
	KeyX
	KeyR
	KeyF
	KeyEscape
)

// KeySet is the set of keys held during one frame.
type KeySet uint16

// Keys builds a KeySet.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s |= KeySet(k)
	}
	return s
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&KeySet(k) != 0
}

// With returns s with k added.
func (s KeySet) With(k Key) KeySet {
	return s | KeySet(k)
}

var keyNames = map[rune]Key{
	'W': KeyW, 'A': KeyA, 'S': KeyS, 'D': KeyD, 'E': KeyE,
	'Q': KeyQ, 'Z': KeyZ, 'X': KeyX, 'R': KeyR, 'F': KeyF,
}

// ParseKeys builds a KeySet from letters such as "SA" (case-insensitive).
// Unknown letters are an error; Escape cannot be expressed.
func ParseKeys(s string) (KeySet, error) {
	var set KeySet
	for _, r := range strings.ToUpper(s) {
		if r == ' ' || r == '+' {
			continue
		}
		k, ok := keyNames[r]
		if !ok {
			return 0, fmt.Errorf("camera: unknown key %q", r)
		}
		set = set.With(k)
	}
	return set, nil
}
