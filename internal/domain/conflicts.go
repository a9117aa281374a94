package domain

import "bytes"

// ConflictMarker opens a conflict hunk in merged output
const ConflictMarker = "<<<<<<<"

// CountConflicts counts the conflict hunks in merged content
func CountConflicts(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		if bytes.HasPrefix(line, []byte(ConflictMarker)) {
			count++
		}
	}
	return count
}

// ConflictSize counts the lines inside conflict hunks, markers excluded
func ConflictSize(content []byte) int {
	size := 0
	inConflict := false
	for _, line := range bytes.Split(content, []byte("\n")) {
		switch {
		case bytes.HasPrefix(line, []byte(ConflictMarker)):
			inConflict = true
		case bytes.HasPrefix(line, []byte(">>>>>>>")):
			inConflict = false
		case bytes.HasPrefix(line, []byte("=======")), bytes.HasPrefix(line, []byte("|||||||")):
		default:
			if inConflict {
				size++
			}
		}
	}
	return size
}
