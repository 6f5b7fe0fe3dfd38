package posdir

import "unicode"

// Parse translates move commands into directions.
// Every recognized letter yields one direction, anything else is skipped,
// so a single-character command gives zero or one direction.
func Parse(command string) []Direction {
	var dirs []Direction
	for _, r := range command {
		switch unicode.ToLower(r) {
		case 'u':
			dirs = append(dirs, Up)
		case 'd':
			dirs = append(dirs, Down)
		case 'l':
			dirs = append(dirs, Left)
		case 'r':
			dirs = append(dirs, Right)
		}
	}
	return dirs
}
