package display

import (
	"fmt"
	"strings"
)

// RenderBoard renders an ASCII board with colored stones
func RenderBoard(asciiBoard string) {
	lines := strings.Split(asciiBoard, "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		isFileLine := (i == 0) || (i == len(lines)-1)

		// Process each character
		for _, char := range line {
			switch {
			case isFileLine && char >= 'a' && char <= 'h':
				// File letters - Cyan
				fmt.Printf("%s%c%s", Cyan, char, Reset)
			case char == 'w':
				// White stones - Blue
				fmt.Printf("%s%c%s", Blue, char, Reset)
			case char == 'b':
				// Black stones - Red
				fmt.Printf("%s%c%s", Red, char, Reset)
			case char == '.':
				// Empty squares
				fmt.Printf(".")
			case char >= '1' && char <= '8':
				// Rank numbers - Cyan
				fmt.Printf("%s%c%s", Cyan, char, Reset)
			default:
				fmt.Printf("%c", char)
			}
		}
		fmt.Println()
	}
}

// ColorForTurn returns colored turn indicator
func ColorForTurn(turn string) string {
	if turn == "w" {
		return Blue + "White" + Reset
	}
	return Red + "Black" + Reset
}
