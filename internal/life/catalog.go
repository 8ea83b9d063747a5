package life

// builtin patterns in .cells form
var builtinCells = []string{
	`!Name: glider
!Smallest spaceship, travels diagonally
.O.
..O
OOO`,
	`!Name: blinker
!Period 2 oscillator
OOO`,
	`!Name: toad
!Period 2 oscillator
.OOO
OOO.`,
	`!Name: beacon
!Period 2 oscillator
OO..
OO..
..OO
..OO`,
	`!Name: pulsar
!Period 3 oscillator
..OOO...OOO..
.............
O....O.O....O
O....O.O....O
O....O.O....O
..OOO...OOO..
.............
..OOO...OOO..
O....O.O....O
O....O.O....O
O....O.O....O
.............
..OOO...OOO..`,
	`!Name: lwss
!Lightweight spaceship
.O..O
O....
O...O
OOOO.`,
	`!Name: rpentomino
!Methuselah, stabilises after 1103 generations
.OO
OO.
.O.`,
	`!Name: diehard
!Vanishes after 130 generations
......O.
OO......
.O...OOO`,
	`!Name: acorn
!Methuselah, 5206 generations
.O.....
...O...
OO..OOO`,
	`!Name: gosper
!Gosper glider gun
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`,
}

// named rules
var builtinRules = map[string]string{
	"conway":           "B3/S23",
	"highlife":         "B36/S23",
	"seeds":            "B2/S",
	"daynight":         "B3678/S34678",
	"lifewithoutdeath": "B3/S012345678",
	"maze":             "B3/S12345",
}
