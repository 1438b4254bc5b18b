package constants

// Grade symbols in display order, best first.
var Grades = []string{"O", "A+", "A", "B+", "B", "C", "P", "F"}
